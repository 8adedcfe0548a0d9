package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/auth"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/realtime"
)

// WebSocketUpgrade rechaza peticiones que no sean un upgrade WebSocket. Guarda
// el principal en Locals porque el handler de websocket corre fuera del ciclo
// normal de fiber.
func WebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		c.Locals(LocalPrincipal, GetPrincipal(c))
		return c.Next()
	}
}

// WebSocketHandler mantiene la conexión registrada en el hub hasta que el
// cliente la cierre. Los mensajes entrantes se descartan; el canal es solo de
// servidor a cliente.
func WebSocketHandler(hub *realtime.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		p, ok := conn.Locals(LocalPrincipal).(*auth.Principal)
		if !ok || p == nil {
			_ = conn.Close()
			return
		}
		// La cuenta de empresa también escucha el canal de su empresa
		// (CompanyID es su propio ID); los empleados igual.
		hub.Register(p.ID, p.CompanyID, conn)
		defer hub.Unregister(p.ID, p.CompanyID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}
