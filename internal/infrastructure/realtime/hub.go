// Package realtime implementa la difusión de eventos por WebSocket. Cada
// cliente autenticado queda registrado bajo su usuario y, si es empleado,
// también bajo su empresa; las notificaciones nuevas llegan por aquí además de
// quedar persistidas en la bandeja.
package realtime

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/jhoicas/Gestion-api/internal/application/notification"
)

var _ notification.Broadcaster = (*Hub)(nil)

// Conn es la superficie mínima de una conexión que necesita el hub.
// *websocket.Conn (gofiber/contrib) la satisface.
type Conn interface {
	WriteJSON(v any) error
}

// event es el sobre que viaja por el socket.
type event struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// client envuelve la conexión con su mutex de escritura: el protocolo admite
// UN solo escritor a la vez por conexión, y una misma conexión puede recibir
// a la vez un evento de usuario y uno de empresa.
type client struct {
	writeMu sync.Mutex
	conn    Conn
}

func (c *client) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub mantiene las conexiones activas indexadas por usuario y por empresa.
// Un mismo usuario puede tener varias conexiones (pestañas); una conexión
// registrada bajo ambos índices comparte el mismo client.
type Hub struct {
	mu        sync.RWMutex
	users     map[string]map[Conn]*client
	companies map[string]map[Conn]*client
}

// NewHub construye el hub.
func NewHub() *Hub {
	return &Hub{
		users:     make(map[string]map[Conn]*client),
		companies: make(map[string]map[Conn]*client),
	}
}

// Register registra la conexión bajo el usuario y, si companyID no está vacío,
// también bajo la empresa.
func (h *Hub) Register(userID, companyID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	cl := &client{conn: conn}
	if h.users[userID] == nil {
		h.users[userID] = make(map[Conn]*client)
	}
	h.users[userID][conn] = cl

	if companyID != "" {
		if h.companies[companyID] == nil {
			h.companies[companyID] = make(map[Conn]*client)
		}
		h.companies[companyID][conn] = cl
	}
	log.Debug().Str("user_id", userID).Msg("Cliente WebSocket conectado")
}

// Unregister retira la conexión de todos los índices.
func (h *Hub) Unregister(userID, companyID string, conn Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns := h.users[userID]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.users, userID)
		}
	}
	if companyID != "" {
		if conns := h.companies[companyID]; conns != nil {
			delete(conns, conn)
			if len(conns) == 0 {
				delete(h.companies, companyID)
			}
		}
	}
	log.Debug().Str("user_id", userID).Msg("Cliente WebSocket desconectado")
}

// SendToUser envía el evento a todas las conexiones del usuario. Best-effort:
// un write fallido solo se registra, la conexión muerta se limpia cuando su
// read loop termina.
func (h *Hub) SendToUser(userID, eventName string, payload any) {
	h.send(h.snapshot(h.users, userID), eventName, payload)
}

// SendToCompany envía el evento a todas las conexiones de la empresa.
func (h *Hub) SendToCompany(companyID, eventName string, payload any) {
	h.send(h.snapshot(h.companies, companyID), eventName, payload)
}

// snapshot copia los clientes bajo RLock; las escrituras de red corren fuera
// del lock del hub para no bloquear registros mientras un socket está lento.
func (h *Hub) snapshot(index map[string]map[Conn]*client, key string) []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()

	out := make([]*client, 0, len(index[key]))
	for _, cl := range index[key] {
		out = append(out, cl)
	}
	return out
}

func (h *Hub) send(clients []*client, eventName string, payload any) {
	for _, cl := range clients {
		if err := cl.writeJSON(event{Event: eventName, Data: payload}); err != nil {
			log.Warn().Err(err).Str("event", eventName).Msg("No se pudo enviar evento WebSocket")
		}
	}
}
