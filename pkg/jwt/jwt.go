package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tipos de principal autenticado.
const (
	UserTypeCompany  = "company"
	UserTypeEmployee = "employee"
)

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Las permissions NO viajan en el token: el middleware las resuelve contra la DB
// en cada petición, para que los cambios de rol apliquen sin re-login.
type Claims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`            // "company" | "employee"
	CompanyID string `json:"company_id,omitempty"` // solo para employee: empresa propietaria
}

// Generate genera un token JWT firmado (HS256) con identidad y tipo de principal.
// Para principals de tipo company, companyID puede ir vacío (su propio ID es la empresa).
func Generate(secret, userID, email, userType, companyID, issuer string, expHours int) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expHours) * time.Hour)),
		},
		UserID:    userID,
		Email:     email,
		UserType:  userType,
		CompanyID: companyID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna error si el token es inválido, expirado o tiene firma incorrecta:
// no se extiende ninguna confianza a un payload sin verificar.
func Parse(secret, tokenString string) (*Claims, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
