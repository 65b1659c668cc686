package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/auth"
)

// ClienteIDKey is the gin context key under which ValidateToken stores the
// authenticated customer's id.
const ClienteIDKey = "cliente_id"

// ValidateToken checks the "Authorization: Bearer <token>" header and loads
// the customer id into the request context. Any verification failure aborts
// the request with a 401.
func ValidateToken(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Falta la cabecera Authorization"})
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Cabecera Authorization mal formada"})
			c.Abort()
			return
		}

		clienteID, err := tm.VerifyToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token inválido o expirado"})
			c.Abort()
			return
		}

		c.Set(ClienteIDKey, clienteID)
		c.Next()
	}
}

// GetClienteID returns the authenticated customer id stored by ValidateToken,
// or 0 when the request is unauthenticated.
func GetClienteID(c *gin.Context) int {
	if v, ok := c.Get(ClienteIDKey); ok {
		if id, ok := v.(int); ok {
			return id
		}
	}
	return 0
}
