package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/auth"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the public, customer and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, tm *auth.TokenManager) {
	// Public routes (no middleware beyond CORS/request id)
	SetupPublicRoutes(r, db, tm)

	// Customer routes (JWT-protected)
	SetupClienteRoutes(r, db, tm)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}
