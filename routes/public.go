package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/auth"
	clienteControllers "github.com/mprower/coleccionables-api/controllers/cliente"
	productoControllers "github.com/mprower/coleccionables-api/controllers/producto"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers registration, login and the public catalog.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, tm *auth.TokenManager) {
	api := r.Group("/api")
	{
		api.POST("/register", clienteControllers.Register(db))
		api.POST("/login", clienteControllers.Login(db, tm))

		api.GET("/productos", productoControllers.GetProductos(db))
		api.GET("/productos/:id", productoControllers.GetProductoByID(db))
		api.GET("/ofertas", productoControllers.GetOfertas(db))
	}
}
