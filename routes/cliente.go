package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/auth"
	carritoControllers "github.com/mprower/coleccionables-api/controllers/carrito"
	ventaControllers "github.com/mprower/coleccionables-api/controllers/venta"
	"github.com/mprower/coleccionables-api/middleware"
	"gorm.io/gorm"
)

// SetupClienteRoutes registers the JWT-protected customer endpoints: cart
// management and checkout.
func SetupClienteRoutes(r *gin.Engine, db *gorm.DB, tm *auth.TokenManager) {
	api := r.Group("/api")
	api.Use(middleware.ValidateToken(tm))
	{
		carrito := api.Group("/carrito")
		{
			carrito.GET("", carritoControllers.GetCarrito(db))          // GET /api/carrito
			carrito.POST("", carritoControllers.AddItem(db))            // POST /api/carrito
			carrito.PUT("/:id", carritoControllers.UpdateCantidad(db))  // PUT /api/carrito/:id
			carrito.DELETE("/:id", carritoControllers.DeleteItem(db))   // DELETE /api/carrito/:id
			carrito.DELETE("", carritoControllers.ClearCarrito(db))     // DELETE /api/carrito
		}

		api.POST("/venta", ventaControllers.Checkout(db))         // POST /api/venta
		api.GET("/ventas", ventaControllers.GetVentasCliente(db)) // GET /api/ventas
	}
}
