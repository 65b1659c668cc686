package routes

import (
	"github.com/gin-gonic/gin"
	carritoControllers "github.com/mprower/coleccionables-api/controllers/carrito"
	ventaControllers "github.com/mprower/coleccionables-api/controllers/venta"
	"github.com/mprower/coleccionables-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers the API-key-protected back-office endpoints.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		admin.GET("/ventas", ventaControllers.GetAllVentas(db))
		admin.GET("/ventas/export-excel", ventaControllers.ExportVentasToExcel(db))
		admin.GET("/ws/ventas", ventaControllers.VentaWebSocketHandler)
		admin.GET("/carritos/:cliente_id", carritoControllers.GetCarritoAdmin(db))
	}
}
