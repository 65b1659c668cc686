package productoControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/models"
	"gorm.io/gorm"
)

// ofertaRecargo is the markup shown as the crossed-out "original" price for
// products on offer, matching the storefront catalog.
const ofertaRecargo = 1.25

type ProductoOferta struct {
	models.Producto
	PrecioOriginal float64 `json:"precio_original"`
}

// GET /api/productos?search=
func GetProductos(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Producto{}).Preload("Descripcion")

		if search := c.Query("search"); search != "" {
			like := "%" + search + "%"
			query = query.
				Joins("LEFT JOIN descripcion ON producto.id_descr = descripcion.id").
				Where("producto.nombre LIKE ? OR descripcion.descripcion LIKE ?", like, like)
		}

		var productos []models.Producto
		if err := query.Find(&productos).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cargar el catálogo"})
			return
		}
		c.JSON(http.StatusOK, productos)
	}
}

// GET /api/productos/:id
func GetProductoByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de producto inválido"})
			return
		}

		var producto models.Producto
		if err := db.Preload("Descripcion").First(&producto, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Producto no encontrado"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el producto"})
			return
		}
		c.JSON(http.StatusOK, producto)
	}
}

// GET /api/ofertas
func GetOfertas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var productos []models.Producto
		err := db.Model(&models.Producto{}).
			Preload("Descripcion").
			Joins("JOIN oferta ON oferta.id_pro = producto.id").
			Find(&productos).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No se pudo cargar las ofertas"})
			return
		}

		ofertas := make([]ProductoOferta, 0, len(productos))
		for _, p := range productos {
			ofertas = append(ofertas, ProductoOferta{
				Producto:       p,
				PrecioOriginal: p.Prec * ofertaRecargo,
			})
		}
		c.JSON(http.StatusOK, ofertas)
	}
}
