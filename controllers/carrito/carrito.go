package carritoControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/middleware"
	"github.com/mprower/coleccionables-api/models"
	"gorm.io/gorm"
)

type AddItemInput struct {
	IDProducto int `json:"id_producto" binding:"required"`
	Cantidad   int `json:"cantidad" binding:"required,min=1"`
}

type UpdateCantidadInput struct {
	Cantidad int `json:"cantidad"`
}

// GET /api/carrito
func GetCarrito(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		var items []models.CarritoItem
		if err := db.Where("id_cli = ?", clienteID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el carrito"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// POST /api/carrito
func AddItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición vacío o mal formado"})
			return
		}

		var producto models.Producto
		if err := db.First(&producto, input.IDProducto).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "El producto no existe"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al validar el producto"})
			return
		}

		item := models.CarritoItem{
			IDCli:    clienteID,
			IDPro:    input.IDProducto,
			Cantidad: input.Cantidad,
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al agregar al carrito"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

// PUT /api/carrito/:id
func UpdateCantidad(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de item de carrito inválido"})
			return
		}

		var input UpdateCantidadInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cuerpo de la petición vacío o mal formado"})
			return
		}

		// A quantity of zero or less removes the item.
		if input.Cantidad <= 0 {
			deleteItem(c, db, id, clienteID)
			return
		}

		result := db.Model(&models.CarritoItem{}).
			Where("id = ? AND id_cli = ?", id, clienteID).
			Update("cantidad", input.Cantidad)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la cantidad"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item del carrito no encontrado"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cantidad actualizada correctamente"})
	}
}

// DELETE /api/carrito/:id
func DeleteItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de item de carrito inválido"})
			return
		}
		deleteItem(c, db, id, clienteID)
	}
}

// DELETE /api/carrito
func ClearCarrito(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		if err := db.Where("id_cli = ?", clienteID).Delete(&models.CarritoItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al vaciar el carrito"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Carrito vaciado"})
	}
}

// GET /admin/carritos/:cliente_id
func GetCarritoAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID, err := strconv.Atoi(c.Param("cliente_id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ID de cliente inválido"})
			return
		}

		var items []models.CarritoItem
		if err := db.Where("id_cli = ?", clienteID).Find(&items).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el carrito"})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

func deleteItem(c *gin.Context, db *gorm.DB, id, clienteID int) {
	result := db.Where("id = ? AND id_cli = ?", id, clienteID).Delete(&models.CarritoItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item del carrito no encontrado"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item eliminado del carrito"})
}
