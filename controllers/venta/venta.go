package ventaControllers

import (
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/middleware"
	"github.com/mprower/coleccionables-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCarritoVacio is returned when a checkout is attempted over an empty cart.
var ErrCarritoVacio = errors.New("el carrito está vacío, no se puede realizar la compra")

// ErrFolioAgotado is returned when no collision-free folio could be drawn.
var ErrFolioAgotado = errors.New("no se pudo generar un folio único")

const (
	folioMin         = 100000
	folioMax         = 999999
	folioMaxIntentos = 5
)

type lineaCarrito struct {
	IDPro    int     `gorm:"column:id_pro"`
	Cantidad int     `gorm:"column:cantidad"`
	Prec     float64 `gorm:"column:prec"`
}

// CrearVentaDesdeCarrito converts a customer's cart into a durable sale,
// all-or-nothing. The cart rows are read joined with the current product
// price, a sale header plus one line item per cart row are inserted and the
// cart is cleared, all inside a single transaction. Any failure rolls back
// every step. The cart rows are locked FOR UPDATE so two concurrent checkouts
// for the same customer cannot both consume the same cart.
func CrearVentaDesdeCarrito(db *gorm.DB, clienteID int) (*models.Venta, error) {
	var venta models.Venta

	err := db.Transaction(func(tx *gorm.DB) error {
		var lineas []lineaCarrito
		err := tx.Table("carrito").
			Select("carrito.id_pro AS id_pro, carrito.cantidad AS cantidad, producto.prec AS prec").
			Joins("JOIN producto ON carrito.id_pro = producto.id").
			Where("carrito.id_cli = ?", clienteID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Scan(&lineas).Error
		if err != nil {
			return err
		}
		if len(lineas) == 0 {
			return ErrCarritoVacio
		}

		var total float64
		detalles := make([]models.DetalleVenta, 0, len(lineas))
		for _, l := range lineas {
			subtotal := float64(l.Cantidad) * l.Prec
			total += subtotal
			detalles = append(detalles, models.DetalleVenta{
				Subtotal: subtotal,
				Cant:     l.Cantidad,
				Prec:     l.Prec,
				IDPro:    l.IDPro,
			})
		}

		folio, err := generarFolio(tx)
		if err != nil {
			return err
		}

		venta = models.Venta{
			Fech:  time.Now(),
			Folio: folio,
			Total: total,
			IDCli: clienteID,
		}
		if err := tx.Create(&venta).Error; err != nil {
			return err
		}

		for i := range detalles {
			detalles[i].IDVent = venta.ID
		}
		// Single batched insert; the DB trigger on detalle_venta decrements stock.
		if err := tx.Create(&detalles).Error; err != nil {
			return err
		}
		venta.Detalles = detalles

		if err := tx.Where("id_cli = ?", clienteID).Delete(&models.CarritoItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &venta, nil
}

// generarFolio draws a random 6-digit folio and retries on collision with an
// existing sale, up to a bounded number of attempts.
func generarFolio(tx *gorm.DB) (int, error) {
	for i := 0; i < folioMaxIntentos; i++ {
		folio := rand.Intn(folioMax-folioMin+1) + folioMin

		var n int64
		if err := tx.Model(&models.Venta{}).Where("folio = ?", folio).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return folio, nil
		}
	}
	return 0, ErrFolioAgotado
}

// POST /api/venta
func Checkout(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		venta, err := CrearVentaDesdeCarrito(db, clienteID)
		if err != nil {
			if errors.Is(err, ErrCarritoVacio) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al procesar la compra"})
			return
		}

		broadcastNuevaVenta(*venta)
		c.JSON(http.StatusCreated, venta)
	}
}

// GET /api/ventas
func GetVentasCliente(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		clienteID := middleware.GetClienteID(c)

		var ventas []models.Venta
		err := db.Preload("Detalles").
			Where("id_cli = ?", clienteID).
			Order("fech DESC").
			Find(&ventas).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las compras"})
			return
		}
		c.JSON(http.StatusOK, ventas)
	}
}

// GET /admin/ventas
func GetAllVentas(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ventas []models.Venta
		if err := db.Preload("Detalles").Order("fech DESC").Find(&ventas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las ventas"})
			return
		}
		c.JSON(http.StatusOK, ventas)
	}
}
