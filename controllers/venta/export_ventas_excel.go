package ventaControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mprower/coleccionables-api/models"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/ventas/export-excel
func ExportVentasToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var ventas []models.Venta
		if err := db.Preload("Detalles").Order("fech DESC").Find(&ventas).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las ventas"})
			return
		}

		file := xlsx.NewFile()

		ventasSheet, err := file.AddSheet("Ventas")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la hoja de cálculo"})
			return
		}
		headerRow := ventasSheet.AddRow()
		for _, h := range []string{"ID", "Folio", "Fecha", "Total", "Cliente", "Partidas"} {
			headerRow.AddCell().SetValue(h)
		}
		for _, v := range ventas {
			row := ventasSheet.AddRow()
			row.AddCell().SetValue(v.ID)
			row.AddCell().SetValue(v.Folio)
			row.AddCell().SetValue(v.Fech.Format("2006-01-02"))
			row.AddCell().SetValue(v.Total)
			row.AddCell().SetValue(v.IDCli)
			row.AddCell().SetValue(len(v.Detalles))
		}

		detallesSheet, err := file.AddSheet("Detalles")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la hoja de cálculo"})
			return
		}
		detalleHeader := detallesSheet.AddRow()
		for _, h := range []string{"Venta", "Folio", "Producto", "Cantidad", "Precio", "Subtotal"} {
			detalleHeader.AddCell().SetValue(h)
		}
		for _, v := range ventas {
			for _, d := range v.Detalles {
				row := detallesSheet.AddRow()
				row.AddCell().SetValue(d.IDVent)
				row.AddCell().SetValue(v.Folio)
				row.AddCell().SetValue(d.IDPro)
				row.AddCell().SetValue(d.Cant)
				row.AddCell().SetValue(d.Prec)
				row.AddCell().SetValue(d.Subtotal)
			}
		}

		c.Header("Content-Disposition", "attachment; filename=ventas.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al escribir el archivo Excel"})
			return
		}
	}
}
