package models

import "time"

// Venta is a committed sale. Folio is the human-facing 6-digit reference
// number, distinct from the internal id.
type Venta struct {
	ID    int       `gorm:"primaryKey;autoIncrement" json:"id"`
	Fech  time.Time `gorm:"column:fech" json:"fech"`
	Folio int       `gorm:"column:folio" json:"folio"`
	Total float64   `gorm:"column:total" json:"total"`
	IDCli int       `gorm:"column:id_cli;index" json:"id_cli"`

	Detalles []DetalleVenta `gorm:"foreignKey:IDVent" json:"detalles,omitempty"`
}

func (Venta) TableName() string { return "venta" }

// DetalleVenta is one sale line item. Subtotal and Prec capture the price at
// checkout time and are never recomputed afterwards.
type DetalleVenta struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Subtotal float64 `gorm:"column:subtotal" json:"subtotal"`
	Cant     int     `gorm:"column:cant" json:"cant"`
	Prec     float64 `gorm:"column:prec" json:"prec"`
	IDVent   int     `gorm:"column:id_vent;index" json:"id_vent"`
	IDPro    int     `gorm:"column:id_pro" json:"id_pro"`
}

func (DetalleVenta) TableName() string { return "detalle_venta" }
