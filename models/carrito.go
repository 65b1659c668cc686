package models

// CarritoItem is one row of a customer's shopping cart: one product with a
// positive quantity. Rows are deleted individually or all at once on checkout.
type CarritoItem struct {
	ID       int `gorm:"primaryKey;autoIncrement" json:"id"`
	IDCli    int `gorm:"column:id_cli;index" json:"id_cli"`
	IDPro    int `gorm:"column:id_pro" json:"id_pro"`
	Cantidad int `gorm:"column:cantidad" json:"cantidad"`
}

func (CarritoItem) TableName() string { return "carrito" }
