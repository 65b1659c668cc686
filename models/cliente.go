package models

// Cliente is a registered customer. The password column holds a bcrypt hash
// and is never serialized back out.
type Cliente struct {
	ID       int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre   string `gorm:"column:nombre;uniqueIndex;not null" json:"nombre"` // unique, used for login lookup
	Password string `gorm:"column:password;not null" json:"-"`
	Numero   string `gorm:"column:numero" json:"numero"`
}

func (Cliente) TableName() string { return "cliente" }
