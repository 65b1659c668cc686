package models

type Producto struct {
	ID       int     `gorm:"primaryKey;autoIncrement" json:"id"`
	Nombre   string  `gorm:"column:nombre;not null" json:"nombre"`
	Prec     float64 `gorm:"column:prec;not null" json:"prec"`
	Foto     string  `gorm:"column:foto" json:"foto"`
	Cantidad int     `gorm:"column:cantidad" json:"cantidad"` // stock; a DB trigger decrements it on each detalle_venta insert
	IDDescr  int     `gorm:"column:id_descr" json:"id_descr"`

	Descripcion *Descripcion `gorm:"foreignKey:IDDescr;references:ID" json:"descripcion,omitempty"`
}

func (Producto) TableName() string { return "producto" }

type Descripcion struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Descripcion string `gorm:"column:descripcion" json:"descripcion"`
}

func (Descripcion) TableName() string { return "descripcion" }

// Oferta marks a product as currently on sale. The catalog shows marked
// products with a crossed-out original price.
type Oferta struct {
	ID    int `gorm:"primaryKey;autoIncrement" json:"id"`
	IDPro int `gorm:"column:id_pro;uniqueIndex" json:"id_pro"`
}

func (Oferta) TableName() string { return "oferta" }
