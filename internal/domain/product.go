package domain

import "github.com/shopspring/decimal" // Exact decimal arithmetic for prices

// Product Model
type Product struct {
	ID          uint                `gorm:"primaryKey;column:id_producto" json:"id_producto,omitempty"`              // Primary key
	Code        string              `gorm:"column:cod_producto;size:32;not null" json:"cod_producto"`                // Business code, e.g. "PROD00001"
	Name        string              `gorm:"column:nombre;size:191;not null" json:"nombre"`                           // Display name
	Slug        string              `gorm:"column:slug_producto;size:191;uniqueIndex;not null" json:"slug_producto"` // Unique URL-safe identifier
	Description *string             `gorm:"column:descripcion;type:text" json:"descripcion,omitempty"`               // Optional description
	Price       decimal.NullDecimal `gorm:"column:precio;type:decimal(10,2)" json:"precio"`                          // Optional price, null when unset
	CommerceID  uint                `gorm:"column:id_comercio;not null;index" json:"id_comercio"`                    // Foreign key to Commerce
}

// TableName keeps the table name singular
func (Product) TableName() string { return "producto" }
