package domain

// Category Model
type Category struct {
	ID            uint          `gorm:"primaryKey;column:id_categoria" json:"id_categoria,omitempty"`                      // Primary key
	Code          string        `gorm:"column:cod_categoria;size:16;not null" json:"cod_categoria"`                        // Business code, e.g. "01"
	Name          string        `gorm:"column:nombre;size:120;not null" json:"nombre"`                                     // Display name
	Slug          string        `gorm:"column:slug_categoria;size:191;uniqueIndex;not null" json:"slug_categoria"`         // Unique URL-safe identifier
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE;" json:"subcategorias,omitempty"` // One-to-many relationship with Subcategory
}

// TableName keeps the table name singular
func (Category) TableName() string { return "categoria" }
