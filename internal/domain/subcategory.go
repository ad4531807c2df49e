package domain

// Subcategory Model
type Subcategory struct {
	ID         uint      `gorm:"primaryKey;column:id_subcategoria" json:"id_subcategoria,omitempty"`              // Primary key
	Code       string    `gorm:"column:cod_subcategoria;size:16;not null" json:"cod_subcategoria"`                // Business code, e.g. "001"
	Name       string    `gorm:"column:nombre;size:120;not null" json:"nombre"`                                   // Display name
	Slug       string    `gorm:"column:slug_subcategoria;size:191;uniqueIndex;not null" json:"slug_subcategoria"` // Unique URL-safe identifier
	CategoryID uint      `gorm:"column:id_categoria;not null;index" json:"id_categoria"`                          // Foreign key to Category
	Category   *Category `gorm:"foreignKey:CategoryID" json:"categoria,omitempty"`                                // Parent category, loaded on demand
}

// TableName keeps the table name singular
func (Subcategory) TableName() string { return "subcategoria" }
