package domain

// Commerce Model
type Commerce struct {
	ID            uint         `gorm:"primaryKey;column:id_comercio" json:"id_comercio,omitempty"`                    // Primary key
	Code          string       `gorm:"column:cod_comercio;size:32;not null" json:"cod_comercio"`                      // Business code, e.g. "COM001"
	Name          string       `gorm:"column:nombre;size:191;not null" json:"nombre"`                                 // Display name
	Slug          string       `gorm:"column:slug_comercio;size:191;uniqueIndex;not null" json:"slug_comercio"`       // Unique URL-safe identifier
	Description   *string      `gorm:"column:descripcion;type:text" json:"descripcion,omitempty"`                     // Optional description
	Location      *string      `gorm:"column:ubicacion_geografica;size:64" json:"ubicacion_geografica,omitempty"`     // "lat,lng" pair
	Address       *string      `gorm:"column:direccion;size:255" json:"direccion,omitempty"`                          // Optional street address
	Phone         *string      `gorm:"column:telefono;size:32" json:"telefono,omitempty"`                             // Optional phone number
	Website       *string      `gorm:"column:web;size:255" json:"web,omitempty"`                                      // Optional website
	SubcategoryID uint         `gorm:"column:id_subcategoria;not null;index" json:"id_subcategoria"`                  // Foreign key to Subcategory
	UserID        uint         `gorm:"column:id_usuario;not null;index" json:"id_usuario"`                            // Foreign key to the owning User
	Subcategory   *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategoria,omitempty"`                        // Subcategory, loaded on demand
	User          *User        `gorm:"foreignKey:UserID" json:"-"`                                                    // Owner, never serialized
	Products      []Product    `gorm:"foreignKey:CommerceID;constraint:OnUpdate:CASCADE;" json:"productos,omitempty"` // One-to-many relationship with Product
}

// TableName keeps the table name singular
func (Commerce) TableName() string { return "comercio" }
