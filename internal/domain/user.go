package domain

import "strings" // Email normalization

// RoleMerchant is the role tag of users that own commerces
const RoleMerchant = "comerciante"

// User Model
type User struct {
	ID        uint       `gorm:"primaryKey;column:id_usuario" json:"id_usuario"`          // Primary key
	Email     string     `gorm:"column:email;size:191;uniqueIndex;not null" json:"email"` // Unique login email
	Name      string     `gorm:"column:nombre;size:120;not null" json:"nombre"`           // Display name
	Password  string     `gorm:"column:password;not null" json:"-"`                       // Hashed password
	Role      string     `gorm:"column:rol;size:32;default:comerciante" json:"rol"`       // Role tag
	Commerces []Commerce `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE;" json:"-"` // Owned commerces
}

// TableName keeps the table name singular
func (User) TableName() string { return "usuario" }

// NormalizeEmail is the stored and looked-up form of an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
