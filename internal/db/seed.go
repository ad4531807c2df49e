package db

import (
	"context" // Cancellation for the seed transaction
	_ "embed" // Embedded fixture file
	"errors"  // Sentinel errors
	"fmt"     // Error wrapping

	"tuarica/internal/domain" // Importing domain models

	"github.com/shopspring/decimal" // Price parsing
	"golang.org/x/crypto/bcrypt"    // Password hashing
	"gopkg.in/yaml.v3"              // Fixture decoding
	"gorm.io/gorm"                  // GORM ORM library
)

//go:embed seed.yaml
var seedYAML []byte

// ErrUnknownReference is returned when a fixture row points at a slug or email that was not declared
var ErrUnknownReference = errors.New("unknown fixture reference")

// SeedData mirrors seed.yaml
type SeedData struct {
	Categories    []SeedCategory    `yaml:"categorias"`
	Subcategories []SeedSubcategory `yaml:"subcategorias"`
	Users         []SeedUser        `yaml:"usuarios"`
	Commerces     []SeedCommerce    `yaml:"comercios"`
	Products      []SeedProduct     `yaml:"productos"`
}

// SeedCategory is a category fixture
type SeedCategory struct {
	Code string `yaml:"codigo"`
	Name string `yaml:"nombre"`
	Slug string `yaml:"slug"`
}

// SeedSubcategory is a subcategory fixture; Category is the parent slug
type SeedSubcategory struct {
	Code     string `yaml:"codigo"`
	Name     string `yaml:"nombre"`
	Slug     string `yaml:"slug"`
	Category string `yaml:"categoria"`
}

// SeedUser is a user fixture with a plaintext password that is hashed on insert
type SeedUser struct {
	Email    string `yaml:"email"`
	Name     string `yaml:"nombre"`
	Password string `yaml:"password"`
	Role     string `yaml:"rol"`
}

// SeedCommerce is a commerce fixture; Subcategory is a slug and User an email
type SeedCommerce struct {
	Code        string `yaml:"codigo"`
	Name        string `yaml:"nombre"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"descripcion"`
	Location    string `yaml:"ubicacion"`
	Address     string `yaml:"direccion"`
	Phone       string `yaml:"telefono"`
	Website     string `yaml:"web"`
	Subcategory string `yaml:"subcategoria"`
	User        string `yaml:"usuario"`
}

// SeedProduct is a product fixture; Commerce is a slug
type SeedProduct struct {
	Code        string `yaml:"codigo"`
	Name        string `yaml:"nombre"`
	Slug        string `yaml:"slug"`
	Description string `yaml:"descripcion"`
	Price       string `yaml:"precio"`
	Commerce    string `yaml:"comercio"`
}

// SeedReport counts the rows a seed run inserted
type SeedReport struct {
	Categories    int
	Subcategories int
	Users         int
	Commerces     int
	Products      int
}

// LoadSeedData decodes the embedded demonstration fixtures
func LoadSeedData() (*SeedData, error) {
	var data SeedData
	if err := yaml.Unmarshal(seedYAML, &data); err != nil {
		return nil, fmt.Errorf("failed to parse seed data: %w", err)
	}
	return &data, nil
}

// Seed inserts data in a single transaction; any failure rolls back every row
func Seed(ctx context.Context, gdb *gorm.DB, data *SeedData) (*SeedReport, error) {
	report := &SeedReport{}
	err := gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := map[string]uint{} // slug -> id
		for _, c := range data.Categories {
			row := domain.Category{Code: c.Code, Name: c.Name, Slug: c.Slug}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("categoria %s: %w", c.Slug, err)
			}
			categories[c.Slug] = row.ID
			report.Categories++
		}

		subcategories := map[string]uint{} // slug -> id
		for _, s := range data.Subcategories {
			categoryID, ok := categories[s.Category]
			if !ok {
				return fmt.Errorf("subcategoria %s: categoria %q: %w", s.Slug, s.Category, ErrUnknownReference)
			}
			row := domain.Subcategory{Code: s.Code, Name: s.Name, Slug: s.Slug, CategoryID: categoryID}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("subcategoria %s: %w", s.Slug, err)
			}
			subcategories[s.Slug] = row.ID
			report.Subcategories++
		}

		users := map[string]uint{} // email -> id
		for _, u := range data.Users {
			email := domain.NormalizeEmail(u.Email) // Stored as looked up at login
			hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("usuario %s: failed to hash password: %w", email, err)
			}
			row := domain.User{Email: email, Name: u.Name, Password: string(hash), Role: u.Role}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("usuario %s: %w", email, err)
			}
			users[email] = row.ID
			report.Users++
		}

		commerces := map[string]uint{} // slug -> id
		for _, c := range data.Commerces {
			subcategoryID, ok := subcategories[c.Subcategory]
			if !ok {
				return fmt.Errorf("comercio %s: subcategoria %q: %w", c.Slug, c.Subcategory, ErrUnknownReference)
			}
			userID, ok := users[domain.NormalizeEmail(c.User)]
			if !ok {
				return fmt.Errorf("comercio %s: usuario %q: %w", c.Slug, c.User, ErrUnknownReference)
			}
			row := domain.Commerce{
				Code:          c.Code,
				Name:          c.Name,
				Slug:          c.Slug,
				Description:   optional(c.Description),
				Location:      optional(c.Location),
				Address:       optional(c.Address),
				Phone:         optional(c.Phone),
				Website:       optional(c.Website),
				SubcategoryID: subcategoryID,
				UserID:        userID,
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("comercio %s: %w", c.Slug, err)
			}
			commerces[c.Slug] = row.ID
			report.Commerces++
		}

		for _, p := range data.Products {
			commerceID, ok := commerces[p.Commerce]
			if !ok {
				return fmt.Errorf("producto %s: comercio %q: %w", p.Slug, p.Commerce, ErrUnknownReference)
			}
			row := domain.Product{
				Code:        p.Code,
				Name:        p.Name,
				Slug:        p.Slug,
				Description: optional(p.Description),
				CommerceID:  commerceID,
			}
			if p.Price != "" {
				price, err := decimal.NewFromString(p.Price)
				if err != nil {
					return fmt.Errorf("producto %s: invalid precio %q: %w", p.Slug, p.Price, err)
				}
				row.Price = decimal.NewNullDecimal(price)
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("producto %s: %w", p.Slug, err)
			}
			report.Products++
		}
		return nil // Commit transaction
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// optional maps an empty fixture value to NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
