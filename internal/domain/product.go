package domain

import "time"

// Closed set of category codes used as the join key between
// Product.Category and Category.Slug.
const (
	CategoryClothes     = "clothes"
	CategoryShoes       = "shoes"
	CategoryAccessories = "accessories"
)

// Product is a catalog item. Price is expressed in main currency units.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice,omitempty"` // pre-discount price when on sale
	Image         string    `json:"image"`
	Category      string    `json:"category"`
	Description   string    `json:"description,omitempty"`
	Sizes         []string  `json:"sizes,omitempty"`
	Colors        []string  `json:"colors,omitempty"`
	Featured      bool      `json:"featured,omitempty"`
	IsNew         bool      `json:"isNew,omitempty"`
	InStock       bool      `json:"inStock"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (p *Product) GetID() string   { return p.ID }
func (p *Product) SetID(id string) { p.ID = id }

func (p *Product) StampCreated(now time.Time) { p.CreatedAt, p.UpdatedAt = now, now }
func (p *Product) StampUpdated(now time.Time) { p.UpdatedAt = now }

// ProductFilter narrows a product listing. Zero values mean "no constraint";
// price and flag bounds use pointers so a zero bound stays expressible.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
	Featured *bool
	InStock  *bool
	Search   string
}
