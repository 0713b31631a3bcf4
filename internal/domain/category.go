package domain

// Category groups products by slug. Slug is one of the category codes and
// is immutable after creation; ProductCount is derived and refreshed by the
// back-office when a category is saved.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Image        string `json:"image"`
	Description  string `json:"description,omitempty"`
	ProductCount int    `json:"productCount"`
	IsActive     bool   `json:"isActive"`
}

func (c *Category) GetID() string   { return c.ID }
func (c *Category) SetID(id string) { c.ID = id }
