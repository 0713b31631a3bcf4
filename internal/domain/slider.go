package domain

// SliderImage is one slide of the storefront hero carousel. Order is a sort
// key only, not guaranteed contiguous or unique.
type SliderImage struct {
	ID       string `json:"id"`
	Image    string `json:"image"`
	Title    string `json:"title,omitempty"`
	Subtitle string `json:"subtitle,omitempty"`
	Link     string `json:"link,omitempty"`
	Order    int    `json:"order"`
	IsActive bool   `json:"isActive"`
}

func (s *SliderImage) GetID() string   { return s.ID }
func (s *SliderImage) SetID(id string) { s.ID = id }
