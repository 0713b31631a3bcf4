package domain

// Announcement is a storefront notification bar message. At most one may be
// active at a time; the back-office SetActiveAnnouncement operation enforces
// the exclusivity, individual create/update do not.
type Announcement struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	IsActive  bool   `json:"isActive"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
}

func (a *Announcement) GetID() string   { return a.ID }
func (a *Announcement) SetID(id string) { a.ID = id }
