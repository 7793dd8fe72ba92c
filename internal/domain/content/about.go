package content

import "time"

// aboutRowID addresses the single About row.
const aboutRowID = 1

// About is the "About us" block: business description, the list of
// offerings, and contact details.
type About struct {
	ID                 uint      `gorm:"primaryKey" json:"-"`
	Description        string    `gorm:"not null;default:''" json:"description"`
	Services           []string  `gorm:"serializer:json;type:jsonb" json:"services"`
	CustomerCareNumber string    `gorm:"not null;default:''" json:"customerCareNumber"`
	ContactEmail       string    `gorm:"not null;default:''" json:"contactEmail"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (About) TableName() string { return "about_content" }

// EmptyAbout is served before an admin has saved the block.
func EmptyAbout() About {
	return About{ID: aboutRowID, Services: []string{}}
}

// Normalize pins the row id and never leaves Services nil.
func (a *About) Normalize() {
	a.ID = aboutRowID
	if a.Services == nil {
		a.Services = []string{}
	}
}
