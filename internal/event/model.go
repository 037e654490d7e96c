package event

import (
	"time"

	"github.com/sharath018/event-registration-backend/internal/participant"
)

// ============================
// 🔷 GORM Event Model
type Event struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"type:varchar(100);not null" json:"title"`
	Description     *string   `gorm:"type:text" json:"description"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	Location        *string   `gorm:"type:varchar(200)" json:"location"`
	MaxParticipants *int      `json:"max_participants"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Participants []participant.Participant `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"-"`
}

// Detail is the single-event view with its participants nested.
type Detail struct {
	Event
	Participants []participant.Participant `json:"participants"`
}

// ============================
// 🟡 Create Event Request
type CreateEventRequest struct {
	Title           *string `json:"title" validate:"required,min=1,max=100"`
	Description     *string `json:"description,omitempty"`
	StartDate       *string `json:"start_date" validate:"required,isodatetime"` // ISO-8601
	EndDate         *string `json:"end_date" validate:"required,isodatetime"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
	MaxParticipants *int    `json:"max_participants,omitempty" validate:"omitempty,gte=1"`
}

// ============================
// 🟠 Update Event Request
// Every field is optional; supplied ones overwrite the stored value.
type UpdateEventRequest struct {
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description     *string `json:"description,omitempty"`
	StartDate       *string `json:"start_date,omitempty" validate:"omitempty,isodatetime"`
	EndDate         *string `json:"end_date,omitempty" validate:"omitempty,isodatetime"`
	Location        *string `json:"location,omitempty" validate:"omitempty,max=200"`
	MaxParticipants *int    `json:"max_participants,omitempty" validate:"omitempty,gte=1"`
}
