package participant

import (
	"time"
)

// ============================
// 🔷 GORM Participant Model
type Participant struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	Name             string    `gorm:"type:varchar(100);not null" json:"name"`
	Email            string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone            *string   `gorm:"type:varchar(20)" json:"phone"`
	RegistrationDate time.Time `gorm:"not null" json:"registration_date"`
	EventID          uint      `gorm:"not null;index" json:"event_id"`
}

// eventCapacity is the slice of an events row the capacity check reads.
type eventCapacity struct {
	ID              uint
	MaxParticipants *int
}

func (eventCapacity) TableName() string {
	return "events"
}

// ============================
// 🟡 Create Participant Request
type CreateParticipantRequest struct {
	Name    *string `json:"name" validate:"required,min=1,max=100"`
	Email   *string `json:"email" validate:"required,email,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	EventID *uint   `json:"event_id" validate:"required"`
}

// ============================
// 🟠 Update Participant Request
// Only supplied fields are applied.
type UpdateParticipantRequest struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email,max=100"`
	Phone   *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	EventID *uint   `json:"event_id,omitempty"`
}

func (r *UpdateParticipantRequest) apply(p *Participant) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Email != nil {
		p.Email = *r.Email
	}
	if r.Phone != nil {
		p.Phone = r.Phone
	}
	if r.EventID != nil {
		p.EventID = *r.EventID
	}
}
