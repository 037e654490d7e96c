package participant

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sharath018/event-registration-backend/internal/apperror"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 📄 List all participants
func (r *Repository) List(ctx context.Context) ([]Participant, error) {
	var participants []Participant
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&participants).Error
	return participants, apperror.Persistence("list participants", err)
}

// ===========================
// 📄 List participants of one event
func (r *Repository) ListByEvent(ctx context.Context, eventID uint) ([]Participant, error) {
	db := r.DB.WithContext(ctx)

	exists, err := eventExists(db, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperror.EventNotFound(eventID)
	}

	var participants []Participant
	err = db.Where("event_id = ?", eventID).Order("id ASC").Find(&participants).Error
	return participants, apperror.Persistence("list event participants", err)
}

// ===========================
// 🔍 Get participant by ID
func (r *Repository) GetByID(ctx context.Context, id uint) (*Participant, error) {
	var p Participant
	err := r.DB.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.ParticipantNotFound(id)
	}
	if err != nil {
		return nil, apperror.Persistence("get participant", err)
	}
	return &p, nil
}

// ===========================
// 🎯 Insert a participant if its event has a free seat
//
// The event row is locked for the rest of the transaction so concurrent
// registrations for the same event count and insert one at a time.
func (r *Repository) CreateWithinCapacity(ctx context.Context, p *Participant) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := reserveSeat(tx, p.EventID); err != nil {
			return err
		}
		return apperror.Persistence("create participant", tx.Create(p).Error)
	})
}

// ===========================
// 🛠 Update participant
//
// apply mutates the loaded row. Moving to another event goes through the
// same locked capacity check as a new registration.
func (r *Repository) Update(ctx context.Context, id uint, apply func(*Participant)) (*Participant, error) {
	var p Participant
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&p, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ParticipantNotFound(id)
		}
		if err != nil {
			return apperror.Persistence("get participant", err)
		}

		previousEvent := p.EventID
		apply(&p)
		p.ID = id

		if p.EventID != previousEvent {
			if err := reserveSeat(tx, p.EventID); err != nil {
				return err
			}
		}
		return apperror.Persistence("update participant", tx.Save(&p).Error)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ===========================
// ❌ Delete participant
func (r *Repository) Delete(ctx context.Context, id uint) (*Participant, error) {
	var p Participant
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.First(&p, id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ParticipantNotFound(id)
		}
		if err != nil {
			return apperror.Persistence("get participant", err)
		}
		return apperror.Persistence("delete participant", tx.Delete(&Participant{}, id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DeleteByEvent removes every participant of an event. It is meant to run
// inside the caller's transaction.
func DeleteByEvent(tx *gorm.DB, eventID uint) error {
	return apperror.Persistence("delete event participants",
		tx.Where("event_id = ?", eventID).Delete(&Participant{}).Error)
}

// reserveSeat locks the event row, then fails if the event is missing or full.
func reserveSeat(tx *gorm.DB, eventID uint) error {
	var ev eventCapacity
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id", "max_participants").
		First(&ev, eventID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.EventNotFound(eventID)
	}
	if err != nil {
		return apperror.Persistence("lock event", err)
	}

	if ev.MaxParticipants == nil {
		return nil
	}

	var count int64
	if err := tx.Model(&Participant{}).Where("event_id = ?", eventID).Count(&count).Error; err != nil {
		return apperror.Persistence("count participants", err)
	}
	if count >= int64(*ev.MaxParticipants) {
		return &apperror.CapacityExceededError{EventID: eventID, Limit: *ev.MaxParticipants}
	}
	return nil
}

func eventExists(db *gorm.DB, eventID uint) (bool, error) {
	var count int64
	err := db.Model(&eventCapacity{}).Where("id = ?", eventID).Count(&count).Error
	if err != nil {
		return false, apperror.Persistence("find event", err)
	}
	return count > 0, nil
}
