package event

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sharath018/event-registration-backend/internal/apperror"
	"github.com/sharath018/event-registration-backend/internal/participant"
)

type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ===========================
// 🎯 Create Event
func (r *Repository) Create(ctx context.Context, e *Event) error {
	return apperror.Persistence("create event",
		r.DB.WithContext(ctx).Omit(clause.Associations).Create(e).Error)
}

// ===========================
// 📄 List Events
func (r *Repository) List(ctx context.Context) ([]Event, error) {
	var events []Event
	err := r.DB.WithContext(ctx).Order("id ASC").Find(&events).Error
	return events, apperror.Persistence("list events", err)
}

// ===========================
// 🔍 Get Event with its participants
func (r *Repository) GetWithParticipants(ctx context.Context, id uint) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("participants.id ASC")
		}).
		First(&e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.EventNotFound(id)
	}
	if err != nil {
		return nil, apperror.Persistence("get event", err)
	}
	return &e, nil
}

// ===========================
// 🛠 Update Event
func (r *Repository) Update(ctx context.Context, id uint, apply func(*Event)) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findForUpdate(tx, id, &e); err != nil {
			return err
		}
		apply(&e)
		e.ID = id
		return apperror.Persistence("update event", tx.Omit(clause.Associations).Save(&e).Error)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// ===========================
// ❌ Delete Event
//
// Participants go first, in the same transaction, so the cascade does not
// depend on the store enforcing the foreign key.
func (r *Repository) Delete(ctx context.Context, id uint) (*Event, error) {
	var e Event
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := findForUpdate(tx, id, &e); err != nil {
			return err
		}
		if err := participant.DeleteByEvent(tx, id); err != nil {
			return err
		}
		return apperror.Persistence("delete event", tx.Delete(&Event{}, id).Error)
	})
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// findForUpdate loads the event row and holds its lock until the transaction
// ends, which keeps registrations for it out in the meantime.
func findForUpdate(tx *gorm.DB, id uint, e *Event) error {
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(e, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperror.EventNotFound(id)
	}
	return apperror.Persistence("get event", err)
}
