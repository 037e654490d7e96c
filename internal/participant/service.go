package participant

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sharath018/event-registration-backend/internal/apperror"
	"github.com/sharath018/event-registration-backend/internal/notification"
	"github.com/sharath018/event-registration-backend/internal/validation"
)

// Service holds the participant business rules.
type Service struct {
	Repo      *Repository
	Publisher notification.Publisher
}

func NewService(r *Repository, pub notification.Publisher) *Service {
	if pub == nil {
		pub = notification.NewNoopPublisher()
	}
	return &Service{Repo: r, Publisher: pub}
}

// ===========================
// 🎯 Register participant
//
// Validates the request, then inserts the participant only if the event
// exists and still has a free seat. Nothing is written on any failure.
func (s *Service) RegisterParticipant(ctx context.Context, req *CreateParticipantRequest) (*Participant, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p := &Participant{
		Name:             *req.Name,
		Email:            *req.Email,
		Phone:            req.Phone,
		EventID:          *req.EventID,
		RegistrationDate: time.Now().UTC(),
	}

	if err := s.Repo.CreateWithinCapacity(ctx, p); err != nil {
		var full *apperror.CapacityExceededError
		if errors.As(err, &full) {
			logrus.WithFields(logrus.Fields{
				"event_id": full.EventID,
				"limit":    full.Limit,
			}).Info("registration rejected, event is full")
		}
		return nil, err
	}

	s.publish(ctx, notification.TypeParticipantRegistered, p)
	return p, nil
}

// ===========================
// 📄 List / Get
func (s *Service) ListParticipants(ctx context.Context) ([]Participant, error) {
	return s.Repo.List(ctx)
}

func (s *Service) GetParticipant(ctx context.Context, id uint) (*Participant, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *Service) ListEventParticipants(ctx context.Context, eventID uint) ([]Participant, error) {
	return s.Repo.ListByEvent(ctx, eventID)
}

// ===========================
// 🛠 Update participant
func (s *Service) UpdateParticipant(ctx context.Context, id uint, req *UpdateParticipantRequest) (*Participant, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	p, err := s.Repo.Update(ctx, id, req.apply)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notification.TypeParticipantUpdated, p)
	return p, nil
}

// ===========================
// ❌ Delete participant
func (s *Service) DeleteParticipant(ctx context.Context, id uint) error {
	p, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, notification.TypeParticipantDeleted, p)
	return nil
}

// ===========================
// 📤 Export roster
func (s *Service) ExportEventParticipants(ctx context.Context, eventID uint, format string) (*Export, error) {
	participants, err := s.Repo.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return ExportRoster(eventID, format, participants)
}

func (s *Service) publish(ctx context.Context, typ string, p *Participant) {
	id := p.ID
	notification.Emit(ctx, s.Publisher, notification.New(typ, p.EventID, &id, map[string]interface{}{
		"name":  p.Name,
		"email": p.Email,
	}))
}
