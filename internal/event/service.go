package event

import (
	"context"
	"time"

	"github.com/sharath018/event-registration-backend/internal/apperror"
	"github.com/sharath018/event-registration-backend/internal/notification"
	"github.com/sharath018/event-registration-backend/internal/participant"
	"github.com/sharath018/event-registration-backend/internal/validation"
)

// Service wraps business logic for events
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
// 📄 List / Get
func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	return s.Repo.List(ctx)
}

func (s *Service) GetEvent(ctx context.Context, id uint) (*Detail, error) {
	e, err := s.Repo.GetWithParticipants(ctx, id)
	if err != nil {
		return nil, err
	}

	participants := e.Participants
	if participants == nil {
		participants = []participant.Participant{}
	}
	return &Detail{Event: *e, Participants: participants}, nil
}

// ===========================
// 🎯 Create Event
func (s *Service) CreateEvent(ctx context.Context, req *CreateEventRequest) (*Event, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	e := &Event{
		Title:           *req.Title,
		Description:     req.Description,
		StartDate:       *start,
		EndDate:         *end,
		Location:        req.Location,
		MaxParticipants: req.MaxParticipants,
	}
	if err := s.Repo.Create(ctx, e); err != nil {
		return nil, err
	}

	s.publish(ctx, notification.TypeEventCreated, e)
	return e, nil
}

// ===========================
// 🛠 Update Event
//
// Lowering max_participants below the current count is allowed; the limit
// applies to the next registration.
func (s *Service) UpdateEvent(ctx context.Context, id uint, req *UpdateEventRequest) (*Event, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}

	start, end, err := parseDates(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	e, err := s.Repo.Update(ctx, id, func(e *Event) {
		if req.Title != nil {
			e.Title = *req.Title
		}
		if req.Description != nil {
			e.Description = req.Description
		}
		if start != nil {
			e.StartDate = *start
		}
		if end != nil {
			e.EndDate = *end
		}
		if req.Location != nil {
			e.Location = req.Location
		}
		if req.MaxParticipants != nil {
			e.MaxParticipants = req.MaxParticipants
		}
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, notification.TypeEventUpdated, e)
	return e, nil
}

// ===========================
// ❌ Delete Event
func (s *Service) DeleteEvent(ctx context.Context, id uint) error {
	e, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	s.publish(ctx, notification.TypeEventDeleted, e)
	return nil
}

func (s *Service) publish(ctx context.Context, typ string, e *Event) {
	notification.Emit(ctx, s.Publisher, notification.New(typ, e.ID, nil, map[string]interface{}{
		"title":            e.Title,
		"max_participants": e.MaxParticipants,
	}))
}

// parseDates converts the optional start and end strings. Validation has
// already checked their format.
func parseDates(start, end *string) (*time.Time, *time.Time, error) {
	verr := &apperror.ValidationError{}
	parse := func(field string, s *string) *time.Time {
		if s == nil {
			return nil
		}
		t, err := validation.ParseTimestamp(*s)
		if err != nil {
			verr.Add(field, "Not a valid datetime.")
			return nil
		}
		return &t
	}

	startAt := parse("start_date", start)
	endAt := parse("end_date", end)
	if err := verr.OrNil(); err != nil {
		return nil, nil, err
	}
	return startAt, endAt, nil
}
