package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"
	"einsatzplan/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService interface {
	// List assembles the derived calendar view for the caller: response
	// maps, CSS class tokens and the caller's effective hourly rate.
	List(ctx context.Context, p model.Principal) ([]dto.EventView, error)
	Create(ctx context.Context, req dto.CreateEventRequest) (string, error)
	Update(ctx context.Context, req dto.UpdateEventRequest) error
	Delete(ctx context.Context, id string) error
	Release(ctx context.Context, id string) error
	Duplicate(ctx context.Context, req dto.DuplicateEventRequest) (*dto.DuplicateEventResponse, error)
}

type eventService struct {
	events    repository.EventRepository
	responses repository.ResponseRepository
	users     repository.UserRepository
	auth      AuthService
}

func NewEventService(events repository.EventRepository, responses repository.ResponseRepository, users repository.UserRepository, auth AuthService) EventService {
	return &eventService{events: events, responses: responses, users: users, auth: auth}
}

func (s *eventService) List(ctx context.Context, p model.Principal) ([]dto.EventView, error) {
	if err := s.auth.RequireConsent(ctx, p); err != nil {
		return nil, err
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}

	role := model.NormalizeRole(p.Role)
	isManager := p.IsManager()

	// Planner BBS only plans the CV category.
	if role == model.RolePlannerBBS {
		filtered := events[:0]
		for _, e := range events {
			if model.NormalizeCategory(e.Category) == model.CategoryCV {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	profileRate := 0.0
	if !isManager {
		if me, err := s.users.FindByUsername(ctx, p.Username); err == nil && me.Stundensatz != nil {
			profileRate = *me.Stundensatz
		}
	}

	result := make([]dto.EventView, 0, len(events))
	for i := range events {
		e := &events[i]
		rows, err := s.responses.ListByEvent(ctx, e.ID)
		if err != nil {
			return nil, err
		}
		rmap := responseViewMap(rows)

		result = append(result, dto.EventView{
			ID:             e.ID,
			Title:          e.Title,
			Ort:            e.Ort,
			Dienstkleidung: e.Dienstkleidung,
			Auftraggeber:   e.Auftraggeber,
			Start:          e.Start,
			PlannedEndTime: e.PlannedEndTime,
			Frist:          e.Frist,
			Status:         e.Status,
			Category:       e.Category,
			RequiredStaff:  e.RequiredStaff,
			UseEventRate:   e.UseEventRate,
			Stundensatz:    e.Stundensatz,
			Responses:      rmap,
			ClassNames:     classNames(e, rmap, p),
			MyRate:         myRate(e, isManager, profileRate),
		})
	}
	return result, nil
}

// sanitizeEvent applies the field rules shared by create and update:
// category coercion, "geplant" default, and dropping the event rate when
// the profile rate applies.
func sanitizeEvent(e *model.Event) {
	e.Category = model.NormalizeCategory(e.Category)
	if strings.TrimSpace(e.Status) == "" {
		e.Status = model.EventGeplant
	}
	if e.RequiredStaff < 0 {
		e.RequiredStaff = 0
	}
	if e.EffectiveUseEventRate() == 0 {
		e.Stundensatz = nil
	}
}

func eventFromRequest(req dto.CreateEventRequest) model.Event {
	return model.Event{
		Title:          req.Title,
		Ort:            req.Ort,
		Dienstkleidung: req.Dienstkleidung,
		Auftraggeber:   req.Auftraggeber,
		Start:          req.Start,
		PlannedEndTime: strings.TrimSpace(req.PlannedEndTime),
		Frist:          strings.TrimSpace(req.Frist),
		Status:         req.Status,
		Category:       req.Category,
		RequiredStaff:  req.RequiredStaff,
		UseEventRate:   req.UseEventRate,
		Stundensatz:    req.Stundensatz,
	}
}

func (s *eventService) Create(ctx context.Context, req dto.CreateEventRequest) (string, error) {
	e := eventFromRequest(req)
	e.ID = uuid.NewString()
	sanitizeEvent(&e)
	if err := s.events.Create(ctx, &e); err != nil {
		return "", err
	}
	return e.ID, nil
}

func (s *eventService) Update(ctx context.Context, req dto.UpdateEventRequest) error {
	existing, err := s.events.FindByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("Event nicht gefunden")
		}
		return err
	}

	e := eventFromRequest(req.CreateEventRequest)
	e.ID = existing.ID
	e.CreatedAt = existing.CreatedAt
	sanitizeEvent(&e)
	return s.events.Update(ctx, &e)
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	return s.events.Delete(ctx, id)
}

func (s *eventService) Release(ctx context.Context, id string) error {
	rows, err := s.events.SetStatus(ctx, id, model.EventOffen)
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFoundErr("Event nicht gefunden")
	}
	return nil
}

func (s *eventService) Duplicate(ctx context.Context, req dto.DuplicateEventRequest) (*dto.DuplicateEventResponse, error) {
	src, err := s.events.FindByID(ctx, strings.TrimSpace(req.EventID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("Event nicht gefunden")
		}
		return nil, err
	}

	srcTime := timeOfDay(src.Start)

	clone := func(start string) model.Event {
		c := *src
		c.ID = uuid.NewString()
		c.Start = start
		c.CreatedAt = time.Time{}
		c.UpdatedAt = time.Time{}
		return c
	}

	if len(req.Dates) > 0 {
		var clones []model.Event
		for _, ds := range req.Dates {
			ds = strings.TrimSpace(ds)
			if !datePattern.MatchString(ds) {
				continue
			}
			clones = append(clones, clone(ds+"T"+srcTime))
		}
		if len(clones) == 0 {
			return nil, validationErr("Keine gültigen Datumswerte übergeben")
		}
		if err := s.events.CreateBatch(ctx, clones); err != nil {
			return nil, err
		}
		ids := make([]string, len(clones))
		for i := range clones {
			ids[i] = clones[i].ID
		}
		return &dto.DuplicateEventResponse{Status: "ok", NewEventIDs: ids}, nil
	}

	start := strings.TrimSpace(req.Start)
	if start == "" {
		start = strings.TrimSpace(src.Start)
	}
	if start == "" {
		return nil, validationErr("start fehlt")
	}
	c := clone(start)
	if err := s.events.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &dto.DuplicateEventResponse{Status: "ok", NewEventID: c.ID}, nil
}
