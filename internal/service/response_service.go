package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"
	"einsatzplan/internal/repository"

	"gorm.io/gorm"
)

const respondLockedMsg = "Dieser Einsatz ist bereits bestätigt/abgerechnet und kann hier nicht mehr geändert werden."

type ResponseService interface {
	// Respond handles the employee self-service endpoint: accept, decline
	// or withdraw. Blocked past the event's frist and once the entry is
	// confirmed or billed.
	Respond(ctx context.Context, p model.Principal, req dto.RespondRequest) error
	// SetEndTime stores the employee's end time exactly once.
	SetEndTime(ctx context.Context, p model.Principal, req dto.EndTimeRequest) error

	Assign(ctx context.Context, req dto.AssignUserRequest) error
	Remove(ctx context.Context, req dto.RemoveUserRequest) error
	Confirm(ctx context.Context, req dto.ConfirmRequest) error
	EditEntry(ctx context.Context, req dto.EditEntryRequest) error
	SendMailAll(ctx context.Context) (*dto.SendMailAllResponse, error)
}

type responseService struct {
	events    repository.EventRepository
	responses repository.ResponseRepository
	users     repository.UserRepository
	auth      AuthService
	notifier  Notifier
}

func NewResponseService(events repository.EventRepository, responses repository.ResponseRepository, users repository.UserRepository, auth AuthService, notifier Notifier) ResponseService {
	return &responseService{events: events, responses: responses, users: users, auth: auth, notifier: notifier}
}

var fristLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05", "2006-01-02"}

// fristExpired reports whether the deadline lies in the past. An
// unparseable frist never locks the event.
func fristExpired(frist string, now time.Time) bool {
	f := strings.TrimSpace(frist)
	if f == "" {
		return false
	}
	for _, layout := range fristLayouts {
		if dl, err := time.ParseInLocation(layout, f, now.Location()); err == nil {
			return now.After(dl)
		}
	}
	return false
}

func (s *responseService) Respond(ctx context.Context, p model.Principal, req dto.RespondRequest) error {
	if err := s.auth.RequireConsent(ctx, p); err != nil {
		return err
	}

	status := model.ResponseStatus(strings.TrimSpace(req.Response))
	if !status.ValidEmployeeInput() {
		return validationErr("Ungültige Antwort")
	}

	event, err := s.events.FindByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("Event nicht gefunden")
		}
		return err
	}
	if fristExpired(event.Frist, time.Now()) {
		return deadlineErr("Die Frist ist abgelaufen. Änderungen sind nicht mehr möglich.")
	}

	existing, err := s.responses.Find(ctx, req.EventID, p.Username)
	switch {
	case err == nil:
		if existing.Status.IsConfirmed() || strings.TrimSpace(existing.EndTime) != "" {
			return conflictErr(respondLockedMsg)
		}
		// Withdrawing clears status and remark unconditionally, whatever
		// the request carried; the row itself stays.
		if status == model.ResponseNone {
			return s.responses.SetStatusRemark(ctx, req.EventID, p.Username, model.ResponseNone, "")
		}
		return s.responses.SetStatusRemark(ctx, req.EventID, p.Username, status, strings.TrimSpace(req.Remark))
	case errors.Is(err, gorm.ErrRecordNotFound):
		if status == model.ResponseNone {
			return nil
		}
		return s.responses.Create(ctx, &model.Response{
			EventID:  req.EventID,
			Username: p.Username,
			Status:   status,
			Remark:   strings.TrimSpace(req.Remark),
		})
	default:
		return err
	}
}

func (s *responseService) SetEndTime(ctx context.Context, p model.Principal, req dto.EndTimeRequest) error {
	if err := s.auth.RequireConsent(ctx, p); err != nil {
		return err
	}

	endTime := strings.TrimSpace(req.EndTime)
	if req.EventID == "" || endTime == "" {
		return validationErr("event_id und end_time erforderlich")
	}

	existing, err := s.responses.Find(ctx, req.EventID, p.Username)
	switch {
	case err == nil:
		if strings.TrimSpace(existing.EndTime) != "" {
			return conflictErr("Endzeit bereits gespeichert")
		}
		return s.responses.SetEndTime(ctx, req.EventID, p.Username, endTime)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.responses.Create(ctx, &model.Response{
			EventID:  req.EventID,
			Username: p.Username,
			EndTime:  endTime,
		})
	default:
		return err
	}
}

// upsertStatus sets the pair's status, creating the row when none exists.
func (s *responseService) upsertStatus(ctx context.Context, eventID, username string, status model.ResponseStatus) error {
	rows, err := s.responses.SetStatus(ctx, eventID, username, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.responses.Create(ctx, &model.Response{
			EventID:  eventID,
			Username: username,
			Status:   status,
		})
	}
	return nil
}

func (s *responseService) Assign(ctx context.Context, req dto.AssignUserRequest) error {
	if _, err := s.events.FindByID(ctx, req.EventID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundErr("Event nicht gefunden")
		}
		return err
	}
	exists, err := s.users.Exists(ctx, req.Username)
	if err != nil {
		return err
	}
	if !exists {
		return notFoundErr("User nicht gefunden")
	}
	return s.upsertStatus(ctx, req.EventID, req.Username, model.ResponseConfirmed)
}

func (s *responseService) Remove(ctx context.Context, req dto.RemoveUserRequest) error {
	return s.upsertStatus(ctx, req.EventID, req.Username, model.ResponseRemovedByManager)
}

func (s *responseService) Confirm(ctx context.Context, req dto.ConfirmRequest) error {
	var status model.ResponseStatus
	switch strings.TrimSpace(req.Decision) {
	case string(model.ResponseConfirmed):
		status = model.ResponseConfirmed
	case string(model.ResponseDeclined):
		// manager rejection keeps its own token so the UI can tell the
		// cases apart
		status = model.ResponseRejectedByManager
	default:
		return validationErr("Ungültige Entscheidung")
	}
	return s.upsertStatus(ctx, req.EventID, req.Username, status)
}

func (s *responseService) EditEntry(ctx context.Context, req dto.EditEntryRequest) error {
	startTime := strings.TrimSpace(req.StartTime)
	endTime := strings.TrimSpace(req.EndTime)
	remark := strings.TrimSpace(req.Remark)

	oldStart, oldRemark := "", ""
	existing, err := s.responses.Find(ctx, req.EventID, req.Username)
	switch {
	case err == nil:
		oldStart = existing.StartTime
		oldRemark = existing.Remark
		if err := s.responses.EditEntry(ctx, req.EventID, req.Username, startTime, endTime, remark, req.RateOverride); err != nil {
			return err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := s.responses.Create(ctx, &model.Response{
			EventID:      req.EventID,
			Username:     req.Username,
			Status:       model.ResponseConfirmed,
			Remark:       remark,
			StartTime:    startTime,
			EndTime:      endTime,
			RateOverride: req.RateOverride,
		}); err != nil {
			return err
		}
	default:
		return err
	}

	changedStart := startTime != "" && startTime != oldStart
	changedRemark := remark != oldRemark
	if changedStart || changedRemark {
		s.notifyEntryChanged(ctx, req.EventID, req.Username, startTime, oldStart, remark, changedRemark)
	}
	return nil
}

// notifyEntryChanged mails the employee about the edited entry. Missing
// users, events or addresses drop the mail silently.
func (s *responseService) notifyEntryChanged(ctx context.Context, eventID, username, newStart, oldStart, remark string, changedRemark bool) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return
	}
	event, err := s.events.FindByID(ctx, eventID)
	if err != nil {
		return
	}
	if user.Email == nil || strings.TrimSpace(*user.Email) == "" {
		return
	}

	employeeName := user.FullName()
	if employeeName == "" {
		employeeName = username
	}
	title := strings.TrimSpace(event.Title)
	if title == "" {
		title = "Einsatz"
	}
	mailRemark := ""
	if changedRemark {
		mailRemark = remark
	}
	mailStart := newStart
	if mailStart == "" {
		mailStart = oldStart
	}

	subject := "Änderung zu deinem Einsatz: " + title
	body := buildChangeMail(employeeName, title, event.Start, event.Ort, event.Dienstkleidung, mailStart, mailRemark)
	s.notifier.Notify(ctx, strings.TrimSpace(*user.Email), subject, body)
}

func (s *responseService) SendMailAll(ctx context.Context) (*dto.SendMailAllResponse, error) {
	users, err := s.users.ListByRole(ctx, model.RoleMitarbeiter)
	if err != nil {
		return nil, err
	}

	sent := 0
	for i := range users {
		u := &users[i]
		if u.Email == nil {
			continue
		}
		addr := strings.TrimSpace(*u.Email)
		if addr == "" {
			continue
		}
		s.notifier.Notify(ctx, addr, broadcastSubject, broadcastBody)
		sent++
	}
	return &dto.SendMailAllResponse{Status: "ok", Sent: sent}, nil
}
