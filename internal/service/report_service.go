package service

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"einsatzplan/internal/dto"
	"einsatzplan/internal/model"
	"einsatzplan/internal/repository"

	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

type ReportService interface {
	// WorkedHours aggregates confirmed, end-timed responses into per-employee
	// hour and pay totals. Managers see every employee, an employee only
	// themselves. month filters on the event start ("YYYY-MM", optional).
	WorkedHours(ctx context.Context, p model.Principal, month string) (*dto.ReportResponse, error)
}

type reportService struct {
	events    repository.EventRepository
	responses repository.ResponseRepository
	users     repository.UserRepository
	auth      AuthService
}

func NewReportService(events repository.EventRepository, responses repository.ResponseRepository, users repository.UserRepository, auth AuthService) ReportService {
	return &reportService{events: events, responses: responses, users: users, auth: auth}
}

func (s *reportService) WorkedHours(ctx context.Context, p model.Principal, month string) (*dto.ReportResponse, error) {
	if err := s.auth.RequireConsent(ctx, p); err != nil {
		return nil, err
	}

	month = strings.TrimSpace(month)
	if month != "" && !monthPattern.MatchString(month) {
		return nil, validationErr("month muss das Format JJJJ-MM haben")
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, err
	}
	eventByID := make(map[string]*model.Event, len(events))
	for i := range events {
		eventByID[events[i].ID] = &events[i]
	}

	rows, err := s.responses.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	userByName := make(map[string]*model.User, len(users))
	for i := range users {
		userByName[users[i].Username] = &users[i]
	}

	isManager := p.IsManager()
	byEmployee := make(map[string]*dto.EmployeeReport)

	for i := range rows {
		r := &rows[i]
		if !r.Status.IsConfirmed() || strings.TrimSpace(r.EndTime) == "" {
			continue
		}
		if !isManager && r.Username != p.Username {
			continue
		}

		event, ok := eventByID[r.EventID]
		if !ok {
			continue
		}
		if month != "" && !strings.HasPrefix(strings.TrimSpace(event.Start), month) {
			continue
		}

		// The event's time of day stands in when no start was recorded.
		startTime := strings.TrimSpace(r.StartTime)
		if startTime == "" {
			startTime = timeOfDay(event.Start)
		}
		hours, ok := workedHours(startTime, r.EndTime)
		if !ok {
			continue
		}

		rate := s.entryRate(r, event, userByName[r.Username])
		pay := decimal.NewFromFloat(hours).Mul(decimal.NewFromFloat(rate)).Round(2)

		rep := byEmployee[r.Username]
		if rep == nil {
			rep = &dto.EmployeeReport{
				Username: r.Username,
				Name:     employeeName(userByName[r.Username], r.Username),
				TotalPay: decimal.Zero,
			}
			byEmployee[r.Username] = rep
		}
		rep.Entries = append(rep.Entries, dto.ReportEntry{
			EventID:   event.ID,
			Title:     event.Title,
			Date:      eventDate(event.Start),
			StartTime: startTime,
			EndTime:   strings.TrimSpace(r.EndTime),
			Hours:     hours,
			Rate:      rate,
			Pay:       pay,
		})
		rep.TotalHours += hours
		rep.TotalPay = rep.TotalPay.Add(pay)
	}

	result := &dto.ReportResponse{Month: month, Employees: make([]dto.EmployeeReport, 0, len(byEmployee))}
	for _, rep := range byEmployee {
		sort.Slice(rep.Entries, func(a, b int) bool { return rep.Entries[a].Date < rep.Entries[b].Date })
		result.Employees = append(result.Employees, *rep)
	}
	sort.Slice(result.Employees, func(a, b int) bool {
		return result.Employees[a].Username < result.Employees[b].Username
	})
	return result, nil
}

// entryRate resolves the hourly rate for one payroll entry: the manager
// override wins, then the event/profile rate rule.
func (s *reportService) entryRate(r *model.Response, event *model.Event, user *model.User) float64 {
	if r.RateOverride != nil {
		return *r.RateOverride
	}
	profileRate := 0.0
	if user != nil && user.Stundensatz != nil {
		profileRate = *user.Stundensatz
	}
	return myRate(event, false, profileRate)
}

func employeeName(user *model.User, fallback string) string {
	if user != nil {
		if name := user.FullName(); name != "" {
			return name
		}
	}
	return fallback
}

func eventDate(start string) string {
	s := strings.TrimSpace(start)
	if len(s) >= 10 && datePattern.MatchString(s[:10]) {
		return s[:10]
	}
	return s
}
