package service

import (
	"context"
	"testing"

	"einsatzplan/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reportFixture struct {
	events    *fakeEventRepo
	responses *fakeResponseRepo
	users     *fakeUserRepo
	svc       ReportService
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	events := newFakeEventRepo()
	responses := newFakeResponseRepo()
	users := newFakeUserRepo()
	auth := NewAuthService(users, testConfig())
	return &reportFixture{
		events:    events,
		responses: responses,
		users:     users,
		svc:       NewReportService(events, responses, users, auth),
	}
}

func (f *reportFixture) seed(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, f.users.Create(ctx, &model.User{
		Username: "anna", Role: model.RoleMitarbeiter, ConsentGiven: true,
		Vorname: "Anna", Nachname: "Arbeit", Stundensatz: floatPtr(12),
	}))
	require.NoError(t, f.users.Create(ctx, &model.User{
		Username: "ben", Role: model.RoleMitarbeiter, ConsentGiven: true,
		Vorname: "Ben", Nachname: "Bereit",
	}))

	// Event rate applies (use_event_rate nil ⇒ 1)
	require.NoError(t, f.events.Create(ctx, &model.Event{
		ID: "e1", Title: "Stadtfest", Start: "2024-05-01T18:00", Stundensatz: floatPtr(15),
	}))
	// Profile rate applies
	require.NoError(t, f.events.Create(ctx, &model.Event{
		ID: "e2", Title: "Messe", Start: "2024-06-10T08:00", UseEventRate: intPtr(0),
	}))

	// anna: 18:00–23:00 at event rate 15 → 5h, 75.00
	require.NoError(t, f.responses.Create(ctx, &model.Response{
		EventID: "e1", Username: "anna", Status: model.ResponseConfirmed,
		StartTime: "18:00", EndTime: "23:00",
	}))
	// anna: profile rate 12, override 14 wins → 8h, 112.00
	require.NoError(t, f.responses.Create(ctx, &model.Response{
		EventID: "e2", Username: "anna", Status: model.ResponseConfirmed,
		StartTime: "08:00", EndTime: "16:00", RateOverride: floatPtr(14),
	}))
	// ben: confirmed but no end time → excluded
	require.NoError(t, f.responses.Create(ctx, &model.Response{
		EventID: "e1", Username: "ben", Status: model.ResponseConfirmed, StartTime: "18:00",
	}))
	// ben: accepted only → excluded
	require.NoError(t, f.responses.Create(ctx, &model.Response{
		EventID: "e2", Username: "ben", Status: model.ResponseAccepted,
		StartTime: "08:00", EndTime: "16:00",
	}))
}

func TestWorkedHoursReport(t *testing.T) {
	ctx := context.Background()
	chef := model.Principal{Username: "chef1", Role: model.RoleChef}

	t.Run("only confirmed end-timed rows count", func(t *testing.T) {
		f := newReportFixture(t)
		f.seed(t)

		rep, err := f.svc.WorkedHours(ctx, chef, "")
		require.NoError(t, err)
		require.Len(t, rep.Employees, 1)

		anna := rep.Employees[0]
		assert.Equal(t, "anna", anna.Username)
		assert.Equal(t, "Anna Arbeit", anna.Name)
		require.Len(t, anna.Entries, 2)
		assert.InDelta(t, 13.0, anna.TotalHours, 1e-9)
		assert.True(t, anna.TotalPay.Equal(decimal.RequireFromString("187")), "got %s", anna.TotalPay)
	})

	t.Run("rate override wins over profile rate", func(t *testing.T) {
		f := newReportFixture(t)
		f.seed(t)

		rep, err := f.svc.WorkedHours(ctx, chef, "2024-06")
		require.NoError(t, err)
		require.Len(t, rep.Employees, 1)
		require.Len(t, rep.Employees[0].Entries, 1)
		entry := rep.Employees[0].Entries[0]
		assert.Equal(t, 14.0, entry.Rate)
		assert.True(t, entry.Pay.Equal(decimal.RequireFromString("112")))
	})

	t.Run("month filter on event start", func(t *testing.T) {
		f := newReportFixture(t)
		f.seed(t)

		rep, err := f.svc.WorkedHours(ctx, chef, "2024-05")
		require.NoError(t, err)
		require.Len(t, rep.Employees, 1)
		require.Len(t, rep.Employees[0].Entries, 1)
		assert.Equal(t, "e1", rep.Employees[0].Entries[0].EventID)
		assert.Equal(t, "2024-05-01", rep.Employees[0].Entries[0].Date)
	})

	t.Run("bad month rejected", func(t *testing.T) {
		f := newReportFixture(t)
		_, err := f.svc.WorkedHours(ctx, chef, "Mai 2024")
		var svcErr *Error
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, KindValidation, svcErr.Kind)
	})

	t.Run("employee sees only their own rows", func(t *testing.T) {
		f := newReportFixture(t)
		f.seed(t)

		// give ben a billable row to prove it is filtered out for anna
		require.NoError(t, f.responses.Create(ctx, &model.Response{
			EventID: "e1", Username: "ben2", Status: model.ResponseConfirmed,
			StartTime: "18:00", EndTime: "20:00",
		}))

		rep, err := f.svc.WorkedHours(ctx, model.Principal{Username: "anna", Role: model.RoleMitarbeiter}, "")
		require.NoError(t, err)
		require.Len(t, rep.Employees, 1)
		assert.Equal(t, "anna", rep.Employees[0].Username)
	})

	t.Run("missing start falls back to event time of day", func(t *testing.T) {
		f := newReportFixture(t)
		f.seed(t)
		require.NoError(t, f.users.Create(ctx, &model.User{Username: "carla", Role: model.RoleMitarbeiter, ConsentGiven: true}))
		require.NoError(t, f.responses.Create(ctx, &model.Response{
			EventID: "e1", Username: "carla", Status: model.ResponseConfirmed, EndTime: "22:00",
		}))

		rep, err := f.svc.WorkedHours(ctx, chef, "")
		require.NoError(t, err)
		require.Len(t, rep.Employees, 2)
		carla := rep.Employees[1]
		require.Equal(t, "carla", carla.Username)
		require.Len(t, carla.Entries, 1)
		// event start 18:00 → 4h
		assert.Equal(t, "18:00", carla.Entries[0].StartTime)
		assert.InDelta(t, 4.0, carla.Entries[0].Hours, 1e-9)
	})

	t.Run("overnight shift wraps", func(t *testing.T) {
		f := newReportFixture(t)
		require.NoError(t, f.users.Create(ctx, &model.User{Username: "nacht", Role: model.RoleMitarbeiter, ConsentGiven: true}))
		require.NoError(t, f.events.Create(ctx, &model.Event{ID: "n1", Title: "Nachtwache", Start: "2024-05-02T22:00", Stundensatz: floatPtr(10)}))
		require.NoError(t, f.responses.Create(ctx, &model.Response{
			EventID: "n1", Username: "nacht", Status: model.ResponseConfirmed,
			StartTime: "22:00", EndTime: "06:00",
		}))

		rep, err := f.svc.WorkedHours(ctx, chef, "")
		require.NoError(t, err)
		require.Len(t, rep.Employees, 1)
		assert.InDelta(t, 8.0, rep.Employees[0].TotalHours, 1e-9)
		assert.True(t, rep.Employees[0].TotalPay.Equal(decimal.RequireFromString("80")))
	})
}
