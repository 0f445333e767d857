package service

import (
	"context"
	"sort"
	"strings"
	"sync"

	"einsatzplan/internal/model"

	"gorm.io/gorm"
)

// ── In-memory UserRepository ─────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, username string) (bool, error) {
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) List(_ context.Context, exclude []string) ([]model.User, error) {
	skip := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		skip[e] = true
	}
	var out []model.User
	for _, u := range r.users {
		if !skip[u.Username] {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Nachname != out[b].Nachname {
			return out[a].Nachname < out[b].Nachname
		}
		return out[a].Vorname < out[b].Vorname
	})
	return out, nil
}

func (r *fakeUserRepo) ListByRole(_ context.Context, role string) ([]model.User, error) {
	var out []model.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Username < out[b].Username })
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *model.User) error {
	cp := *u
	r.users[u.Username] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, username string) error {
	delete(r.users, username)
	return nil
}

func (r *fakeUserRepo) Rename(_ context.Context, oldUsername, newUsername string) error {
	u, ok := r.users[oldUsername]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	cp := *u
	cp.Username = newUsername
	r.users[newUsername] = &cp
	delete(r.users, oldUsername)
	return nil
}

func (r *fakeUserRepo) SetConsent(_ context.Context, username, name, date string) error {
	u, ok := r.users[username]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.ConsentGiven = true
	u.ConsentName = name
	u.ConsentDate = date
	return nil
}

// ── In-memory EventRepository ────────────────────────────────────────────────

type fakeEventRepo struct {
	events map[string]*model.Event
	order  []string
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{events: make(map[string]*model.Event)}
}

func (r *fakeEventRepo) Create(_ context.Context, e *model.Event) error {
	cp := *e
	r.events[e.ID] = &cp
	r.order = append(r.order, e.ID)
	return nil
}

func (r *fakeEventRepo) CreateBatch(ctx context.Context, events []model.Event) error {
	for i := range events {
		if err := r.Create(ctx, &events[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeEventRepo) FindByID(_ context.Context, id string) (*model.Event, error) {
	e, ok := r.events[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *fakeEventRepo) List(_ context.Context) ([]model.Event, error) {
	out := make([]model.Event, 0, len(r.order))
	for _, id := range r.order {
		if e, ok := r.events[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *model.Event) error {
	cp := *e
	r.events[e.ID] = &cp
	return nil
}

func (r *fakeEventRepo) SetStatus(_ context.Context, id, status string) (int64, error) {
	e, ok := r.events[id]
	if !ok {
		return 0, nil
	}
	e.Status = status
	return 1, nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id string) error {
	delete(r.events, id)
	return nil
}

// ── In-memory ResponseRepository ─────────────────────────────────────────────

type fakeResponseRepo struct {
	rows   []model.Response
	nextID int64
}

func newFakeResponseRepo() *fakeResponseRepo { return &fakeResponseRepo{} }

func (r *fakeResponseRepo) find(eventID, username string) *model.Response {
	for i := range r.rows {
		if r.rows[i].EventID == eventID && r.rows[i].Username == username {
			return &r.rows[i]
		}
	}
	return nil
}

func (r *fakeResponseRepo) Find(_ context.Context, eventID, username string) (*model.Response, error) {
	if row := r.find(eventID, username); row != nil {
		cp := *row
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeResponseRepo) ListByEvent(_ context.Context, eventID string) ([]model.Response, error) {
	var out []model.Response
	for _, row := range r.rows {
		if row.EventID == eventID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *fakeResponseRepo) ListAll(_ context.Context) ([]model.Response, error) {
	return append([]model.Response(nil), r.rows...), nil
}

func (r *fakeResponseRepo) Create(_ context.Context, resp *model.Response) error {
	r.nextID++
	cp := *resp
	cp.ID = r.nextID
	r.rows = append(r.rows, cp)
	return nil
}

func (r *fakeResponseRepo) SetStatus(_ context.Context, eventID, username string, status model.ResponseStatus) (int64, error) {
	row := r.find(eventID, username)
	if row == nil {
		return 0, nil
	}
	row.Status = status
	return 1, nil
}

func (r *fakeResponseRepo) SetStatusRemark(_ context.Context, eventID, username string, status model.ResponseStatus, remark string) error {
	if row := r.find(eventID, username); row != nil {
		row.Status = status
		row.Remark = remark
	}
	return nil
}

func (r *fakeResponseRepo) SetEndTime(_ context.Context, eventID, username, endTime string) error {
	if row := r.find(eventID, username); row != nil {
		row.EndTime = endTime
	}
	return nil
}

func (r *fakeResponseRepo) EditEntry(_ context.Context, eventID, username, startTime, endTime, remark string, rateOverride *float64) error {
	row := r.find(eventID, username)
	if row == nil {
		return nil
	}
	if strings.TrimSpace(startTime) != "" {
		row.StartTime = startTime
	}
	if strings.TrimSpace(endTime) != "" {
		row.EndTime = endTime
	}
	row.Remark = remark
	row.RateOverride = rateOverride
	return nil
}

// ── Recording Notifier ───────────────────────────────────────────────────────

type sentMail struct {
	To      string
	Subject string
	Body    string
}

type recorderNotifier struct {
	mu    sync.Mutex
	mails []sentMail
}

func (n *recorderNotifier) Notify(_ context.Context, to, subject, body string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mails = append(n.mails, sentMail{To: to, Subject: subject, Body: body})
}
