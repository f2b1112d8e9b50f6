package router

import (
	"context"
	"sort"
	"sync"
	"time"

	apperrors "healthtrack/internal/errors"
	"healthtrack/internal/model"
)

// memStore backs every repository interface with in-memory maps.
type memStore struct {
	mu        sync.Mutex
	nextID    uint
	users     map[uint]*model.User
	symptoms  map[uint]*model.Symptom
	tests     map[uint]*model.DiagnosticTest
	alerts    map[uint]*model.Alert
	updateLog []map[string]interface{}
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[uint]*model.User{},
		symptoms: map[uint]*model.Symptom{},
		tests:    map[uint]*model.DiagnosticTest{},
		alerts:   map[uint]*model.Alert{},
	}
}

func (s *memStore) id() uint {
	s.nextID++
	return s.nextID
}

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperrors.ErrUserAlreadyExists
		}
	}
	user.ID = r.id()
	user.CreatedAt, user.UpdatedAt = time.Now(), time.Now()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r memUsers) EmailTakenByOther(_ context.Context, email string, userID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email && u.ID != userID {
			return true, nil
		}
	}
	return false, nil
}

func (r memUsers) Update(ctx context.Context, id uint, patch model.ProfilePatch) (*model.User, error) {
	r.mu.Lock()
	u, ok := r.users[id]
	if !ok {
		r.mu.Unlock()
		return nil, apperrors.ErrNotFound
	}
	r.updateLog = append(r.updateLog, patch.Columns())
	patch.Apply(u)
	u.UpdatedAt = time.Now()
	r.mu.Unlock()
	return r.FindByID(ctx, id)
}

type memSymptoms struct{ *memStore }

func (r memSymptoms) Create(_ context.Context, symptom *model.Symptom) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	symptom.ID = r.id()
	symptom.CreatedAt = time.Now()
	cp := *symptom
	r.symptoms[symptom.ID] = &cp
	return nil
}

func (r memSymptoms) ListByUser(ctx context.Context, userID uint) ([]model.Symptom, error) {
	return r.ListByUserSince(ctx, userID, time.Time{})
}

func (r memSymptoms) ListByUserSince(_ context.Context, userID uint, since time.Time) ([]model.Symptom, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Symptom, 0)
	for _, s := range r.symptoms {
		if s.UserID == userID && !s.Date.Before(since) {
			out = append(out, *s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

type memTests struct{ *memStore }

func (r memTests) Create(_ context.Context, test *model.DiagnosticTest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	test.ID = r.id()
	test.CreatedAt, test.UpdatedAt = time.Now(), time.Now()
	cp := *test
	r.tests[test.ID] = &cp
	return nil
}

func (r memTests) list(userID uint, keep func(*model.DiagnosticTest) bool) []model.DiagnosticTest {
	out := make([]model.DiagnosticTest, 0)
	for _, t := range r.tests {
		if t.UserID == userID && keep(t) {
			out = append(out, *t)
		}
	}
	return out
}

func (r memTests) ListByUser(_ context.Context, userID uint) ([]model.DiagnosticTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.list(userID, func(*model.DiagnosticTest) bool { return true })
	sort.Slice(out, func(i, j int) bool { return out[i].TestDate.After(out[j].TestDate) })
	return out, nil
}

func (r memTests) ListUpcoming(_ context.Context, userID uint, from time.Time) ([]model.DiagnosticTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.list(userID, func(t *model.DiagnosticTest) bool { return !t.TestDate.Before(from) })
	sort.Slice(out, func(i, j int) bool { return out[i].TestDate.Before(out[j].TestDate) })
	return out, nil
}

func (r memTests) CountByUser(_ context.Context, userID uint) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.list(userID, func(*model.DiagnosticTest) bool { return true }))), nil
}

func (r memTests) FindByIDAndOwner(_ context.Context, id, userID uint) (*model.DiagnosticTest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tests[id]
	if !ok || t.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r memTests) Update(ctx context.Context, id, userID uint, patch model.DiagnosticTestPatch) (*model.DiagnosticTest, error) {
	r.mu.Lock()
	t, ok := r.tests[id]
	if !ok || t.UserID != userID {
		r.mu.Unlock()
		return nil, apperrors.ErrNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Result != nil {
		res := *patch.Result
		t.Result = &res
	}
	if patch.TestDate != nil {
		t.TestDate = *patch.TestDate
	}
	t.UpdatedAt = time.Now()
	r.mu.Unlock()
	return r.FindByIDAndOwner(ctx, id, userID)
}

func (r memTests) Delete(_ context.Context, id, userID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tests[id]
	if !ok || t.UserID != userID {
		return apperrors.ErrNotFound
	}
	delete(r.tests, id)
	return nil
}

type memAlerts struct{ *memStore }

func (r memAlerts) Create(_ context.Context, alert *model.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	alert.ID = r.id()
	alert.Timestamp = time.Now()
	cp := *alert
	r.alerts[alert.ID] = &cp
	return nil
}

func (r memAlerts) CreateBatch(ctx context.Context, alerts []model.Alert) error {
	for i := range alerts {
		if err := r.Create(ctx, &alerts[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r memAlerts) ListByUser(_ context.Context, userID uint) ([]model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Alert, 0)
	for _, a := range r.alerts {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r memAlerts) CountByStatus(_ context.Context, userID uint, status string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, a := range r.alerts {
		if a.UserID == userID && a.Status == status {
			n++
		}
	}
	return n, nil
}

func (r memAlerts) Update(_ context.Context, id, userID uint, patch model.AlertPatch) (*model.Alert, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.alerts[id]
	if !ok || a.UserID != userID {
		return nil, apperrors.ErrNotFound
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	cp := *a
	return &cp, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }
