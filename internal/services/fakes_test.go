package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/yoockh/facultyportal/internal/models"
	"github.com/yoockh/facultyportal/internal/utils"
)

type fakeEducationRepo struct {
	rows map[string]*models.Education
	err  error
}

func (f *fakeEducationRepo) GetByUserID(_ context.Context, userID string) (*models.Education, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.rows[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return e, nil
}

func (f *fakeEducationRepo) Upsert(_ context.Context, e *models.Education) error {
	if f.rows == nil {
		f.rows = map[string]*models.Education{}
	}
	f.rows[e.UserID] = e
	return nil
}

func (f *fakeEducationRepo) Delete(_ context.Context, userID string) error {
	if _, ok := f.rows[userID]; !ok {
		return utils.ErrNotFound
	}
	delete(f.rows, userID)
	return nil
}

type fakeExperienceRepo struct {
	rows     []models.Experience
	err      error
	replaced int
}

func (f *fakeExperienceRepo) ListByUser(_ context.Context, userID string) ([]models.Experience, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Experience
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeExperienceRepo) ReplaceAll(_ context.Context, userID string, rows []models.Experience) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.rows = append(kept, rows...)
	f.replaced++
	return nil
}

func (f *fakeExperienceRepo) Update(_ context.Context, e *models.Experience) error {
	for i, r := range f.rows {
		if r.ID == e.ID && r.UserID == e.UserID {
			f.rows[i] = *e
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakeExperienceRepo) Delete(_ context.Context, userID, id string) error {
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type fakePublicationRepo struct {
	rows []models.Publication
	err  error
}

func (f *fakePublicationRepo) ListByUser(_ context.Context, userID string) ([]models.Publication, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Publication
	for _, r := range f.rows {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePublicationRepo) ReplaceAll(_ context.Context, userID string, rows []models.Publication) error {
	kept := f.rows[:0]
	for _, r := range f.rows {
		if r.UserID != userID {
			kept = append(kept, r)
		}
	}
	f.rows = append(kept, rows...)
	return nil
}

func (f *fakePublicationRepo) Update(_ context.Context, p *models.Publication) error {
	for i, r := range f.rows {
		if r.ID == p.ID && r.UserID == p.UserID {
			f.rows[i] = *p
			return nil
		}
	}
	return utils.ErrNotFound
}

func (f *fakePublicationRepo) Delete(_ context.Context, userID, id string) error {
	for i, r := range f.rows {
		if r.ID == id && r.UserID == userID {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return utils.ErrNotFound
}

type fakePhDRepo struct {
	rows map[string]*models.PhD
	err  error
}

func (f *fakePhDRepo) GetByUserID(_ context.Context, userID string) (*models.PhD, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.rows[userID]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return p, nil
}

func (f *fakePhDRepo) Upsert(_ context.Context, p *models.PhD) error {
	if f.rows == nil {
		f.rows = map[string]*models.PhD{}
	}
	f.rows[p.UserID] = p
	return nil
}

func (f *fakePhDRepo) Delete(_ context.Context, userID string) error {
	if _, ok := f.rows[userID]; !ok {
		return utils.ErrNotFound
	}
	delete(f.rows, userID)
	return nil
}

type fakeMarksRepo struct {
	mu        sync.Mutex
	rows      map[string]*models.Marks
	existsErr error
	upsertErr error
	upserts   int
	afterGet  func()
}

func (f *fakeMarksRepo) GetByUserID(_ context.Context, userID string) (*models.Marks, error) {
	f.mu.Lock()
	m, ok := f.rows[userID]
	if !ok {
		f.mu.Unlock()
		return nil, utils.ErrNotFound
	}
	cp := *m
	hook := f.afterGet
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return &cp, nil
}

func (f *fakeMarksRepo) Exists(_ context.Context, userID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.rows[userID]
	return ok, nil
}

func (f *fakeMarksRepo) Upsert(_ context.Context, m *models.Marks) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.rows == nil {
		f.rows = map[string]*models.Marks{}
	}
	f.upserts++
	cp := *m
	if prev, ok := f.rows[m.UserID]; ok {
		cp.Version = prev.Version + 1
	} else {
		cp.Version = 1
	}
	f.rows[m.UserID] = &cp
	return nil
}

func (f *fakeMarksRepo) Top(_ context.Context, limit int) ([]models.Marks, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Marks, 0, len(f.rows))
	for _, m := range f.rows {
		out = append(out, *m)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type fakeHistory struct {
	mu   sync.Mutex
	rows []models.MarksHistory
}

func (f *fakeHistory) Append(_ context.Context, h *models.MarksHistory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rows = append(f.rows, *h)
	return nil
}

func (f *fakeHistory) ListByUser(_ context.Context, userID string, _ int64) ([]models.MarksHistory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.MarksHistory
	for _, h := range f.rows {
		if h.UserID == userID {
			out = append(out, h)
		}
	}
	return out, nil
}

// memCache round-trips through JSON like the redis cache does.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newMemCache() *memCache { return &memCache{entries: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dst)
}

func (c *memCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	b, err := json.Marshal(val)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = b
	return nil
}

func (c *memCache) Del(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
		c.deleted = append(c.deleted, k)
	}
	return nil
}

type fakeUserRepo struct {
	byID map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo { return &fakeUserRepo{byID: map[string]*models.User{}} }

func (f *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return utils.ErrDuplicate
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, utils.ErrNotFound
}

func (f *fakeUserRepo) SetFormSubmitted(_ context.Context, id string, submitted bool) error {
	u, ok := f.byID[id]
	if !ok {
		return utils.ErrNotFound
	}
	u.FormSubmitted = submitted
	return nil
}
