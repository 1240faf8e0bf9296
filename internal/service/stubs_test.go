package service

import (
	"context"
	"errors"
	"sync"

	"cafeteria-admin/internal/model"
	"cafeteria-admin/internal/repository"
)

// ── In-memory repositories ──────────────────────────────────────────────────

type stubMenuRepo struct {
	items     map[string]model.MenuItem
	batchCall int
	lastIDs   []string
}

func newStubMenuRepo(items ...model.MenuItem) *stubMenuRepo {
	r := &stubMenuRepo{items: make(map[string]model.MenuItem)}
	for _, it := range items {
		r.items[it.ID] = it
	}
	return r
}

func (r *stubMenuRepo) Create(_ context.Context, item *model.MenuItem) error {
	if item.ID == "" {
		item.ID = model.NewID()
	}
	r.items[item.ID] = *item
	return nil
}

func (r *stubMenuRepo) FindAll(_ context.Context) ([]model.MenuItem, error) {
	out := make([]model.MenuItem, 0, len(r.items))
	for _, it := range r.items {
		out = append(out, it)
	}
	return out, nil
}

func (r *stubMenuRepo) FindByID(_ context.Context, id string) (*model.MenuItem, error) {
	it, ok := r.items[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &it, nil
}

func (r *stubMenuRepo) FindByIDs(_ context.Context, ids []string) ([]model.MenuItem, error) {
	r.batchCall++
	r.lastIDs = ids
	var out []model.MenuItem
	for _, id := range ids {
		if it, ok := r.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

type stubOrderRepo struct {
	orders []model.Order
	err    error
}

func (r *stubOrderRepo) Create(_ context.Context, o *model.Order) error {
	if r.err != nil {
		return r.err
	}
	o.ID = model.NewID()
	r.orders = append(r.orders, *o)
	return nil
}

func (r *stubOrderRepo) FindAll(_ context.Context) ([]model.Order, error) {
	return r.orders, nil
}

func (r *stubOrderRepo) FindByID(_ context.Context, id string) (*model.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubInventoryRepo struct {
	bySKU map[string]model.InventoryItem
}

func newStubInventoryRepo() *stubInventoryRepo {
	return &stubInventoryRepo{bySKU: make(map[string]model.InventoryItem)}
}

func (r *stubInventoryRepo) FindAll(_ context.Context) ([]model.InventoryItem, error) {
	out := make([]model.InventoryItem, 0, len(r.bySKU))
	for _, it := range r.bySKU {
		out = append(out, it)
	}
	return out, nil
}

func (r *stubInventoryRepo) UpsertBySKU(_ context.Context, item *model.InventoryItem) (bool, error) {
	existing, ok := r.bySKU[item.SKU]
	if ok {
		item.ID = existing.ID
	} else {
		item.ID = model.NewID()
	}
	r.bySKU[item.SKU] = *item
	return !ok, nil
}

type stubStaffRepo struct {
	staff []model.Staff
	err   error
}

func (r *stubStaffRepo) Create(_ context.Context, s *model.Staff) error {
	s.ID = model.NewID()
	r.staff = append(r.staff, *s)
	return nil
}

func (r *stubStaffRepo) FindActiveByPIN(_ context.Context, pin string) (*model.Staff, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, s := range r.staff {
		if s.PIN == pin && s.IsActive {
			return &s, nil
		}
	}
	return nil, repository.ErrNotFound
}

type stubDiagnostics struct {
	name  string
	names []string
	err   error
}

func (d *stubDiagnostics) DatabaseName() string { return d.name }

func (d *stubDiagnostics) CollectionNames(context.Context) ([]string, error) {
	return d.names, d.err
}

// recordingBroadcaster captures published events.
type recordingBroadcaster struct {
	mu     sync.Mutex
	events []string
}

func (b *recordingBroadcaster) Broadcast(eventType string, _ interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, eventType)
}

var errStoreDown = errors.New("connection refused")

func intPtr(i int) *int { return &i }

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }
