// Package memstore keeps every resource in process memory. It backs
// STORE=memory and the handler tests.
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"vastuguru-api/internal/domain/cart"
	"vastuguru-api/internal/domain/content"
	"vastuguru-api/internal/domain/services"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.RWMutex
	services []services.Service
	sections map[string]content.Section
	about    *content.About
	items    []cart.Item
	nextItem uint
	now      func() time.Time
}

func New() *Store {
	return &Store{
		sections: map[string]content.Section{},
		now:      time.Now,
	}
}

func cloneService(s services.Service) services.Service {
	s.Features = slices.Clone(s.Features)
	if s.StripePriceID != nil {
		v := *s.StripePriceID
		s.StripePriceID = &v
	}
	return s
}

// ---------- services ----------

func (m *Store) matching(f services.Filter) []services.Service {
	var out []services.Service
	for _, s := range m.services {
		if f.Matches(s) {
			out = append(out, cloneService(s))
		}
	}
	slices.SortStableFunc(out, func(a, b services.Service) int {
		if c := cmp.Compare(a.Price, b.Price); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

func (m *Store) List(_ context.Context, f services.Filter) ([]services.Service, int64, error) {
	f = f.Normalize()
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.matching(f)
	total := int64(len(all))

	start := min(f.Offset(), len(all))
	end := min(start+f.Limit, len(all))
	return all[start:end], total, nil
}

func (m *Store) ListAll(_ context.Context, f services.Filter) ([]services.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.matching(f.Normalize()), nil
}

func (m *Store) find(pred func(services.Service) bool) (*services.Service, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.services {
		if pred(s) {
			c := cloneService(s)
			return &c, nil
		}
	}
	return nil, services.ErrNotFound
}

func (m *Store) Get(_ context.Context, id string) (*services.Service, error) {
	return m.find(func(s services.Service) bool { return s.ID == id })
}

func (m *Store) GetBySlug(_ context.Context, slug string) (*services.Service, error) {
	return m.find(func(s services.Service) bool { return s.Slug == slug })
}

func (m *Store) GetByStripePrice(_ context.Context, priceID string) (*services.Service, error) {
	return m.find(func(s services.Service) bool {
		return s.StripePriceID != nil && *s.StripePriceID == priceID
	})
}

func (m *Store) Create(_ context.Context, s *services.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	now := m.now()
	s.CreatedAt = now
	s.UpdatedAt = now
	m.services = append(m.services, cloneService(*s))
	return nil
}

func (m *Store) Update(_ context.Context, s *services.Service) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == s.ID {
			s.CreatedAt = m.services[i].CreatedAt
			s.UpdatedAt = m.now()
			m.services[i] = cloneService(*s)
			return nil
		}
	}
	return services.ErrNotFound
}

func (m *Store) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.services {
		if m.services[i].ID == id {
			m.services = slices.Delete(m.services, i, i+1)
			return nil
		}
	}
	return services.ErrNotFound
}

func (m *Store) SlugTaken(_ context.Context, slug, exceptID string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, s := range m.services {
		if s.Slug == slug && s.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

// ---------- content ----------

func (m *Store) ListSections(_ context.Context) ([]content.Section, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]content.Section, 0, len(m.sections))
	for _, s := range m.sections {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b content.Section) int { return cmp.Compare(a.Key, b.Key) })
	return out, nil
}

func (m *Store) SaveSections(_ context.Context, sections []content.Section) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for _, s := range sections {
		s.UpdatedAt = now
		m.sections[s.Key] = s
	}
	return nil
}

func (m *Store) GetAbout(_ context.Context) (content.About, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.about == nil {
		return content.EmptyAbout(), nil
	}
	a := *m.about
	a.Services = slices.Clone(a.Services)
	return a, nil
}

func (m *Store) SaveAbout(_ context.Context, a *content.About) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	a.Normalize()
	a.UpdatedAt = m.now()
	stored := *a
	stored.Services = slices.Clone(a.Services)
	m.about = &stored
	return nil
}

// ---------- cart ----------

func (m *Store) ListItems(_ context.Context, userID uint) ([]cart.Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []cart.Item{}
	for _, it := range m.items {
		if it.UserID == userID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *Store) AddItem(_ context.Context, item *cart.Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, it := range m.items {
		if it.UserID == item.UserID && it.ItemID == item.ItemID {
			return cart.ErrAlreadyInCart
		}
	}
	m.nextItem++
	item.ID = m.nextItem
	item.CreatedAt = m.now()
	m.items = append(m.items, *item)
	return nil
}

func (m *Store) RemoveItem(_ context.Context, userID, itemID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, it := range m.items {
		if it.ID == itemID && it.UserID == userID {
			m.items = slices.Delete(m.items, i, i+1)
			return nil
		}
	}
	return cart.ErrItemNotFound
}
