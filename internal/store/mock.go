package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"sparkle/internal/models"
)

// MockUserStore is an in-memory UserStore for tests.
type MockUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*models.User

	// ErrorOnNextCall is returned (and cleared) by the next store call,
	// for exercising failure paths.
	ErrorOnNextCall error
}

func NewMockUserStore() *MockUserStore {
	return &MockUserStore{users: make(map[primitive.ObjectID]*models.User)}
}

func (m *MockUserStore) checkError() error {
	if m.ErrorOnNextCall != nil {
		err := m.ErrorOnNextCall
		m.ErrorOnNextCall = nil
		return err
	}
	return nil
}

func (m *MockUserStore) Create(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}
	u.Email = strings.ToLower(u.Email)
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrDuplicate
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if u.Cart == nil {
		u.Cart = []models.CartItem{}
	}
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.users[u.ID] = &cp
	return nil
}

func (m *MockUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}
	for _, u := range m.users {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MockUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}
	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *MockUserStore) SetVerified(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsVerified = true
	return nil
}

func (m *MockUserStore) SetLastLogin(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	u.LastLogin = &now
	return nil
}

func (m *MockUserStore) ReplaceCart(ctx context.Context, id primitive.ObjectID, cart []models.CartItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.checkError(); err != nil {
		return err
	}
	u, ok := m.users[id]
	if !ok {
		return ErrNotFound
	}
	if cart == nil {
		cart = []models.CartItem{}
	}
	u.Cart = append([]models.CartItem(nil), cart...)
	return nil
}

// MockProductStore is an in-memory ProductStore for tests.
type MockProductStore struct {
	mu       sync.RWMutex
	products map[primitive.ObjectID]*models.Product
	order    []primitive.ObjectID // insertion order

	ErrorOnNextCall error
}

func NewMockProductStore() *MockProductStore {
	return &MockProductStore{products: make(map[primitive.ObjectID]*models.Product)}
}

func (m *MockProductStore) checkError() error {
	if m.ErrorOnNextCall != nil {
		err := m.ErrorOnNextCall
		m.ErrorOnNextCall = nil
		return err
	}
	return nil
}

// Add seeds the mock catalog and returns the assigned id.
func (m *MockProductStore) Add(p *models.Product) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	cp := *p
	m.products[p.ID] = &cp
	m.order = append(m.order, p.ID)
	return p.ID
}

func (m *MockProductStore) All(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}
	out := []models.Product{}
	for _, id := range m.order {
		out = append(out, *m.products[id])
	}
	return out, nil
}

func (m *MockProductStore) Featured(ctx context.Context, limit int64) ([]models.Product, error) {
	all, err := m.All(ctx)
	if err != nil {
		return nil, err
	}
	if int64(len(all)) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *MockProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := m.checkError(); err != nil {
		return nil, err
	}
	p, ok := m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}
