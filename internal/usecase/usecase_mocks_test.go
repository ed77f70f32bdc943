package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"inventory-tracker/internal/domain/entity"
)

// Mock ProductRepository backed by an in-memory map. All mutations are
// mutex-guarded so the import pipeline's concurrent row operations can
// hammer it the same way they would a real store.
type mockProductRepo struct {
	mu         sync.Mutex
	nextID     uint
	products   map[uint]entity.Product
	lastFilter entity.ProductFilter

	insertDelay time.Duration
	failOnName  string
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[uint]entity.Product)}
}

func (m *mockProductRepo) seed(p entity.Product) entity.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	p.ID = m.nextID
	m.products[p.ID] = p
	return p
}

func (m *mockProductRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.products)
}

func (m *mockProductRepo) get(id uint) (entity.Product, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	return p, ok
}

func (m *mockProductRepo) byNameLocked(name string) *entity.Product {
	for _, p := range m.products {
		if p.Name == name {
			cp := p
			return &cp
		}
	}
	return nil
}

func (m *mockProductRepo) Create(ctx context.Context, product *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.byNameLocked(product.Name) != nil {
		return errors.New("unique constraint violation")
	}
	m.nextID++
	product.ID = m.nextID
	m.products[product.ID] = *product
	return nil
}

func (m *mockProductRepo) CreateIfNameAbsent(ctx context.Context, product *entity.Product) (bool, error) {
	if m.insertDelay > 0 {
		time.Sleep(m.insertDelay)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOnName != "" && product.Name == m.failOnName {
		return false, errors.New("storage fault")
	}
	if m.byNameLocked(product.Name) != nil {
		return false, nil
	}
	m.nextID++
	product.ID = m.nextID
	m.products[product.ID] = *product
	return true, nil
}

func (m *mockProductRepo) FindAll(ctx context.Context, filter entity.ProductFilter) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastFilter = filter

	products := make([]entity.Product, 0, len(m.products))
	for _, p := range m.products {
		products = append(products, p)
	}
	if strings.Contains(filter.Sort, "name") {
		sort.Slice(products, func(i, j int) bool {
			return strings.ToLower(products[i].Name) < strings.ToLower(products[j].Name)
		})
	} else {
		sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	}
	return products, nil
}

func (m *mockProductRepo) FindByID(ctx context.Context, id uint) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	cp := p
	return &cp, nil
}

func (m *mockProductRepo) FindByName(ctx context.Context, name string) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.byNameLocked(name), nil
}

func (m *mockProductRepo) FindByNameExcluding(ctx context.Context, name string, id uint) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.Name == name && p.ID != id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) Update(ctx context.Context, product *entity.Product) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return 0, nil
	}
	m.products[product.ID] = *product
	return 1, nil
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return 0, nil
	}
	delete(m.products, id)
	return 1, nil
}

// Mock InventoryHistoryRepository
type mockHistoryRepo struct {
	mu      sync.Mutex
	entries []entity.InventoryHistory
	failing bool
}

func (m *mockHistoryRepo) Create(ctx context.Context, entry *entity.InventoryHistory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failing {
		return errors.New("history insert failed")
	}
	entry.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *mockHistoryRepo) FindByProductID(ctx context.Context, productID uint) ([]entity.InventoryHistory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.InventoryHistory
	for i := len(m.entries) - 1; i >= 0; i-- {
		if m.entries[i].ProductID == productID {
			out = append(out, m.entries[i])
		}
	}
	return out, nil
}

func (m *mockHistoryRepo) forProduct(productID uint) []entity.InventoryHistory {
	entries, _ := m.FindByProductID(context.Background(), productID)
	return entries
}
