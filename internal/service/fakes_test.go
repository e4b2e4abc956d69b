package service_test

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/lib/pq"

	"github.com/GTDGit/seller_hub/internal/models"
)

// memDB is an in-memory stand-in for the PostgreSQL repositories.
type memDB struct {
	mu       sync.Mutex
	products []models.Product
	orders   []models.Order
	items    []models.OrderItem
	returns  []models.Return
	settings *models.Settings
	nextID   int
	failNext error
}

func newMemDB() *memDB { return &memDB{nextID: 1} }

func (m *memDB) id() int {
	id := m.nextID
	m.nextID++
	return id
}

func (m *memDB) takeFailure() error {
	err := m.failNext
	m.failNext = nil
	return err
}

type memProducts struct{ *memDB }

func (s memProducts) List(_ context.Context, search, category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Product{}
	for _, p := range s.products {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(search)) {
			continue
		}
		if category != "" && (p.Category == nil || *p.Category != category) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s memProducts) GetByID(_ context.Context, id int) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s memProducts) Create(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return err
	}
	for _, existing := range s.products {
		if existing.SKU == p.SKU {
			return &pq.Error{Code: "23505"}
		}
	}
	p.ID = s.id()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.products = append(s.products, *p)
	return nil
}

func (s memProducts) Update(_ context.Context, id int, patch models.ProductPatch) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		p := &s.products[i]
		if p.ID != id {
			continue
		}
		if patch.SKU != nil {
			for _, other := range s.products {
				if other.ID != id && other.SKU == *patch.SKU {
					return nil, &pq.Error{Code: "23505"}
				}
			}
			p.SKU = *patch.SKU
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		if patch.IsActive != nil {
			p.IsActive = *patch.IsActive
		}
		p.UpdatedAt = time.Now()
		cp := *p
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (s memProducts) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products), nil
}

func (s memProducts) ListLowStock(context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Product{}
	for _, p := range s.products {
		if p.IsActive && p.Stock <= p.LowStockThreshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s memProducts) ListInactiveInStock(context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Product{}
	for _, p := range s.products {
		if !p.IsActive && p.Stock > 0 {
			out = append(out, p)
		}
	}
	return out, nil
}

type memOrders struct{ *memDB }

func (s memOrders) List(_ context.Context, search, status string) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if status != "" && o.Status != status {
			continue
		}
		if search != "" {
			q := strings.ToLower(search)
			buyer := ""
			if o.BuyerName != nil {
				buyer = strings.ToLower(*o.BuyerName)
			}
			if !strings.Contains(buyer, q) && !strings.Contains(strings.ToLower(o.OrderID), q) {
				continue
			}
		}
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out, nil
}

func (s memOrders) GetByID(_ context.Context, id int) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := o
			return &cp, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s memOrders) GetItems(_ context.Context, orderID int) ([]models.OrderItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.OrderItem{}
	for _, it := range s.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

// CreateWithItems mirrors the transactional repository: on failure nothing is kept.
func (s memOrders) CreateWithItems(_ context.Context, o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	for _, existing := range s.orders {
		if existing.OrderID == o.OrderID {
			return nil, &pq.Error{Code: "23505"}
		}
	}

	o.ID = s.id()
	o.CreatedAt = time.Now()
	o.UpdatedAt = o.CreatedAt
	out := &models.OrderWithItems{Order: *o, Items: []models.OrderItem{}}
	for _, it := range items {
		item := models.OrderItem{ID: s.id(), OrderID: o.ID, SKU: it.SKU, Quantity: it.Quantity, Price: it.Price}
		for i := range s.products {
			if s.products[i].SKU == it.SKU {
				pid := s.products[i].ID
				item.ProductID = &pid
				s.products[i].Stock -= it.Quantity
			}
		}
		out.Items = append(out.Items, item)
	}
	s.orders = append(s.orders, *o)
	s.items = append(s.items, out.Items...)
	return out, nil
}

func (s memOrders) Update(_ context.Context, id int, patch models.OrderPatch) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		o := &s.orders[i]
		if o.ID != id {
			continue
		}
		if patch.Status != nil {
			o.Status = *patch.Status
		}
		if patch.TrackingID != nil {
			o.TrackingID = patch.TrackingID
		}
		if patch.CourierName != nil {
			o.CourierName = patch.CourierName
		}
		if patch.InvoiceURL != nil {
			o.InvoiceURL = patch.InvoiceURL
		}
		cp := *o
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (s memOrders) BulkUpdateStatus(_ context.Context, ids []int, status string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	want := map[int]bool{}
	for _, id := range ids {
		want[id] = true
	}
	n := 0
	for i := range s.orders {
		if want[s.orders[i].ID] {
			s.orders[i].Status = status
			n++
		}
	}
	return n, nil
}

func (s memOrders) ListWithRTOReturns(context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []models.Order{}
	for _, o := range s.orders {
		for _, r := range s.returns {
			if r.OrderID != nil && *r.OrderID == o.ID && r.Type != nil && *r.Type == models.ReturnTypeRTO {
				out = append(out, o)
				break
			}
		}
	}
	return out, nil
}

type memReturns struct{ *memDB }

func (s memReturns) List(context.Context) ([]models.Return, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]models.Return{}, s.returns...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (s memReturns) Create(_ context.Context, r *models.Return) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	s.returns = append(s.returns, *r)
	return nil
}

type memSettings struct {
	*memDB
	upserts int
}

func (s *memSettings) Get(context.Context) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.settings == nil {
		return nil, sql.ErrNoRows
	}
	cp := *s.settings
	return &cp, nil
}

func (s *memSettings) Upsert(_ context.Context, p models.SettingsPatch) (*models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upserts++
	if s.settings == nil {
		if p.SellerName == nil {
			return nil, &pq.Error{Code: "23502"}
		}
		s.settings = &models.Settings{IsSandbox: true}
	}
	st := s.settings
	if p.SellerName != nil {
		st.SellerName = *p.SellerName
	}
	if p.SellerAddress != nil {
		st.SellerAddress = p.SellerAddress
	}
	if p.GSTIN != nil {
		st.GSTIN = p.GSTIN
	}
	if p.MarketplaceClientID != nil {
		st.MarketplaceClientID = p.MarketplaceClientID
	}
	if p.MarketplaceClientSecret != nil {
		st.MarketplaceClientSecret = p.MarketplaceClientSecret
	}
	if p.IsSandbox != nil {
		st.IsSandbox = *p.IsSandbox
	}
	st.UpdatedAt = time.Now()
	cp := *st
	return &cp, nil
}

type memStats struct{ *memDB }

func (s memStats) Stats(context.Context) (*models.DashboardStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.takeFailure(); err != nil {
		return nil, err
	}
	st := models.ZeroDashboardStats()
	for _, o := range s.orders {
		st.TotalOrders++
		if o.Status == models.OrderStatusPacked {
			st.PendingDispatch++
		}
		st.TotalSales = st.TotalSales.Add(o.TotalAmount)
	}
	for _, p := range s.products {
		if p.Stock <= p.LowStockThreshold {
			st.LowStockCount++
		}
	}
	st.ReturnsCount = len(s.returns)
	return &st, nil
}

// countingInvalidator records Invalidate calls.
type countingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (c *countingInvalidator) Invalidate(context.Context) {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
}

func (c *countingInvalidator) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
