package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/handler"
	"github.com/GTDGit/seller_hub/internal/marketplace"
	"github.com/GTDGit/seller_hub/internal/models"
	"github.com/GTDGit/seller_hub/internal/service"
)

type mockDashboard struct {
	stats *models.DashboardStats
	err   error
}

func (m *mockDashboard) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	return m.stats, m.err
}

type mockProducts struct {
	ListFn   func(search, category string) ([]models.Product, error)
	GetFn    func(id int) (*models.Product, error)
	CreateFn func(p *models.Product) (*models.Product, error)
	UpdateFn func(id int, patch models.ProductPatch) (*models.Product, error)
}

func (m *mockProducts) ListProducts(ctx context.Context, search, category string) ([]models.Product, error) {
	return m.ListFn(search, category)
}

func (m *mockProducts) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return m.GetFn(id)
}

func (m *mockProducts) CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error) {
	return m.CreateFn(p)
}

func (m *mockProducts) UpdateProduct(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error) {
	return m.UpdateFn(id, patch)
}

type mockOrders struct {
	ListFn    func(search, status string) ([]models.Order, error)
	GetFn     func(id int) (*models.OrderWithItems, error)
	CreateFn  func(o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error)
	UpdateFn  func(id int, patch models.OrderPatch) (*models.Order, error)
	BulkFn    func(ids []int, status string) (int, error)
	SyncFn    func() (marketplace.SyncResult, error)
	InvoiceFn func(id int) (marketplace.Invoice, error)
}

func (m *mockOrders) ListOrders(ctx context.Context, search, status string) ([]models.Order, error) {
	return m.ListFn(search, status)
}

func (m *mockOrders) GetOrder(ctx context.Context, id int) (*models.OrderWithItems, error) {
	return m.GetFn(id)
}

func (m *mockOrders) CreateOrder(ctx context.Context, o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error) {
	return m.CreateFn(o, items)
}

func (m *mockOrders) UpdateOrder(ctx context.Context, id int, patch models.OrderPatch) (*models.Order, error) {
	return m.UpdateFn(id, patch)
}

func (m *mockOrders) BulkUpdateOrdersStatus(ctx context.Context, ids []int, status string) (int, error) {
	return m.BulkFn(ids, status)
}

func (m *mockOrders) SyncOrders(ctx context.Context) (marketplace.SyncResult, error) {
	return m.SyncFn()
}

func (m *mockOrders) GenerateInvoice(ctx context.Context, id int) (marketplace.Invoice, error) {
	return m.InvoiceFn(id)
}

type mockReturns struct {
	returns []models.Return
}

func (m *mockReturns) ListReturns(ctx context.Context) ([]models.Return, error) {
	return m.returns, nil
}

func (m *mockReturns) CreateReturn(ctx context.Context, r *models.Return) (*models.Return, error) {
	r.ID = len(m.returns) + 1
	m.returns = append(m.returns, *r)
	return r, nil
}

type mockSettings struct {
	current *models.Settings
}

func (m *mockSettings) GetSettings(ctx context.Context) (*models.Settings, error) {
	if m.current == nil {
		return nil, service.ErrSettingsNotFound
	}
	return m.current, nil
}

func (m *mockSettings) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error) {
	if m.current == nil {
		if patch.SellerName == nil {
			return nil, service.ErrSellerNameRequired
		}
		m.current = &models.Settings{IsSandbox: true}
	}
	if patch.SellerName != nil {
		m.current.SellerName = *patch.SellerName
	}
	if patch.GSTIN != nil {
		m.current.GSTIN = patch.GSTIN
	}
	return m.current, nil
}

type mockIntelligence struct{}

func (mockIntelligence) GetSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	return []models.Suggestion{{Type: models.SuggestionStock, Message: "low", Priority: models.PriorityHigh}}, nil
}

type fixture struct {
	dashboard *mockDashboard
	products  *mockProducts
	orders    *mockOrders
	returns   *mockReturns
	settings  *mockSettings
	router    *gin.Engine
}

func setupRouter(t *testing.T, fallbackZero bool) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &fixture{
		dashboard: &mockDashboard{},
		products:  &mockProducts{},
		orders:    &mockOrders{},
		returns:   &mockReturns{},
		settings:  &mockSettings{},
		router:    gin.New(),
	}
	err := handler.RegisterRoutes(f.router, &handler.Handlers{
		Dashboard:    handler.NewDashboardHandler(f.dashboard, fallbackZero),
		Product:      handler.NewProductHandler(f.products),
		Order:        handler.NewOrderHandler(f.orders),
		Return:       handler.NewReturnHandler(f.returns),
		Settings:     handler.NewSettingsHandler(f.settings),
		Intelligence: handler.NewIntelligenceHandler(mockIntelligence{}),
	})
	require.NoError(t, err)
	return f
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Field   string `json:"field"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"requestId"`
	} `json:"meta"`
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w, env
}

func TestRegisterRoutes_EveryContractRoute(t *testing.T) {
	f := setupRouter(t, false)

	mounted := map[string]bool{}
	for _, ri := range f.router.Routes() {
		mounted[ri.Method+" "+ri.Path] = true
	}
	for _, r := range contract.Routes {
		assert.True(t, mounted[r.Method+" "+r.Path], r.Name)
	}
}

func TestListProducts_EmptyArray(t *testing.T) {
	f := setupRouter(t, false)
	var gotSearch, gotCategory string
	f.products.ListFn = func(search, category string) ([]models.Product, error) {
		gotSearch, gotCategory = search, category
		return []models.Product{}, nil
	}

	w, env := do(t, f.router, http.MethodGet, "/api/products?search=zzz&category=Audio", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
	assert.Equal(t, "zzz", gotSearch)
	assert.Equal(t, "Audio", gotCategory)
	assert.NotEmpty(t, env.Meta.RequestID)
}

func TestGetProduct_InvalidID(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodGet, "/api/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid id", env.Message)
}

func TestGetProduct_NotFound(t *testing.T) {
	f := setupRouter(t, false)
	f.products.GetFn = func(id int) (*models.Product, error) { return nil, service.ErrProductNotFound }

	w, env := do(t, f.router, http.MethodGet, "/api/products/99", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Product not found", env.Message)
	assert.False(t, env.Success)
}

func TestCreateProduct_MissingPrice(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPost, "/api/products", `{"name":"Earbuds","sku":"AUDIO-001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "price", env.Error.Field)
	assert.Equal(t, "price is required", env.Message)
}

func TestCreateProduct_NegativePrice(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPost, "/api/products", `{"name":"Earbuds","sku":"AUDIO-001","price":"-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "price", env.Error.Field)
}

func TestCreateProduct_PriceOutOfColumnRange(t *testing.T) {
	f := setupRouter(t, false)

	for _, price := range []string{`"100000000.00"`, `"1499.999"`, `1e12`} {
		w, env := do(t, f.router, http.MethodPost, "/api/products",
			`{"name":"Earbuds","sku":"AUDIO-001","price":`+price+`}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, price)
		require.NotNil(t, env.Error, price)
		assert.Equal(t, "price", env.Error.Field)
		assert.Equal(t, "price is not a valid amount", env.Message)
	}
}

func TestCreateProduct_PriceAtColumnLimit(t *testing.T) {
	f := setupRouter(t, false)
	f.products.CreateFn = func(p *models.Product) (*models.Product, error) {
		p.ID = 1
		return p, nil
	}

	w, _ := do(t, f.router, http.MethodPost, "/api/products",
		`{"name":"Earbuds","sku":"AUDIO-001","price":"99999999.99"}`)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestCreateProduct_MalformedBody(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPost, "/api/products", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", env.Message)
}

func TestCreateProduct_Created(t *testing.T) {
	f := setupRouter(t, false)
	f.products.CreateFn = func(p *models.Product) (*models.Product, error) {
		p.ID = 1
		return p, nil
	}

	w, env := do(t, f.router, http.MethodPost, "/api/products",
		`{"name":"Earbuds","sku":"AUDIO-001","price":"1499.00","stock":50}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var p struct {
		ID                int    `json:"id"`
		Price             string `json:"price"`
		Stock             int    `json:"stock"`
		LowStockThreshold int    `json:"lowStockThreshold"`
		IsActive          bool   `json:"isActive"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &p))
	assert.Equal(t, "1499.00", p.Price)
	assert.Equal(t, 50, p.Stock)
	assert.Equal(t, 5, p.LowStockThreshold)
	assert.True(t, p.IsActive)
}

func TestCreateProduct_DuplicateSKU(t *testing.T) {
	f := setupRouter(t, false)
	f.products.CreateFn = func(p *models.Product) (*models.Product, error) { return nil, service.ErrSKUExists }

	w, env := do(t, f.router, http.MethodPost, "/api/products", `{"name":"X","sku":"AUDIO-001","price":1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "SKU_EXISTS", env.Error.Code)
	assert.Equal(t, "sku", env.Error.Field)
}

func TestUpdateProduct_PartialPatch(t *testing.T) {
	f := setupRouter(t, false)
	var got models.ProductPatch
	f.products.UpdateFn = func(id int, patch models.ProductPatch) (*models.Product, error) {
		got = patch
		return &models.Product{ID: id, Stock: *patch.Stock}, nil
	}

	w, _ := do(t, f.router, http.MethodPut, "/api/products/3", `{"stock":7}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Stock)
	assert.Equal(t, 7, *got.Stock)
	assert.Nil(t, got.Name)
	assert.Nil(t, got.Price)
}

func TestCreateOrder_NestedItemValidation(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPost, "/api/orders",
		`{"orderId":"OD1","totalAmount":"10.00","items":[{"sku":"A","quantity":0,"price":"10.00"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "items[0].quantity", env.Error.Field)
}

func TestCreateOrder_DuplicateOrderID(t *testing.T) {
	f := setupRouter(t, false)
	f.orders.CreateFn = func(o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error) {
		return nil, service.ErrOrderExists
	}

	w, env := do(t, f.router, http.MethodPost, "/api/orders", `{"orderId":"OD1","totalAmount":"10.00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "orderId", env.Error.Field)
}

func TestListOrders_PassesFilters(t *testing.T) {
	f := setupRouter(t, false)
	var gotSearch, gotStatus string
	f.orders.ListFn = func(search, status string) ([]models.Order, error) {
		gotSearch, gotStatus = search, status
		return []models.Order{}, nil
	}

	w, _ := do(t, f.router, http.MethodGet, "/api/orders?status=PACKED&search=rahul", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "rahul", gotSearch)
	assert.Equal(t, "PACKED", gotStatus)
}

func TestGetOrder_NotFound(t *testing.T) {
	f := setupRouter(t, false)
	f.orders.GetFn = func(id int) (*models.OrderWithItems, error) { return nil, service.ErrOrderNotFound }

	w, env := do(t, f.router, http.MethodGet, "/api/orders/5", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Order not found", env.Message)
}

func TestBulkStatus(t *testing.T) {
	f := setupRouter(t, false)
	f.orders.BulkFn = func(ids []int, status string) (int, error) { return 2, nil }

	w, env := do(t, f.router, http.MethodPost, "/api/orders/bulk-status", `{"ids":[1,2,999],"status":"SHIPPED"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"count":2}`, string(env.Data))
}

func TestBulkStatus_EmptyIDs(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPost, "/api/orders/bulk-status", `{"ids":[],"status":"SHIPPED"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "ids", env.Error.Field)
}

func TestSyncOrders(t *testing.T) {
	f := setupRouter(t, false)
	f.orders.SyncFn = func() (marketplace.SyncResult, error) { return marketplace.SyncResult{ImportedCount: 2}, nil }

	w, env := do(t, f.router, http.MethodPost, "/api/orders/sync", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Sync successful","syncedCount":2}`, string(env.Data))
}

func TestSyncOrders_MarketplaceFailures(t *testing.T) {
	f := setupRouter(t, false)

	f.orders.SyncFn = func() (marketplace.SyncResult, error) {
		return marketplace.SyncResult{}, &marketplace.Error{Op: "sync", Transient: true, Err: errors.New("timeout")}
	}
	w, _ := do(t, f.router, http.MethodPost, "/api/orders/sync", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	f.orders.SyncFn = func() (marketplace.SyncResult, error) {
		return marketplace.SyncResult{}, &marketplace.Error{Op: "sync", Err: errors.New("bad credentials")}
	}
	w, _ = do(t, f.router, http.MethodPost, "/api/orders/sync", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateInvoice(t *testing.T) {
	f := setupRouter(t, false)
	f.orders.InvoiceFn = func(id int) (marketplace.Invoice, error) {
		if id != 1 {
			return marketplace.Invoice{}, service.ErrOrderNotFound
		}
		return marketplace.Invoice{DocumentURL: marketplace.PlaceholderInvoiceURL}, nil
	}

	w, env := do(t, f.router, http.MethodPost, "/api/orders/1/invoice", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"url":"/invoice_placeholder.pdf"}`, string(env.Data))

	w, _ = do(t, f.router, http.MethodPost, "/api/orders/2/invoice", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDashboard_ErrorSurfaced(t *testing.T) {
	f := setupRouter(t, false)
	f.dashboard.err = errors.New("db down")

	w, env := do(t, f.router, http.MethodGet, "/api/dashboard/stats", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", env.Message)
}

func TestDashboard_FallbackZero(t *testing.T) {
	f := setupRouter(t, true)
	f.dashboard.err = errors.New("db down")

	w, env := do(t, f.router, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"totalOrders":0,"pendingDispatch":0,"totalSales":"0.00","lowStockCount":0,"returnsCount":0}`,
		string(env.Data))
}

func TestDashboard_Stats(t *testing.T) {
	f := setupRouter(t, false)
	f.dashboard.stats = &models.DashboardStats{TotalOrders: 3, PendingDispatch: 1, TotalSales: models.MustMoney("4997")}

	w, env := do(t, f.router, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"totalSales":"4997.00"`)
}

func TestSettings_Lifecycle(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodGet, "/api/settings", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Settings not found", env.Message)

	w, env = do(t, f.router, http.MethodPut, "/api/settings", `{"isSandbox":false}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "sellerName", env.Error.Field)

	w, _ = do(t, f.router, http.MethodPut, "/api/settings", `{"sellerName":"TechGadgets India"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = do(t, f.router, http.MethodGet, "/api/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"sellerName":"TechGadgets India"`)
}

func TestSettings_InvalidGSTIN(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPut, "/api/settings", `{"sellerName":"X","gstin":"short"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "gstin", env.Error.Field)
}

func TestReturns_CreateAndList(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodPost, "/api/returns", `{"returnId":"RT1","type":"UNKNOWN"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "type", env.Error.Field)

	w, _ = do(t, f.router, http.MethodPost, "/api/returns", `{"returnId":"RT1","type":"RTO","orderId":1}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env = do(t, f.router, http.MethodGet, "/api/returns", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, string(env.Data), `"returnId":"RT1"`)
}

func TestSuggestions(t *testing.T) {
	f := setupRouter(t, false)

	w, env := do(t, f.router, http.MethodGet, "/api/intelligence/suggestions", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"type":"stock","message":"low","priority":"high"}]`, string(env.Data))
}
