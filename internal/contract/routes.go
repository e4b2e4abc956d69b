// Package contract is the declarative API registry shared by the HTTP router
// and the Go client: route names, methods, paths, declared responses and the
// request and response payload types.
package contract

import (
	"fmt"
	"net/http"
	"reflect"
	"sort"
)

// BasePath prefixes every contract route.
const BasePath = "/api"

// SessionCookie is the cookie carrying the seller session token.
const SessionCookie = "session"

// Route names.
const (
	DashboardStats = "dashboard.stats"

	ProductsList   = "products.list"
	ProductsGet    = "products.get"
	ProductsCreate = "products.create"
	ProductsUpdate = "products.update"

	OrdersList       = "orders.list"
	OrdersGet        = "orders.get"
	OrdersCreate     = "orders.create"
	OrdersUpdate     = "orders.update"
	OrdersSync       = "orders.sync"
	OrdersInvoice    = "orders.invoice"
	OrdersBulkStatus = "orders.bulkStatus"

	ReturnsList   = "returns.list"
	ReturnsCreate = "returns.create"

	SettingsGet    = "settings.get"
	SettingsUpdate = "settings.update"

	IntelligenceSuggestions = "intelligence.suggestions"
)

// Response payload descriptors used in Route.Responses.
const (
	PayloadValidation  = "validation"
	PayloadNotFound    = "notFound"
	PayloadInternal    = "internal"
	PayloadUnavailable = "unavailable"
)

// Route describes one API operation.
type Route struct {
	Name   string
	Method string
	// Path is a template under BasePath with :name placeholders.
	Path string
	// Input is a zero value of the JSON body type, nil for routes without a body.
	Input interface{}
	// Responses maps each declared status code to its payload.
	Responses map[int]string
}

// NewInput returns a pointer to a fresh value of the route's body type, or
// nil when the route takes no body.
func (r Route) NewInput() interface{} {
	if r.Input == nil {
		return nil
	}
	return reflect.New(reflect.TypeOf(r.Input)).Interface()
}

// Declares reports whether status is one of the route's declared responses.
func (r Route) Declares(status int) bool {
	_, ok := r.Responses[status]
	return ok
}

// URL builds the concrete path of r from params.
func (r Route) URL(params map[string]string) (string, error) {
	return BuildURL(r.Path, params)
}

// Routes is the API registry.
var Routes = []Route{
	{
		Name:      DashboardStats,
		Method:    http.MethodGet,
		Path:      BasePath + "/dashboard/stats",
		Responses: map[int]string{200: "DashboardStats", 500: PayloadInternal},
	},

	{
		Name:      ProductsList,
		Method:    http.MethodGet,
		Path:      BasePath + "/products",
		Responses: map[int]string{200: "[]Product"},
	},
	{
		Name:      ProductsGet,
		Method:    http.MethodGet,
		Path:      BasePath + "/products/:id",
		Responses: map[int]string{200: "Product", 400: PayloadValidation, 404: PayloadNotFound},
	},
	{
		Name:      ProductsCreate,
		Method:    http.MethodPost,
		Path:      BasePath + "/products",
		Input:     CreateProductInput{},
		Responses: map[int]string{201: "Product", 400: PayloadValidation},
	},
	{
		Name:      ProductsUpdate,
		Method:    http.MethodPut,
		Path:      BasePath + "/products/:id",
		Input:     UpdateProductInput{},
		Responses: map[int]string{200: "Product", 400: PayloadValidation, 404: PayloadNotFound},
	},

	{
		Name:      OrdersList,
		Method:    http.MethodGet,
		Path:      BasePath + "/orders",
		Responses: map[int]string{200: "[]Order"},
	},
	{
		Name:      OrdersGet,
		Method:    http.MethodGet,
		Path:      BasePath + "/orders/:id",
		Responses: map[int]string{200: "OrderWithItems", 400: PayloadValidation, 404: PayloadNotFound},
	},
	{
		Name:      OrdersCreate,
		Method:    http.MethodPost,
		Path:      BasePath + "/orders",
		Input:     CreateOrderInput{},
		Responses: map[int]string{201: "OrderWithItems", 400: PayloadValidation},
	},
	{
		Name:      OrdersUpdate,
		Method:    http.MethodPut,
		Path:      BasePath + "/orders/:id",
		Input:     UpdateOrderInput{},
		Responses: map[int]string{200: "Order", 400: PayloadValidation, 404: PayloadNotFound},
	},
	{
		Name:      OrdersSync,
		Method:    http.MethodPost,
		Path:      BasePath + "/orders/sync",
		Responses: map[int]string{200: "SyncResponse", 502: PayloadInternal, 503: PayloadUnavailable},
	},
	{
		Name:      OrdersInvoice,
		Method:    http.MethodPost,
		Path:      BasePath + "/orders/:id/invoice",
		Responses: map[int]string{
			200: "InvoiceResponse", 400: PayloadValidation, 404: PayloadNotFound,
			502: PayloadInternal, 503: PayloadUnavailable,
		},
	},
	{
		Name:      OrdersBulkStatus,
		Method:    http.MethodPost,
		Path:      BasePath + "/orders/bulk-status",
		Input:     BulkStatusInput{},
		Responses: map[int]string{200: "BulkStatusResponse", 400: PayloadValidation},
	},

	{
		Name:      ReturnsList,
		Method:    http.MethodGet,
		Path:      BasePath + "/returns",
		Responses: map[int]string{200: "[]Return"},
	},
	{
		Name:      ReturnsCreate,
		Method:    http.MethodPost,
		Path:      BasePath + "/returns",
		Input:     CreateReturnInput{},
		Responses: map[int]string{201: "Return", 400: PayloadValidation},
	},

	{
		Name:      SettingsGet,
		Method:    http.MethodGet,
		Path:      BasePath + "/settings",
		Responses: map[int]string{200: "Settings", 404: PayloadNotFound},
	},
	{
		Name:      SettingsUpdate,
		Method:    http.MethodPut,
		Path:      BasePath + "/settings",
		Input:     UpdateSettingsInput{},
		Responses: map[int]string{200: "Settings", 400: PayloadValidation},
	},

	{
		Name:      IntelligenceSuggestions,
		Method:    http.MethodGet,
		Path:      BasePath + "/intelligence/suggestions",
		Responses: map[int]string{200: "[]Suggestion"},
	},
}

var byName = func() map[string]Route {
	m := make(map[string]Route, len(Routes))
	for _, r := range Routes {
		if _, dup := m[r.Name]; dup {
			panic("contract: duplicate route " + r.Name)
		}
		m[r.Name] = r
	}
	return m
}()

// Lookup returns the route registered under name.
func Lookup(name string) (Route, bool) {
	r, ok := byName[name]
	return r, ok
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Route {
	r, ok := byName[name]
	if !ok {
		panic(fmt.Sprintf("contract: unknown route %q", name))
	}
	return r
}

// Names returns every route name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
