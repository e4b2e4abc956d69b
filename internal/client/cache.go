package client

import (
	"sync"

	"github.com/GTDGit/seller_hub/internal/contract"
)

// Invalidates lists, per mutation route, the read routes whose cached
// entries become stale once the mutation succeeds.
var Invalidates = map[string][]string{
	contract.ProductsCreate: {contract.ProductsList, contract.ProductsGet, contract.DashboardStats, contract.IntelligenceSuggestions},
	contract.ProductsUpdate: {contract.ProductsList, contract.ProductsGet, contract.DashboardStats, contract.IntelligenceSuggestions},

	contract.OrdersCreate: {
		contract.OrdersList, contract.OrdersGet, contract.DashboardStats, contract.IntelligenceSuggestions,
		contract.ProductsList, contract.ProductsGet,
	},
	contract.OrdersUpdate:     {contract.OrdersList, contract.OrdersGet, contract.DashboardStats, contract.IntelligenceSuggestions},
	contract.OrdersBulkStatus: {contract.OrdersList, contract.OrdersGet, contract.DashboardStats, contract.IntelligenceSuggestions},
	contract.OrdersSync: {
		contract.OrdersList, contract.OrdersGet, contract.DashboardStats, contract.IntelligenceSuggestions,
		contract.ProductsList, contract.ProductsGet, contract.SettingsGet,
	},
	contract.OrdersInvoice: {contract.OrdersGet},

	contract.ReturnsCreate: {contract.ReturnsList, contract.DashboardStats, contract.IntelligenceSuggestions},

	contract.SettingsUpdate: {contract.SettingsGet},
}

// Cache holds raw response payloads keyed by request. Entries are
// marked stale by mutations and refetched on the next read.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	route string
	data  []byte
	stale bool
}

// NewCache creates an empty Cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*cacheEntry)}
}

// Get returns the payload stored under key if it is present and fresh.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.stale {
		return nil, false
	}
	return e.data, true
}

// Put stores a fresh payload for key, read through route.
func (c *Cache) Put(route, key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &cacheEntry{route: route, data: data}
}

// MarkStale flags every entry read through one of routes and returns how
// many entries were flagged.
func (c *Cache) MarkStale(routes ...string) int {
	set := make(map[string]bool, len(routes))
	for _, r := range routes {
		set[r] = true
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	n := 0
	for _, e := range c.entries {
		if set[e.route] && !e.stale {
			e.stale = true
			n++
		}
	}
	return n
}

// Stale reports whether key is cached but stale.
func (c *Cache) Stale(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && e.stale
}
