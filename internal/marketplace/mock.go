package marketplace

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/models"
)

// Seeder loads demo orders and reports how many were imported.
type Seeder interface {
	Seed(ctx context.Context) (int, error)
}

// InvoiceStore persists a rendered invoice and returns a URL to fetch it.
type InvoiceStore interface {
	Put(ctx context.Context, order *models.OrderWithItems, body []byte) (string, error)
}

// Mock imports demo data on sync and serves placeholder invoices unless an
// InvoiceStore is configured.
type Mock struct {
	seeder   Seeder
	invoices InvoiceStore
	creds    CredentialSource
}

// NewMock creates a Mock. invoices may be nil.
func NewMock(seeder Seeder, invoices InvoiceStore) *Mock {
	return &Mock{seeder: seeder, invoices: invoices}
}

// WithCredentials makes sync load the stored credentials first. Unreadable
// credentials fail the sync permanently.
func (m *Mock) WithCredentials(src CredentialSource) *Mock {
	m.creds = src
	return m
}

// SyncOrders runs the seeder. Storage failures are reported as transient.
func (m *Mock) SyncOrders(ctx context.Context) (SyncResult, error) {
	if m.creds != nil {
		creds, err := m.creds.MarketplaceCredentials(ctx)
		if err != nil {
			return SyncResult{}, &Error{Op: "sync", Err: err}
		}
		if creds == nil {
			log.Debug().Msg("no marketplace credentials saved, importing demo orders")
		} else {
			log.Debug().Str("client_id", creds.ClientID).Bool("sandbox", creds.Sandbox).
				Bool("has_secret", creds.ClientSecret != "").Msg("marketplace credentials loaded")
		}
	}

	n, err := m.seeder.Seed(ctx)
	if err != nil {
		return SyncResult{}, &Error{Op: "sync", Transient: true, Err: err}
	}
	log.Info().Int("imported", n).Msg("marketplace sync completed")
	return SyncResult{ImportedCount: n}, nil
}

// GenerateInvoice renders the order invoice and stores it, or returns the placeholder URL.
func (m *Mock) GenerateInvoice(ctx context.Context, order *models.OrderWithItems) (Invoice, error) {
	if m.invoices == nil {
		return Invoice{DocumentURL: PlaceholderInvoiceURL}, nil
	}

	url, err := m.invoices.Put(ctx, order, RenderInvoice(order))
	if err != nil {
		return Invoice{}, &Error{Op: "invoice", Transient: true, Err: err}
	}
	return Invoice{DocumentURL: url}, nil
}
