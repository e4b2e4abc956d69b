// Package marketplace is the boundary to the external marketplace: order import
// and invoice generation. Mock stands in for the real integration.
package marketplace

import (
	"context"
	"errors"
	"fmt"

	"github.com/GTDGit/seller_hub/internal/models"
)

// PlaceholderInvoiceURL is returned when no invoice store is configured.
const PlaceholderInvoiceURL = "/invoice_placeholder.pdf"

// SyncResult reports the outcome of an order import.
type SyncResult struct {
	ImportedCount int
}

// Invoice is a generated invoice document.
type Invoice struct {
	DocumentURL string
}

// Credentials authenticate against the marketplace API.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Sandbox      bool
}

// CredentialSource loads the stored marketplace credentials. It returns nil
// when none have been saved.
type CredentialSource interface {
	MarketplaceCredentials(ctx context.Context) (*Credentials, error)
}

// Marketplace imports orders and generates invoices.
type Marketplace interface {
	SyncOrders(ctx context.Context) (SyncResult, error)
	GenerateInvoice(ctx context.Context, order *models.OrderWithItems) (Invoice, error)
}

// Error is a marketplace failure. Transient failures may succeed on retry.
type Error struct {
	Op        string
	Transient bool
	Err       error
}

func (e *Error) Error() string {
	kind := "permanent"
	if e.Transient {
		kind = "transient"
	}
	return fmt.Sprintf("marketplace %s (%s): %v", e.Op, kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsTransient reports whether err is a transient marketplace failure.
func IsTransient(err error) bool {
	var mErr *Error
	return errors.As(err, &mErr) && mErr.Transient
}

// IsMarketplaceError reports whether err came from the marketplace boundary.
func IsMarketplaceError(err error) bool {
	var mErr *Error
	return errors.As(err, &mErr)
}
