package service

import (
	"context"
	"fmt"

	"github.com/GTDGit/seller_hub/internal/models"
)

// IntelligenceService derives seller suggestions from current inventory and returns.
type IntelligenceService struct {
	products ProductStore
	orders   OrderStore
}

// NewIntelligenceService constructs an IntelligenceService.
func NewIntelligenceService(products ProductStore, orders OrderStore) *IntelligenceService {
	return &IntelligenceService{products: products, orders: orders}
}

// GetSuggestions returns stock warnings, RTO warnings and pricing hints, in that order.
func (s *IntelligenceService) GetSuggestions(ctx context.Context) ([]models.Suggestion, error) {
	suggestions := []models.Suggestion{}

	lowStock, err := s.products.ListLowStock(ctx)
	if err != nil {
		return nil, err
	}
	for i := range lowStock {
		p := &lowStock[i]
		msg := fmt.Sprintf("Low stock warning for %q: %d left", p.Name, p.Stock)
		if p.Stock <= 0 {
			msg = fmt.Sprintf("%q is out of stock", p.Name)
		}
		suggestions = append(suggestions, models.Suggestion{
			Type:      models.SuggestionStock,
			Message:   msg,
			Priority:  models.PriorityHigh,
			ProductID: &p.ID,
		})
	}

	rto, err := s.orders.ListWithRTOReturns(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rto {
		o := &rto[i]
		buyer := "buyer"
		if o.BuyerName != nil {
			buyer = *o.BuyerName
		}
		suggestions = append(suggestions, models.Suggestion{
			Type:     models.SuggestionRTO,
			Message:  fmt.Sprintf("Order %s was returned to origin; verify the address of %s before shipping again", o.OrderID, buyer),
			Priority: models.PriorityMedium,
			OrderID:  &o.ID,
		})
	}

	inactive, err := s.products.ListInactiveInStock(ctx)
	if err != nil {
		return nil, err
	}
	for i := range inactive {
		p := &inactive[i]
		suggestions = append(suggestions, models.Suggestion{
			Type:      models.SuggestionPricing,
			Message:   fmt.Sprintf("%q is inactive with %d units in stock; consider relisting it at %s or lower", p.Name, p.Stock, p.Price),
			Priority:  models.PriorityLow,
			ProductID: &p.ID,
		})
	}

	return suggestions, nil
}
