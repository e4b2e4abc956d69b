package utils

// API error codes carried in ErrorInfo.Code.
const (
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidRequest   = "INVALID_REQUEST"
	CodeValidation       = "VALIDATION_ERROR"
	CodeSKUExists        = "SKU_EXISTS"
	CodeOrderExists      = "ORDER_EXISTS"
	CodeNotFound         = "NOT_FOUND"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeInvalidToken     = "INVALID_TOKEN"
	CodeRateLimited      = "RATE_LIMITED"
	CodeMarketplaceError = "MARKETPLACE_ERROR"
	CodeMarketplaceBusy  = "MARKETPLACE_UNAVAILABLE"
	CodeInternal         = "INTERNAL_ERROR"
)
