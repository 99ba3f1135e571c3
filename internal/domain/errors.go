package domain

import "errors"

// Business-rule errors returned by the posting engine. They are expected,
// recoverable conditions for the caller; the HTTP layer maps them to status
// codes. Infrastructure failures are wrapped driver errors and surface as
// opaque 500s.
var (
	ErrValidation           = errors.New("required field missing or invalid")
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("not authorized")
	ErrInsufficientFunds    = errors.New("enough balance is not available")
	ErrInsufficientStock    = errors.New("enough stock is not available")
	ErrExceedsOriginal      = errors.New("cannot return more than the original quantity")
	ErrAmountExceedsBalance = errors.New("amount can't be greater than the outstanding amount")
	ErrDuplicateProduct     = errors.New("product already exists")
	ErrDuplicateAsset       = errors.New("asset already exists")
)
