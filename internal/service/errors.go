package service

import "errors"

// Business errors surfaced by the services. Handlers map these to HTTP status
// codes with errors.Is; anything not in this list is a persistence failure.
var (
	ErrDuplicateBarcode  = errors.New("barcode already exists")
	ErrBarcodeNotFound   = errors.New("barcode not found")
	ErrBarcodeInUse      = errors.New("barcode is bound to a product")
	ErrDuplicateProduct  = errors.New("product already exists")
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoSearchCriteria  = errors.New("no search criteria provided")
)
