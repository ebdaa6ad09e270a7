package cart

import "errors"

var (
	ErrInvalidLine         = errors.New("invalid cart line")
	ErrItemNotFound        = errors.New("cart item not found")
	ErrItemAlreadyInCart   = errors.New("item already in cart")
	ErrBundleAlreadyInCart = errors.New("bundle already in cart")
	ErrAlreadyOwned        = errors.New("content already owned")
	ErrPriceChanged        = errors.New("price has changed")
	ErrCartEmpty           = errors.New("cart is empty")
)
