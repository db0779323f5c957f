package pricing

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart is returned when the request contains no items.
	ErrEmptyCart = errors.New("cart items cannot be empty")
	// ErrInvalidInstallments is returned when the installment count falls
	// outside the allowed range for the installment method.
	ErrInvalidInstallments = fmt.Errorf("installments must be between %d and %d", MinInstallments, MaxInstallments)
)

// ProductNotFoundError reports a cart item referencing an unknown product.
type ProductNotFoundError struct {
	ProductID int
}

func (e *ProductNotFoundError) Error() string {
	return fmt.Sprintf("product with id %d not found", e.ProductID)
}

// InvalidPaymentMethodError reports a payment method outside the supported set.
type InvalidPaymentMethodError struct {
	Method PaymentMethod
}

func (e *InvalidPaymentMethodError) Error() string {
	return fmt.Sprintf("invalid payment method: %s", e.Method)
}

// IsValidationError reports whether err is one of the engine's deterministic
// request rejections, as opposed to an unexpected internal failure. Callers
// map these to a client-facing 400.
func IsValidationError(err error) bool {
	var notFound *ProductNotFoundError
	var badMethod *InvalidPaymentMethodError
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrInvalidInstallments) ||
		errors.As(err, &notFound) ||
		errors.As(err, &badMethod)
}
