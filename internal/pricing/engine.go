package pricing

import (
	"math"

	"github.com/noah-isme/cart-pricing-api/internal/catalog"
)

// PaymentMethod identifies one of the supported payment options.
type PaymentMethod string

// Supported payment methods.
const (
	MethodPix                    PaymentMethod = "PIX"
	MethodCreditCardFull         PaymentMethod = "CREDIT_CARD_FULL_PAYMENT"
	MethodCreditCardInstallments PaymentMethod = "CREDIT_CARD_INSTALLMENTS"
)

// Pricing rule parameters.
const (
	DiscountRate    = 0.10
	InterestRate    = 0.01
	MinInstallments = 2
	MaxInstallments = 12
)

// CartItem is one line of a cart request.
type CartItem struct {
	ProductID int
	Quantity  int
}

// CartRequest is the input to a price calculation. Installments is only
// meaningful for the installment method and defaults to 1 elsewhere.
type CartRequest struct {
	Items         []CartItem
	PaymentMethod PaymentMethod
	Installments  int
}

// Result carries the computed totals for a cart. InstallmentValue is set only
// for the installment method.
type Result struct {
	Subtotal         float64
	Discount         float64
	Interest         float64
	FinalValue       float64
	PaymentMethod    PaymentMethod
	Installments     int
	InstallmentValue *float64
}

// ProductFinder resolves product ids against the catalog.
type ProductFinder interface {
	FindByID(id int) (catalog.Product, bool)
}

// Engine prices carts against a read-only catalog snapshot. It holds no
// mutable state and may be called concurrently.
type Engine struct {
	Catalog ProductFinder
}

// Calculate validates the request, resolves every item, sums the subtotal, and
// applies the pricing rule selected by the payment method. It fails fast on
// the first violation and never returns a partial result. Arithmetic is
// carried in full float64 precision; rounding is left to serialization.
func (e Engine) Calculate(req CartRequest) (Result, error) {
	if len(req.Items) == 0 {
		return Result{}, ErrEmptyCart
	}
	if req.PaymentMethod == MethodCreditCardInstallments {
		if req.Installments < MinInstallments || req.Installments > MaxInstallments {
			return Result{}, ErrInvalidInstallments
		}
	}

	var subtotal float64
	for _, item := range req.Items {
		product, ok := e.Catalog.FindByID(item.ProductID)
		if !ok {
			return Result{}, &ProductNotFoundError{ProductID: item.ProductID}
		}
		subtotal += product.Price * float64(item.Quantity)
	}

	result := Result{
		Subtotal:      subtotal,
		PaymentMethod: req.PaymentMethod,
		Installments:  req.Installments,
	}
	switch req.PaymentMethod {
	case MethodPix, MethodCreditCardFull:
		discount, final := applyDiscount(subtotal)
		result.Discount = discount
		result.FinalValue = final
	case MethodCreditCardInstallments:
		interest, final, perInstallment := applyCompoundInterest(subtotal, req.Installments)
		result.Interest = interest
		result.FinalValue = final
		result.InstallmentValue = &perInstallment
	default:
		// Upstream shape validation makes this unreachable, but the engine
		// guards it anyway.
		return Result{}, &InvalidPaymentMethodError{Method: req.PaymentMethod}
	}
	return result, nil
}

func applyDiscount(subtotal float64) (discount, final float64) {
	discount = subtotal * DiscountRate
	return discount, subtotal - discount
}

func applyCompoundInterest(subtotal float64, installments int) (interest, final, perInstallment float64) {
	final = subtotal * math.Pow(1+InterestRate, float64(installments))
	return final - subtotal, final, final / float64(installments)
}
