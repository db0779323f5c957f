package pricing

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noah-isme/cart-pricing-api/internal/common"
)

// Handler wires the pricing engine to HTTP.
type Handler struct {
	Engine   Engine
	Validate *validator.Validate
	// Calculations counts calculation outcomes by payment method. Optional.
	Calculations *prometheus.CounterVec
	// FinalValues tracks the distribution of charged totals. Optional.
	FinalValues *prometheus.HistogramVec
}

// itemPayload is one cart line on the wire.
type itemPayload struct {
	ProductID int `json:"product_id" validate:"required,min=1"`
	Quantity  int `json:"quantity" validate:"required,min=1"`
}

// calculatePayload is the wire shape of POST /api/cart/calculate. The
// structural installment bound is [1,12] for every method; the engine narrows
// it to [2,12] for the installment method.
type calculatePayload struct {
	Items         []itemPayload `json:"items" validate:"required,min=1,dive"`
	PaymentMethod string        `json:"payment_method" validate:"required,oneof=PIX CREDIT_CARD_FULL_PAYMENT CREDIT_CARD_INSTALLMENTS"`
	// Installments is a pointer so an explicit 0 fails the structural bound
	// instead of being confused with an absent field.
	Installments *int `json:"installments" validate:"omitempty,min=1,max=12"`
}

// resultPayload is the wire shape of a calculation result, rounded to two
// decimals for presentation.
type resultPayload struct {
	Subtotal         float64       `json:"subtotal"`
	Discount         float64       `json:"discount"`
	Interest         float64       `json:"interest"`
	FinalValue       float64       `json:"final_value"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	Installments     int           `json:"installments"`
	InstallmentValue *float64      `json:"installment_value,omitempty"`
}

// NewValidator builds the validator used for request shape checks, reporting
// fields by their json names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Calculate handles POST /api/cart/calculate. Shape violations yield a 422,
// engine rejections a 400, anything unexpected a 500.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var payload calculatePayload
	if err := common.DecodeJSON(r.Body, &payload); err != nil {
		common.ValidationError(w, "Validation error", map[string][]string{
			"body": {"request body must be a valid JSON object"},
		})
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(payload); err != nil {
			common.ValidationError(w, "Validation error", validationDetails(err))
			return
		}
	}

	installments := 1
	if payload.Installments != nil {
		installments = *payload.Installments
	}
	req := CartRequest{
		Items:         make([]CartItem, 0, len(payload.Items)),
		PaymentMethod: PaymentMethod(payload.PaymentMethod),
		Installments:  installments,
	}
	for _, item := range payload.Items {
		req.Items = append(req.Items, CartItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	result, err := h.Engine.Calculate(req)
	if err != nil {
		if IsValidationError(err) {
			h.count(payload.PaymentMethod, "rejected")
			common.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		h.count(payload.PaymentMethod, "error")
		common.Error(w, http.StatusInternalServerError, "an error occurred while calculating the cart")
		return
	}

	h.count(payload.PaymentMethod, "ok")
	if h.FinalValues != nil {
		h.FinalValues.WithLabelValues(payload.PaymentMethod).Observe(result.FinalValue)
	}
	out := resultPayload{
		Subtotal:      common.Round2(result.Subtotal),
		Discount:      common.Round2(result.Discount),
		Interest:      common.Round2(result.Interest),
		FinalValue:    common.Round2(result.FinalValue),
		PaymentMethod: result.PaymentMethod,
		Installments:  result.Installments,
	}
	if result.InstallmentValue != nil {
		v := common.Round2(*result.InstallmentValue)
		out.InstallmentValue = &v
	}
	common.Success(w, http.StatusOK, out)
}

func (h *Handler) count(method, outcome string) {
	if h.Calculations == nil {
		return
	}
	h.Calculations.WithLabelValues(method, outcome).Inc()
}

func validationDetails(err error) map[string][]string {
	details := map[string][]string{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		details["request"] = []string{"invalid request"}
		return details
	}
	for _, fe := range fieldErrs {
		field := fieldPath(fe.Namespace())
		details[field] = append(details[field], fieldMessage(fe))
	}
	return details
}

// fieldPath strips the payload struct name from a validator namespace, leaving
// the json path of the offending field, e.g. "items[0].quantity".
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "must contain at least " + fe.Param() + " item"
		}
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "is invalid"
	}
}
