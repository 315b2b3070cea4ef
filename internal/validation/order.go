package validation

import (
	"net/mail"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/marketplace/internal/domain"
)

type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}

type OrderInput struct {
	ProducerID  uuid.UUID
	ClientName  string
	ClientPhone string
	ClientEmail string
	TotalPrice  decimal.Decimal
	Items       []OrderLine
}

func orderProducer(o OrderInput) (OrderInput, error) {
	if o.ProducerID == uuid.Nil {
		return o, domain.Validationf("producer is required")
	}
	return o, nil
}

func orderClient(o OrderInput) (OrderInput, error) {
	var err error
	if o.ClientName, err = requireText("client_name", o.ClientName, 255); err != nil {
		return o, err
	}
	if o.ClientPhone, err = requireText("client_phone", o.ClientPhone, 20); err != nil {
		return o, err
	}
	if o.ClientEmail, err = optionalText("client_email", o.ClientEmail, 254); err != nil {
		return o, err
	}
	if o.ClientEmail != "" {
		if _, perr := mail.ParseAddress(o.ClientEmail); perr != nil {
			return o, domain.Validationf("client_email is not a valid address")
		}
	}
	return o, nil
}

func orderItems(o OrderInput) (OrderInput, error) {
	if len(o.Items) == 0 {
		return o, domain.Validationf("items required")
	}
	for i, it := range o.Items {
		if it.ProductID == uuid.Nil {
			return o, domain.Validationf("items[%d]: product is required", i)
		}
		if it.Quantity <= 0 {
			return o, domain.Validationf("items[%d]: quantity must be > 0", i)
		}
	}
	return o, nil
}

func orderTotal(o OrderInput) (OrderInput, error) {
	if o.TotalPrice.IsNegative() {
		return o, domain.Validationf("total_price must be >= 0")
	}
	if !FitsMoney(o.TotalPrice) {
		return o, domain.Validationf("total_price must have at most %d digits and %d decimal places", MoneyDigits, MoneyFraction)
	}
	return o, nil
}

var orderRules = []Rule[OrderInput]{
	orderProducer,
	orderClient,
	orderItems,
	orderTotal,
}

func Order(o OrderInput) (OrderInput, error) {
	return Apply(o, orderRules...)
}

func OrderStatus(s domain.OrderStatus) (domain.OrderStatus, error) {
	if !s.Valid() {
		return s, domain.ErrInvalidStatus
	}
	return s, nil
}
