package validation

import (
	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/marketplace/internal/domain"
)

type ProductInput struct {
	Name     string
	Category string
	Status   domain.ProductStatus
	Stock    int
	Price    decimal.Decimal
}

func productName(p ProductInput) (ProductInput, error) {
	var err error
	p.Name, err = requireText("name", p.Name, 255)
	return p, err
}

func productCategory(p ProductInput) (ProductInput, error) {
	var err error
	p.Category, err = requireText("category", p.Category, 100)
	return p, err
}

func productStatus(p ProductInput) (ProductInput, error) {
	if p.Status == "" {
		p.Status = domain.ProductActive
	}
	if !p.Status.Valid() {
		return p, domain.Validationf("status must be %q or %q", domain.ProductActive, domain.ProductInactive)
	}
	return p, nil
}

func productStock(p ProductInput) (ProductInput, error) {
	if p.Stock < 0 {
		return p, domain.Validationf("stock must be >= 0")
	}
	return p, nil
}

func productPrice(p ProductInput) (ProductInput, error) {
	if !p.Price.IsPositive() {
		return p, domain.Validationf("price must be > 0")
	}
	if !FitsMoney(p.Price) {
		return p, domain.Validationf("price must have at most %d digits and %d decimal places", MoneyDigits, MoneyFraction)
	}
	return p, nil
}

var productRules = []Rule[ProductInput]{
	productName,
	productCategory,
	productStatus,
	productStock,
	productPrice,
}

func Product(p ProductInput) (ProductInput, error) {
	return Apply(p, productRules...)
}
