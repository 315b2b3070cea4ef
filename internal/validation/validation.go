// Package validation holds the per-entity rule pipelines applied before
// anything reaches the store. A rule may normalise its input (trim strings,
// fill defaults) and returns the value the next rule sees.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/Skotchmaster/marketplace/internal/domain"
)

type Rule[T any] func(T) (T, error)

// Apply runs rules in order and stops at the first failure.
func Apply[T any](v T, rules ...Rule[T]) (T, error) {
	var err error
	for _, r := range rules {
		if v, err = r(v); err != nil {
			return v, err
		}
	}
	return v, nil
}

const (
	MoneyDigits    = 10
	MoneyFraction  = 2
	maxMoneyDigits = MoneyDigits - MoneyFraction
)

var maxMoney = decimal.New(1, maxMoneyDigits)

// FitsMoney reports whether d fits a decimal(10,2) column without rounding.
func FitsMoney(d decimal.Decimal) bool {
	if !d.Equal(d.Round(MoneyFraction)) {
		return false
	}
	return d.Abs().LessThan(maxMoney)
}

func requireText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return value, domain.Validationf("%s must not be empty", field)
	}
	if max > 0 && utf8.RuneCountInString(value) > max {
		return value, domain.Validationf("%s must be at most %d characters", field, max)
	}
	return value, nil
}

func optionalText(field, value string, max int) (string, error) {
	value = strings.TrimSpace(value)
	if max > 0 && utf8.RuneCountInString(value) > max {
		return value, domain.Validationf("%s must be at most %d characters", field, max)
	}
	return value, nil
}
