package enums

import "fmt"

// ValuationMethod identifies the approach used to reach a value conclusion.
type ValuationMethod string

const (
	ValuationMethodMarket      ValuationMethod = "market"
	ValuationMethodCost        ValuationMethod = "cost"
	ValuationMethodIncome      ValuationMethod = "income"
	ValuationMethodComparative ValuationMethod = "comparative"
)

var validValuationMethods = []ValuationMethod{
	ValuationMethodMarket,
	ValuationMethodCost,
	ValuationMethodIncome,
	ValuationMethodComparative,
}

// String implements fmt.Stringer.
func (m ValuationMethod) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ValuationMethod.
func (m ValuationMethod) IsValid() bool {
	for _, candidate := range validValuationMethods {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseValuationMethod converts raw input into a ValuationMethod.
func ParseValuationMethod(value string) (ValuationMethod, error) {
	for _, candidate := range validValuationMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid valuation method %q", value)
}
