package domain

import (
	"strconv"
	"strings"

	"punchcard/internal/errors"
)

// Quantity is a row limit for table display: either a positive count or
// unlimited.
type Quantity struct {
	all bool
	n   int
}

// AllQuantity returns the unlimited quantity.
func AllQuantity() Quantity {
	return Quantity{all: true}
}

// QuantityOf returns a fixed quantity.
func QuantityOf(n int) Quantity {
	return Quantity{n: n}
}

// ParseQuantity parses a positive integer or "all".
func ParseQuantity(input string) (Quantity, error) {
	num, err := strconv.Atoi(input)
	switch {
	case err == nil && num == 0:
		return Quantity{}, errors.NewZeroQuantityError()
	case err == nil && num > 0:
		return QuantityOf(num), nil
	case err != nil && strings.EqualFold(input, "all"):
		return AllQuantity(), nil
	default:
		return Quantity{}, errors.NewUnknownQuantityError(input)
	}
}

// IsAll returns true if the quantity is unlimited.
func (q Quantity) IsAll() bool {
	return q.all
}

// Limit clamps total to the quantity.
func (q Quantity) Limit(total int) int {
	if q.all || q.n >= total {
		return total
	}
	return q.n
}

// String returns the display form of the quantity.
func (q Quantity) String() string {
	if q.all {
		return "all"
	}
	return strconv.Itoa(q.n)
}
