// Package pricing computes the cart figures the site is expected to display.
package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// CurrencyPrefix is how the site prefixes every price
const CurrencyPrefix = "Rs. "

// ErrInvalidPrice is returned when a price string carries no digits
var ErrInvalidPrice = errors.New("price contains no digits")

// ParseUnitPrice keeps only the digits of price and parses them.
// Separators and decimal points are dropped, not interpreted: "Rs. 1,000" is 1000
// but "Rs. 10.50" is 1050.
func ParseUnitPrice(price string) (int64, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, price)

	if digits == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, price)
	}

	value, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse price %q: %w", price, err)
	}
	return value, nil
}

// CalculateExpectedTotal returns the line total the cart should show for
// quantity units at price, formatted like the site does.
func CalculateExpectedTotal(price string, quantity int) (string, error) {
	unit, err := ParseUnitPrice(price)
	if err != nil {
		return "", err
	}
	return FormatPrice(unit * int64(quantity)), nil
}

// FormatPrice renders an amount with the site's currency prefix
func FormatPrice(amount int64) string {
	return CurrencyPrefix + strconv.FormatInt(amount, 10)
}

// NormalizeText trims the whitespace the site leaves around cell text
func NormalizeText(s string) string {
	return strings.TrimFunc(s, unicode.IsSpace)
}
