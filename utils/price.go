package utils

import (
	"fmt"
	"math"
)

// Round2 rounds an amount to currency precision (2 decimal places).
// Internal arithmetic stays unrounded; call this only when building a
// response.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatPrice renders an amount the way the storefront displays it.
func FormatPrice(amount float64) string {
	return fmt.Sprintf("$%.2f", Round2(amount))
}
