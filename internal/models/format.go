package models

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency renders an amount the way the shop prints it: grouped by
// thousands with dots and a trailing đồng sign, e.g. 525000 -> "525.000 ₫".
// Negative amounts keep the sign in front.
func FormatCurrency(amount float64) string {
	n := int64(amount)
	neg := n < 0
	if neg {
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ".")
	if neg {
		out = "-" + out
	}
	return out + " ₫"
}

// FormatWeight renders a weight in kilograms with two decimals.
func FormatWeight(weight float64) string {
	return fmt.Sprintf("%.2f kg", weight)
}
