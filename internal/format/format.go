package format

import "strconv"

// Func renders a domain value as a label string.
type Func func(value float64) string

// Default formats a value with the minimum number of decimals needed to
// represent it exactly.
func Default(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
