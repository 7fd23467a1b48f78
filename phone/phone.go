// Package phone formats US phone numbers the way the waitlist form displays them.
package phone

import (
	"regexp"
)

// MaxDigits is the number of digits kept from the input. Excess digits are dropped.
const MaxDigits = 10

var (
	nonDigit = regexp.MustCompile(`\D`)
	shape    = regexp.MustCompile(`^(\d{0,3})(\d{0,3})(\d{0,4})$`)
)

// Digits returns the ASCII digits of value, truncated to MaxDigits.
func Digits(value string) string {
	digits := nonDigit.ReplaceAllString(value, "")
	if len(digits) > MaxDigits {
		digits = digits[:MaxDigits]
	}
	return digits
}

// Format renders value progressively as (DDD) DDD-DDDD.
//
//	1-3 digits  -> DDD
//	4-6 digits  -> (DDD) DDD
//	7-10 digits -> (DDD) DDD-DDDD
//
// Format never fails; if the digits cannot be matched into the mask the
// input is returned unchanged.
func Format(value string) string {
	m := shape.FindStringSubmatch(Digits(value))
	if m == nil {
		return value
	}
	if m[2] == "" {
		return m[1]
	}
	if m[3] == "" {
		return "(" + m[1] + ") " + m[2]
	}
	return "(" + m[1] + ") " + m[2] + "-" + m[3]
}
