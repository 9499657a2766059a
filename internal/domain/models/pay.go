package models

import "math"

// ParsePay extracts the leading run of digits from a free-text pay string.
// Commas inside the run are read as thousands separators, anything else ends it,
// so "$22.50/hr" is 22 and "$15-20/hr" is 15. Text without digits yields (0, false).
// Runs too long for an int saturate at math.MaxInt.
func ParsePay(text string) (value int, ok bool) {
	i := 0
	for i < len(text) && !isDigit(text[i]) {
		i++
	}

	for ; i < len(text); i++ {
		c := text[i]
		if isDigit(c) {
			d := int(c - '0')
			if value > (math.MaxInt-d)/10 {
				value = math.MaxInt
			} else {
				value = value*10 + d
			}
			ok = true
			continue
		}
		if c == ',' && i+1 < len(text) && isDigit(text[i+1]) {
			continue
		}
		break
	}
	return value, ok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
