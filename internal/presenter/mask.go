package presenter

import "strings"

// DefaultMaskChar replaces hidden digits.
const DefaultMaskChar = '*'

const visibleTail = 4

// Mask keeps the last four characters of number. Numbers of four or fewer
// characters are returned unchanged.
func Mask(number string, maskChar rune) string {
	runes := []rune(number)
	if len(runes) <= visibleTail {
		return number
	}
	hidden := len(runes) - visibleTail
	return strings.Repeat(string(maskChar), hidden) + string(runes[hidden:])
}
