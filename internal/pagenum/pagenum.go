// Package pagenum renders a 1-based page number in the numeral system
// requested by a PageNumberFormat (spec §6 supplemented feature: roman
// and alphabetic page numbering alongside the default numeric form).
package pagenum

import (
	"strconv"
	"strings"

	"github.com/chinmay-sawant/legalcompose/internal/model"
)

var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Roman renders n (n >= 1) as a lowercase roman numeral.
func Roman(n int) string {
	if n < 1 {
		return ""
	}
	var sb strings.Builder
	for _, entry := range romanTable {
		for n >= entry.value {
			sb.WriteString(entry.symbol)
			n -= entry.value
		}
	}
	return strings.ToLower(sb.String())
}

// Alpha renders n (n >= 1) as a base-26 alphabetic numeral: a, b, ...,
// z, aa, ab, ... matching spreadsheet-column numbering.
func Alpha(n int) string {
	if n < 1 {
		return ""
	}
	var sb strings.Builder
	for n > 0 {
		n--
		sb.WriteByte(byte('a' + n%26))
		n /= 26
	}
	s := sb.String()
	// digits were generated least-significant first
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Format renders displayNumber (already offset by StartingNumber) in
// format's numeral system with its prefix/suffix applied.
func Format(format model.PageNumberFormat, displayNumber int) string {
	var numeral string
	switch format.Format {
	case model.PageNumberRoman:
		numeral = Roman(displayNumber)
	case model.PageNumberAlpha:
		numeral = Alpha(displayNumber)
	default:
		numeral = strconv.Itoa(displayNumber)
	}
	return format.Prefix + numeral + format.Suffix
}

// DisplayNumber maps a 1-based physical page number to the number that
// should be rendered, honoring StartingNumber (spec §6).
func DisplayNumber(format model.PageNumberFormat, physicalPage int) int {
	start := format.StartingNumber
	if start == 0 {
		start = 1
	}
	return start + physicalPage - 1
}
