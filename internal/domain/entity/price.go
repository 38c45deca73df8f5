package entity

import (
	"regexp"
	"strconv"
	"strings"
)

var priceNumber = regexp.MustCompile(`\d+(\.\d+)?`)

var priceCleaner = strings.NewReplacer(",", "", "\u00a0", "")

// ParsePrice extracts the first numeric run from free-form currency text.
func ParsePrice(text string) (*float64, bool) {
	if text == "" {
		return nil, false
	}
	m := priceNumber.FindString(priceCleaner.Replace(text))
	if m == "" {
		return nil, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return nil, false
	}
	return &v, true
}

func FormatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
