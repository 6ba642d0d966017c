package numfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseNumber extracts a numeric value from free-form text, tolerating both
// German and English decimal separators. The second return value is false
// when the text contains no parseable number.
func ParseNumber(text string) (float64, bool) {
	var sb strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == ',' || r == '.' {
			sb.WriteRune(r)
		}
	}

	clean := sb.String()
	if clean == "" {
		return 0, false
	}

	hasComma := strings.Contains(clean, ",")
	hasDot := strings.Contains(clean, ".")

	switch {
	case hasComma && hasDot:
		// The separator appearing last is the decimal point.
		if strings.LastIndex(clean, ",") > strings.LastIndex(clean, ".") {
			clean = strings.ReplaceAll(clean, ".", "")
			clean = strings.ReplaceAll(clean, ",", ".")
		} else {
			clean = strings.ReplaceAll(clean, ",", "")
		}
	case hasComma:
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	value, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}

// FormatCurrency renders an amount as a German currency string: thousands
// grouped with a period, comma as decimal separator, euro sign appended.
func FormatCurrency(amount float64) string {
	plain := fmt.Sprintf("%.2f", amount)

	intPart, fracPart, _ := strings.Cut(plain, ".")

	sign := ""
	if strings.HasPrefix(intPart, "-") {
		sign = "-"
		intPart = intPart[1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ".") + "," + fracPart + " €"
}
