package normalize

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// amountExpr matches one monetary amount, allowing French digit grouping
// ("2 500") and either decimal separator ("40000.00", "1801,80").
const amountExpr = `\d+(?:[ \x{00a0}]\d{3})*(?:[.,]\d+)?`

var (
	amountPattern = regexp.MustCompile(amountExpr)
	// Ranges read "X Euros à Y Euros" or just "X à Y".
	rangePattern    = regexp.MustCompile(`(?i)(` + amountExpr + `)(?:\s*(?:euros?|€))?\s*à\s*(` + amountExpr + `)`)
	monthsPattern   = regexp.MustCompile(`(?i)sur\s+(` + amountExpr + `)\s+mois`)
	currencyPattern = regexp.MustCompile(`(?i)€|euro`)
	hourlyPattern   = regexp.MustCompile(`(?i)horaire`)
)

// ParseSalary extracts annualized salary bounds, in thousands of euros
// rounded to the nearest integer, from a France Travail free-text label
// such as "Mensuel de 2500.00 Euros sur 12.00 mois". Monthly amounts are
// multiplied by 12, or by an explicit "sur N mois" count. Hourly rates
// and labels without a recognizable currency yield no bounds rather than
// an error.
func ParseSalary(label string) (minK, maxK *int) {
	if label == "" || hourlyPattern.MatchString(label) || !currencyPattern.MatchString(label) {
		return nil, nil
	}

	months := 1.0
	if strings.Contains(strings.ToLower(label), "mensuel") {
		months = 12
		if m := monthsPattern.FindStringSubmatch(label); m != nil {
			if n, err := parseAmount(m[1]); err == nil && n > 0 {
				months = n
			}
		}
	}

	// Strip the month-count clause so its number is not mistaken for an
	// amount.
	text := monthsPattern.ReplaceAllString(label, " ")

	var lo, hi float64
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		l, errLo := parseAmount(m[1])
		h, errHi := parseAmount(m[2])
		if errLo != nil || errHi != nil {
			return nil, nil
		}
		lo, hi = l, h
	} else {
		m := amountPattern.FindString(text)
		if m == "" {
			return nil, nil
		}
		v, err := parseAmount(m)
		if err != nil {
			return nil, nil
		}
		lo, hi = v, v
	}

	low := annualThousands(lo, months)
	high := annualThousands(hi, months)
	return &low, &high
}

func annualThousands(amount, months float64) int {
	return int(math.Round(amount * months / 1000))
}

func parseAmount(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return -1
		}
		return r
	}, s)
	s = strings.ReplaceAll(s, ",", ".")
	return strconv.ParseFloat(s, 64)
}
