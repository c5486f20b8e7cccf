package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSalary(t *testing.T) {
	cases := []struct {
		name  string
		label string
		min   int
		max   int
	}{
		{"annual range", "Annuel de 40000.00 Euros à 50000.00 Euros", 40, 50},
		{"plain range", "40000 à 50000 Euros par an", 40, 50},
		{"monthly single", "2500 € Mensuel", 30, 30},
		{"monthly over thirteen months", "3000 € Mensuel sur 13 mois", 39, 39},
		{"monthly decimal with comma", "Mensuel de 1801,80 Euros sur 12,00 mois", 22, 22},
		{"grouped digits", "Mensuel de 2 500,00 Euros", 30, 30},
		{"non-breaking space grouping", "Mensuel de 2 500,00 Euros", 30, 30},
		{"annual month clause is not multiplied", "Annuel de 35000,00 Euros sur 12,00 mois", 35, 35},
		{"rounded down", "Annuel de 35499.00 Euros", 35, 35},
		{"rounded up", "Annuel de 35500.00 Euros", 36, 36},
		{"thirteenth month bonus is not an amount", "Mensuel de 2500 Euros + 13e mois", 30, 30},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			minK, maxK := ParseSalary(tc.label)
			require.NotNil(t, minK)
			require.NotNil(t, maxK)
			assert.Equal(t, tc.min, *minK)
			assert.Equal(t, tc.max, *maxK)
		})
	}
}

func TestParseSalary_NoBounds(t *testing.T) {
	cases := []struct {
		name  string
		label string
	}{
		{"empty", ""},
		{"free text", "Selon profil et expérience"},
		{"hourly", "Horaire de 11,88 Euros"},
		{"no currency", "De 30000 à 35000"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			minK, maxK := ParseSalary(tc.label)
			assert.Nil(t, minK)
			assert.Nil(t, maxK)
		})
	}
}
