package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyPrecedence(t *testing.T) {
	cases := []struct {
		name    string
		income  float64
		expense float64
		want    Category
	}{
		{"income more than double expense", 300, 100, CategoryIronman},
		{"income above expense", 150, 100, CategoryAthlete},
		{"income equals expense", 100, 100, CategoryInTraining},
		{"income below expense", 50, 100, CategoryCouchPotato},
		{"exactly double is not Ironman", 200, 100, CategoryAthlete},
		{"zero against zero rates In Training", 0, 0, CategoryInTraining},
		{"income only", 100, 0, CategoryIronman},
		{"expense only", 0, 100, CategoryCouchPotato},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.income, tc.expense))
		})
	}
}

func TestParseCategory(t *testing.T) {
	for _, c := range Categories {
		parsed, ok := ParseCategory(string(c))
		require.True(t, ok)
		require.Equal(t, c, parsed)
	}

	_, ok := ParseCategory("Marathoner")
	require.False(t, ok)

	_, ok = ParseCategory("ironman")
	require.False(t, ok)
}
