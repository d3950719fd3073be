package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name     string
		current  float64
		previous float64
		expected domain.PeriodComparison
	}{
		{
			name:     "Crescimento simples",
			current:  150,
			previous: 100,
			expected: domain.PeriodComparison{Change: 50, IsIncrease: true},
		},
		{
			name:     "Queda - magnitude positiva com direção de queda",
			current:  75,
			previous: 100,
			expected: domain.PeriodComparison{Change: 25, IsIncrease: false},
		},
		{
			name:     "Sem variação",
			current:  100,
			previous: 100,
			expected: domain.PeriodComparison{Change: 0, IsIncrease: true},
		},
		{
			name:     "Período anterior zerado - convenção {0, true}",
			current:  500,
			previous: 0,
			expected: domain.PeriodComparison{Change: 0, IsIncrease: true},
		},
		{
			name:     "Ambos zerados - convenção {0, true}",
			current:  0,
			previous: 0,
			expected: domain.PeriodComparison{Change: 0, IsIncrease: true},
		},
		{
			name:     "Queda total para zero",
			current:  0,
			previous: 80,
			expected: domain.PeriodComparison{Change: 100, IsIncrease: false},
		},
		{
			name:     "Arredondamento em duas casas decimais",
			current:  1,
			previous: 3,
			expected: domain.PeriodComparison{Change: 66.67, IsIncrease: false},
		},
		{
			name:     "Crescimento acima de 100%",
			current:  350,
			previous: 100,
			expected: domain.PeriodComparison{Change: 250, IsIncrease: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PercentageChange(tt.current, tt.previous)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestMonthLabelsFor(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected domain.MonthLabels
	}{
		{
			name:     "Meio do ano",
			date:     time.Date(2024, 10, 15, 0, 0, 0, 0, time.UTC),
			expected: domain.MonthLabels{Current: "Oct 2024", Previous: "Sep 2024"},
		},
		{
			name:     "Janeiro - mês anterior no ano passado",
			date:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
			expected: domain.MonthLabels{Current: "Jan 2025", Previous: "Dec 2024"},
		},
		{
			name:     "31 de março - normalização evita pular fevereiro",
			date:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: domain.MonthLabels{Current: "Mar 2024", Previous: "Feb 2024"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MonthLabelsFor(tt.date)
			assert.Equal(t, tt.expected, result)
		})
	}
}
