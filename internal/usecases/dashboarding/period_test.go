package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

func TestReportingWindow(t *testing.T) {
	tests := []struct {
		name              string
		now               time.Time
		expectedStart     string
		expectedEnd       string
		expectedLastMonth domain.MonthWindow
		expectedPrevMonth domain.MonthWindow
	}{
		{
			name:          "Meio do ano - janela de 12 meses encerrada no mês anterior",
			now:           time.Date(2024, 10, 15, 14, 30, 0, 0, time.UTC),
			expectedStart: "2023-10-01",
			expectedEnd:   "2024-09-30",
			expectedLastMonth: domain.MonthWindow{
				Label:        "Sep 2024",
				StartDate:    "2024-09-01",
				EndDate:      "2024-09-30",
				StartCompact: "20240901",
				EndCompact:   "20240930",
			},
			expectedPrevMonth: domain.MonthWindow{
				Label:        "Aug 2024",
				StartDate:    "2024-08-01",
				EndDate:      "2024-08-31",
				StartCompact: "20240801",
				EndCompact:   "20240831",
			},
		},
		{
			name:          "Janeiro - virada de ano resolvida pelo calendário",
			now:           time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			expectedStart: "2024-01-01",
			expectedEnd:   "2024-12-31",
			expectedLastMonth: domain.MonthWindow{
				Label:        "Dec 2024",
				StartDate:    "2024-12-01",
				EndDate:      "2024-12-31",
				StartCompact: "20241201",
				EndCompact:   "20241231",
			},
			expectedPrevMonth: domain.MonthWindow{
				Label:        "Nov 2024",
				StartDate:    "2024-11-01",
				EndDate:      "2024-11-30",
				StartCompact: "20241101",
				EndCompact:   "20241130",
			},
		},
		{
			name:          "Março de ano bissexto - fevereiro com 29 dias",
			now:           time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			expectedStart: "2023-03-01",
			expectedEnd:   "2024-02-29",
			expectedLastMonth: domain.MonthWindow{
				Label:        "Feb 2024",
				StartDate:    "2024-02-01",
				EndDate:      "2024-02-29",
				StartCompact: "20240201",
				EndCompact:   "20240229",
			},
			expectedPrevMonth: domain.MonthWindow{
				Label:        "Jan 2024",
				StartDate:    "2024-01-01",
				EndDate:      "2024-01-31",
				StartCompact: "20240101",
				EndCompact:   "20240131",
			},
		},
		{
			name:          "Último dia do mês - mesma janela do primeiro dia",
			now:           time.Date(2024, 10, 31, 23, 59, 59, 0, time.UTC),
			expectedStart: "2023-10-01",
			expectedEnd:   "2024-09-30",
			expectedLastMonth: domain.MonthWindow{
				Label:        "Sep 2024",
				StartDate:    "2024-09-01",
				EndDate:      "2024-09-30",
				StartCompact: "20240901",
				EndCompact:   "20240930",
			},
			expectedPrevMonth: domain.MonthWindow{
				Label:        "Aug 2024",
				StartDate:    "2024-08-01",
				EndDate:      "2024-08-31",
				StartCompact: "20240801",
				EndCompact:   "20240831",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods := ReportingWindow(tt.now)

			assert.Equal(t, tt.expectedStart, periods.Window.StartDate)
			assert.Equal(t, tt.expectedEnd, periods.Window.EndDate)
			assert.Equal(t, tt.expectedLastMonth, periods.LastMonth)
			assert.Equal(t, tt.expectedPrevMonth, periods.PreviousMonth)
		})
	}
}

func TestKeywordMonths(t *testing.T) {
	tests := []struct {
		name           string
		now            time.Time
		expectedMonthA domain.MonthWindow
		expectedMonthB domain.MonthWindow
	}{
		{
			name: "Meio do ano - os dois meses completos anteriores",
			now:  time.Date(2024, 10, 15, 10, 0, 0, 0, time.UTC),
			expectedMonthA: domain.MonthWindow{
				Label:        "Aug 2024",
				StartDate:    "2024-08-01",
				EndDate:      "2024-08-31",
				StartCompact: "20240801",
				EndCompact:   "20240831",
			},
			expectedMonthB: domain.MonthWindow{
				Label:        "Sep 2024",
				StartDate:    "2024-09-01",
				EndDate:      "2024-09-30",
				StartCompact: "20240901",
				EndCompact:   "20240930",
			},
		},
		{
			name: "Janeiro - monthA cai em novembro do ano anterior",
			now:  time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
			expectedMonthA: domain.MonthWindow{
				Label:        "Nov 2024",
				StartDate:    "2024-11-01",
				EndDate:      "2024-11-30",
				StartCompact: "20241101",
				EndCompact:   "20241130",
			},
			expectedMonthB: domain.MonthWindow{
				Label:        "Dec 2024",
				StartDate:    "2024-12-01",
				EndDate:      "2024-12-31",
				StartCompact: "20241201",
				EndCompact:   "20241231",
			},
		},
		{
			name: "Fevereiro - monthA em dezembro, monthB em janeiro",
			now:  time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC),
			expectedMonthA: domain.MonthWindow{
				Label:        "Dec 2024",
				StartDate:    "2024-12-01",
				EndDate:      "2024-12-31",
				StartCompact: "20241201",
				EndCompact:   "20241231",
			},
			expectedMonthB: domain.MonthWindow{
				Label:        "Jan 2025",
				StartDate:    "2025-01-01",
				EndDate:      "2025-01-31",
				StartCompact: "20250101",
				EndCompact:   "20250131",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			monthA, monthB := KeywordMonths(tt.now)

			assert.Equal(t, tt.expectedMonthA, monthA)
			assert.Equal(t, tt.expectedMonthB, monthB)
		})
	}
}

func TestKeywordMonths_Deterministic(t *testing.T) {
	// Qualquer hora do mesmo dia produz exatamente a mesma janela
	morning := time.Date(2024, 10, 15, 0, 0, 1, 0, time.UTC)
	night := time.Date(2024, 10, 15, 23, 59, 59, 0, time.UTC)

	morningA, morningB := KeywordMonths(morning)
	nightA, nightB := KeywordMonths(night)

	assert.Equal(t, morningA, nightA)
	assert.Equal(t, morningB, nightB)
}
