package dashboarding

import (
	"time"

	"github.com/vfg2006/seo-manager-api/internal/domain"
)

const (
	monthLabelLayout  = "Jan 2006"
	compactDateLayout = "20060102"
)

// ReportingPeriods é a janela móvel de 12 meses usada pelos dashboards de série
// diária, com os dois submeses de comparação período-a-período
type ReportingPeriods struct {
	Window        domain.DateWindow
	LastMonth     domain.MonthWindow
	PreviousMonth domain.MonthWindow
}

// ReportingWindow deriva a janela de 12 meses encerrada no último dia do mês
// anterior ao mês corrente. Função pura de "now": sem efeitos colaterais e
// determinística para uma mesma data.
func ReportingWindow(now time.Time) ReportingPeriods {
	firstOfCurrent := firstOfMonth(now)

	start := firstOfCurrent.AddDate(0, -12, 0)
	end := firstOfCurrent.AddDate(0, 0, -1)

	return ReportingPeriods{
		Window: domain.DateWindow{
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
		},
		LastMonth:     monthWindow(firstOfCurrent.AddDate(0, -1, 0)),
		PreviousMonth: monthWindow(firstOfCurrent.AddDate(0, -2, 0)),
	}
}

// KeywordMonths deriva os dois meses-calendário completos imediatamente
// anteriores ao mês corrente. monthA é o mais antigo, monthB o mais recente.
// A aritmética parte sempre do primeiro dia do mês corrente, então a virada de
// ano (ex: janeiro - 2 meses = novembro do ano anterior) é resolvida pelo
// próprio calendário.
func KeywordMonths(now time.Time) (monthA, monthB domain.MonthWindow) {
	firstOfCurrent := firstOfMonth(now)

	monthA = monthWindow(firstOfCurrent.AddDate(0, -2, 0))
	monthB = monthWindow(firstOfCurrent.AddDate(0, -1, 0))

	return monthA, monthB
}

// monthWindow monta o mês-calendário completo que começa em firstDay
func monthWindow(firstDay time.Time) domain.MonthWindow {
	lastDay := firstDay.AddDate(0, 1, -1)

	return domain.MonthWindow{
		Label:        firstDay.Format(monthLabelLayout),
		StartDate:    firstDay.Format(time.DateOnly),
		EndDate:      lastDay.Format(time.DateOnly),
		StartCompact: firstDay.Format(compactDateLayout),
		EndCompact:   lastDay.Format(compactDateLayout),
	}
}

func firstOfMonth(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
}
