package dashboarding

import (
	"time"

	"github.com/vfg2006/seo-manager-api/internal/domain"
	"github.com/vfg2006/seo-manager-api/pkg/utils"
)

// PercentageChange calcula a variação percentual de previous para current.
// Change carrega a magnitude (sempre >= 0) e IsIncrease a direção. Quando
// previous é zero não existe variação percentual definida; a convenção da API
// é devolver {Change: 0, IsIncrease: true}.
func PercentageChange(current, previous float64) domain.PeriodComparison {
	if previous == 0 {
		return domain.PeriodComparison{Change: 0, IsIncrease: true}
	}

	change := (current - previous) / previous * 100

	isIncrease := change >= 0
	if change < 0 {
		change = -change
	}

	return domain.PeriodComparison{
		Change:     utils.RoundWithTwoDecimalPlace(change),
		IsIncrease: isIncrease,
	}
}

// MonthLabelsFor devolve os rótulos curtos ("Jan 2006") do mês da data informada
// e do mês anterior. A data é normalizada para o primeiro dia do mês antes da
// subtração, evitando a normalização do AddDate em fins de mês.
func MonthLabelsFor(date time.Time) domain.MonthLabels {
	first := firstOfMonth(date)

	return domain.MonthLabels{
		Current:  first.Format(monthLabelLayout),
		Previous: first.AddDate(0, -1, 0).Format(monthLabelLayout),
	}
}
