package domain

import (
	"fmt"
)

// KeywordComparison emparelha o registro de um keyword no mês A (mais antigo) com o
// registro correspondente do mês B (mais recente). O mês B é o conjunto dirigente:
// keywords presentes apenas no mês A não geram comparação.
type KeywordComparison struct {
	KeywordID string `json:"keyword_id"`
	Keyword   string `json:"keyword"`

	RankA            *int     `json:"rank_a"`
	RankB            *int     `json:"rank_b"`
	RankAvgA         *float64 `json:"rank_avg_a"`
	RankAvgB         *float64 `json:"rank_avg_b"`
	RankChangeA      *int     `json:"rank_change_a"`
	RankChangeB      *int     `json:"rank_change_b"`
	SearchVolumeA    *int     `json:"search_volume_a"`
	SearchVolumeB    *int     `json:"search_volume_b"`
	EstimatedVisitsB *int     `json:"estimated_visits_b"`

	// MonthlyRankChange = RankB - RankA quando ambos existem. Negativo = melhora
	// (posição menor é melhor), positivo = queda.
	MonthlyRankChange *int `json:"monthly_rank_change"`

	// MonthlyRankChangeLabel é o marcador de exibição: ▲n, ▼n, = ou N/A
	MonthlyRankChangeLabel string `json:"monthly_rank_change_label"`
}

// KeywordClassification agrupa as quatro listas derivadas do conjunto de comparações
type KeywordClassification struct {
	TopKeywords      []*KeywordComparison `json:"top_keywords"`
	TopWinners       []*KeywordComparison `json:"top_winners"`
	ControlledLosers []*KeywordComparison `json:"controlled_losers"`
	NewRankings      []*KeywordComparison `json:"new_rankings"`
}

// FormatRankChange converte a variação mensal no marcador exibido pela UI
func FormatRankChange(change *int) string {
	if change == nil {
		return "N/A"
	}

	switch {
	case *change < 0:
		return fmt.Sprintf("▲%d", -*change)
	case *change > 0:
		return fmt.Sprintf("▼%d", *change)
	}

	return "="
}
