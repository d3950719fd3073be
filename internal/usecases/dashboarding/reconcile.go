package dashboarding

import (
	"sort"

	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

const (
	// topRankLimit delimita o "top-100": posições acima disso contam como não ranqueadas
	topRankLimit = 100

	// controlledLoserMaxDrop é a queda máxima de posições tolerada na lista de
	// Controlled Losers
	controlledLoserMaxDrop = 3
)

// BuildKeywordComparisons junta os registros do mês B (mais recente) com os do mês
// A (mais antigo) pela identidade opaca do keyword. O mês B dirige o resultado:
// keywords sem registro no mês B não aparecem; keywords sem registro no mês A saem
// com os campos A nulos. A ordem de entrada do mês B é preservada.
func BuildKeywordComparisons(
	monthA, monthB []mangoolsdomain.KeywordStats,
	names map[string]string,
) []*domain.KeywordComparison {
	statsA := make(map[string]mangoolsdomain.KeywordStats, len(monthA))
	for _, kw := range monthA {
		statsA[kw.ID] = kw
	}

	comparisons := make([]*domain.KeywordComparison, 0, len(monthB))
	for _, kwB := range monthB {
		comparison := &domain.KeywordComparison{
			KeywordID:        kwB.ID,
			Keyword:          names[kwB.ID],
			RankB:            kwB.Rank.Last.IntPtr(),
			RankAvgB:         kwB.Rank.Avg.FloatPtr(),
			RankChangeB:      kwB.RankChange.IntPtr(),
			SearchVolumeB:    kwB.SearchVolume.IntPtr(),
			EstimatedVisitsB: kwB.EstimatedVisits.IntPtr(),
		}

		if kwA, ok := statsA[kwB.ID]; ok {
			comparison.RankA = kwA.Rank.Last.IntPtr()
			comparison.RankAvgA = kwA.Rank.Avg.FloatPtr()
			comparison.RankChangeA = kwA.RankChange.IntPtr()
			comparison.SearchVolumeA = kwA.SearchVolume.IntPtr()
		}

		if comparison.RankA != nil && comparison.RankB != nil {
			change := *comparison.RankB - *comparison.RankA
			comparison.MonthlyRankChange = &change
		}

		comparison.MonthlyRankChangeLabel = domain.FormatRankChange(comparison.MonthlyRankChange)

		comparisons = append(comparisons, comparison)
	}

	return comparisons
}

// ClassifyKeywords deriva as quatro listas do dashboard a partir do conjunto de
// comparações. TopKeywords é o conjunto inteiro; as outras três são disjuntas
// entre si: New Rankings tem precedência, e as comparações restantes são
// particionadas pela variação mensal.
func ClassifyKeywords(comparisons []*domain.KeywordComparison) *domain.KeywordClassification {
	classification := &domain.KeywordClassification{
		TopKeywords:      comparisons,
		TopWinners:       make([]*domain.KeywordComparison, 0),
		ControlledLosers: make([]*domain.KeywordComparison, 0),
		NewRankings:      make([]*domain.KeywordComparison, 0),
	}

	for _, comparison := range comparisons {
		if isNewRanking(comparison) {
			classification.NewRankings = append(classification.NewRankings, comparison)
			continue
		}

		if comparison.MonthlyRankChange == nil {
			continue
		}

		change := *comparison.MonthlyRankChange
		switch {
		case change < 0:
			classification.TopWinners = append(classification.TopWinners, comparison)
		case change > 0 && change <= controlledLoserMaxDrop:
			classification.ControlledLosers = append(classification.ControlledLosers, comparison)
		}
	}

	// New Rankings por volume de busca decrescente; volume nulo ordena como zero
	sort.SliceStable(classification.NewRankings, func(i, j int) bool {
		return searchVolumeOrZero(classification.NewRankings[i]) > searchVolumeOrZero(classification.NewRankings[j])
	})

	// Winners do maior ganho para o menor (variação mais negativa primeiro)
	sort.SliceStable(classification.TopWinners, func(i, j int) bool {
		return *classification.TopWinners[i].MonthlyRankChange < *classification.TopWinners[j].MonthlyRankChange
	})

	// Losers da maior queda para a menor
	sort.SliceStable(classification.ControlledLosers, func(i, j int) bool {
		return *classification.ControlledLosers[i].MonthlyRankChange > *classification.ControlledLosers[j].MonthlyRankChange
	})

	return classification
}

// isNewRanking: entrou no top-100 no mês B sem estar nele no mês A
func isNewRanking(comparison *domain.KeywordComparison) bool {
	if comparison.RankB == nil || *comparison.RankB > topRankLimit {
		return false
	}

	return comparison.RankA == nil || *comparison.RankA > topRankLimit
}

func searchVolumeOrZero(comparison *domain.KeywordComparison) int {
	if comparison.SearchVolumeB == nil {
		return 0
	}

	return *comparison.SearchVolumeB
}

// CountRankedKeywords conta quantos registros da janela estão dentro do top-100
func CountRankedKeywords(stats []mangoolsdomain.KeywordStats) int {
	ranked := 0
	for _, kw := range stats {
		if kw.Rank.Last.Valid && kw.Rank.Last.Value <= topRankLimit {
			ranked++
		}
	}

	return ranked
}
