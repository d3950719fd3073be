package dashboarding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

func flexInt(value int) mangoolsdomain.FlexInt {
	return mangoolsdomain.FlexInt{Value: value, Valid: true}
}

func keywordStats(id string, rank mangoolsdomain.FlexInt, searchVolume int) mangoolsdomain.KeywordStats {
	return mangoolsdomain.KeywordStats{
		ID:           id,
		Rank:         mangoolsdomain.KeywordRank{Last: rank},
		SearchVolume: flexInt(searchVolume),
	}
}

func TestBuildKeywordComparisons(t *testing.T) {
	names := map[string]string{
		"kw1": "óculos de grau",
		"kw2": "lentes de contato",
		"kw3": "armação masculina",
	}

	monthA := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(10), 900),
		keywordStats("kw2", flexInt(50), 400),
	}

	monthB := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(4), 1000),
		keywordStats("kw2", flexInt(53), 450),
		keywordStats("kw3", flexInt(80), 200),
	}

	comparisons := BuildKeywordComparisons(monthA, monthB, names)
	require.Len(t, comparisons, 3)

	// kw1 melhorou 6 posições (10 -> 4)
	kw1 := comparisons[0]
	assert.Equal(t, "kw1", kw1.KeywordID)
	assert.Equal(t, "óculos de grau", kw1.Keyword)
	require.NotNil(t, kw1.MonthlyRankChange)
	assert.Equal(t, -6, *kw1.MonthlyRankChange)
	assert.Equal(t, "▲6", kw1.MonthlyRankChangeLabel)

	// kw2 caiu 3 posições (50 -> 53)
	kw2 := comparisons[1]
	require.NotNil(t, kw2.MonthlyRankChange)
	assert.Equal(t, 3, *kw2.MonthlyRankChange)
	assert.Equal(t, "▼3", kw2.MonthlyRankChangeLabel)

	// kw3 só existe no mês B: campos A nulos, variação indefinida
	kw3 := comparisons[2]
	assert.Nil(t, kw3.RankA)
	assert.Nil(t, kw3.SearchVolumeA)
	assert.Nil(t, kw3.MonthlyRankChange)
	assert.Equal(t, "N/A", kw3.MonthlyRankChangeLabel)
}

func TestBuildKeywordComparisons_MonthBDirige(t *testing.T) {
	// Keyword presente apenas no mês A não gera comparação
	monthA := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(10), 900),
		keywordStats("kw2", flexInt(20), 500),
	}

	monthB := []mangoolsdomain.KeywordStats{
		keywordStats("kw2", flexInt(18), 500),
	}

	comparisons := BuildKeywordComparisons(monthA, monthB, map[string]string{"kw2": "lentes"})

	require.Len(t, comparisons, 1)
	assert.Equal(t, "kw2", comparisons[0].KeywordID)
}

func TestBuildKeywordComparisons_RankAusente(t *testing.T) {
	// Rank ausente em um dos meses: sem variação mensal, label N/A
	monthA := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", mangoolsdomain.FlexInt{}, 900),
	}

	monthB := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(30), 950),
	}

	comparisons := BuildKeywordComparisons(monthA, monthB, nil)

	require.Len(t, comparisons, 1)
	assert.Nil(t, comparisons[0].RankA)
	require.NotNil(t, comparisons[0].RankB)
	assert.Equal(t, 30, *comparisons[0].RankB)
	assert.Nil(t, comparisons[0].MonthlyRankChange)
	assert.Equal(t, "N/A", comparisons[0].MonthlyRankChangeLabel)
}

func intPtr(v int) *int {
	return &v
}

func comparison(id string, rankA, rankB *int, searchVolumeB *int) *domain.KeywordComparison {
	c := &domain.KeywordComparison{
		KeywordID:     id,
		RankA:         rankA,
		RankB:         rankB,
		SearchVolumeB: searchVolumeB,
	}

	if rankA != nil && rankB != nil {
		change := *rankB - *rankA
		c.MonthlyRankChange = &change
	}

	c.MonthlyRankChangeLabel = domain.FormatRankChange(c.MonthlyRankChange)

	return c
}

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		name                     string
		comparisons              []*domain.KeywordComparison
		expectedWinners          []string
		expectedControlledLosers []string
		expectedNewRankings      []string
	}{
		{
			name: "Limites da variação mensal",
			comparisons: []*domain.KeywordComparison{
				comparison("melhora", intPtr(20), intPtr(9), intPtr(100)),           // -11: winner
				comparison("melhora-minima", intPtr(10), intPtr(9), intPtr(100)),    // -1: winner
				comparison("estavel", intPtr(15), intPtr(15), intPtr(100)),          // 0: nenhuma lista
				comparison("queda-controlada", intPtr(10), intPtr(13), intPtr(100)), // +3: controlled loser
				comparison("queda-livre", intPtr(10), intPtr(14), intPtr(100)),      // +4: fora
			},
			expectedWinners:          []string{"melhora", "melhora-minima"},
			expectedControlledLosers: []string{"queda-controlada"},
			expectedNewRankings:      []string{},
		},
		{
			name: "New Rankings tem precedência sobre a partição por variação",
			comparisons: []*domain.KeywordComparison{
				comparison("entrou-do-nada", nil, intPtr(40), intPtr(300)),          // sem mês A: new ranking
				comparison("entrou-do-fundo", intPtr(150), intPtr(90), intPtr(500)), // -60, mas era >100: new ranking
				comparison("ja-estava", intPtr(80), intPtr(70), intPtr(100)),        // -10 dentro do top-100: winner
			},
			expectedWinners:          []string{"ja-estava"},
			expectedControlledLosers: []string{},
			expectedNewRankings:      []string{"entrou-do-fundo", "entrou-do-nada"},
		},
		{
			name: "Fora do top-100 no mês B não é new ranking",
			comparisons: []*domain.KeywordComparison{
				comparison("ainda-fora", intPtr(150), intPtr(120), intPtr(100)), // segue fora do top-100
				comparison("sem-rank-b", intPtr(50), nil, intPtr(100)),          // rank B ausente
			},
			expectedWinners:          []string{},
			expectedControlledLosers: []string{},
			expectedNewRankings:      []string{},
		},
		{
			name: "Ordenação dos winners pela variação mais negativa",
			comparisons: []*domain.KeywordComparison{
				comparison("ganho-pequeno", intPtr(10), intPtr(8), intPtr(100)), // -2
				comparison("ganho-grande", intPtr(50), intPtr(10), intPtr(100)), // -40
				comparison("ganho-medio", intPtr(30), intPtr(20), intPtr(100)),  // -10
			},
			expectedWinners:          []string{"ganho-grande", "ganho-medio", "ganho-pequeno"},
			expectedControlledLosers: []string{},
			expectedNewRankings:      []string{},
		},
		{
			name: "Ordenação dos losers pela maior queda",
			comparisons: []*domain.KeywordComparison{
				comparison("caiu-um", intPtr(10), intPtr(11), intPtr(100)),   // +1
				comparison("caiu-tres", intPtr(10), intPtr(13), intPtr(100)), // +3
				comparison("caiu-dois", intPtr(10), intPtr(12), intPtr(100)), // +2
			},
			expectedWinners:          []string{},
			expectedControlledLosers: []string{"caiu-tres", "caiu-dois", "caiu-um"},
			expectedNewRankings:      []string{},
		},
		{
			name: "New Rankings por volume de busca decrescente, nulo ordena como zero",
			comparisons: []*domain.KeywordComparison{
				comparison("volume-baixo", nil, intPtr(30), intPtr(100)),
				comparison("sem-volume", nil, intPtr(40), nil),
				comparison("volume-alto", nil, intPtr(50), intPtr(900)),
			},
			expectedWinners:          []string{},
			expectedControlledLosers: []string{},
			expectedNewRankings:      []string{"volume-alto", "volume-baixo", "sem-volume"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classification := ClassifyKeywords(tt.comparisons)

			// TopKeywords é sempre o conjunto inteiro, na ordem de entrada
			assert.Equal(t, tt.comparisons, classification.TopKeywords)

			assert.Equal(t, tt.expectedWinners, keywordIDs(classification.TopWinners))
			assert.Equal(t, tt.expectedControlledLosers, keywordIDs(classification.ControlledLosers))
			assert.Equal(t, tt.expectedNewRankings, keywordIDs(classification.NewRankings))
		})
	}
}

func TestClassifyKeywords_ListasDisjuntas(t *testing.T) {
	comparisons := []*domain.KeywordComparison{
		comparison("novo", nil, intPtr(40), intPtr(300)),
		comparison("winner", intPtr(50), intPtr(10), intPtr(100)),
		comparison("loser", intPtr(10), intPtr(12), intPtr(100)),
		comparison("estavel", intPtr(15), intPtr(15), intPtr(100)),
	}

	classification := ClassifyKeywords(comparisons)

	seen := make(map[string]int)
	for _, list := range [][]*domain.KeywordComparison{
		classification.TopWinners,
		classification.ControlledLosers,
		classification.NewRankings,
	} {
		for _, c := range list {
			seen[c.KeywordID]++
		}
	}

	for id, count := range seen {
		assert.Equal(t, 1, count, "keyword %s aparece em mais de uma lista derivada", id)
	}

	// "estavel" (variação zero) não entra em nenhuma das três listas derivadas
	assert.NotContains(t, seen, "estavel")
}

func TestCountRankedKeywords(t *testing.T) {
	stats := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(1), 100),               // ranqueada
		keywordStats("kw2", flexInt(100), 100),             // limite do top-100
		keywordStats("kw3", flexInt(101), 100),             // fora
		keywordStats("kw4", mangoolsdomain.FlexInt{}, 100), // sem rank
		keywordStats("kw5", flexInt(55), 100),              // ranqueada
	}

	assert.Equal(t, 3, CountRankedKeywords(stats))
	assert.Equal(t, 0, CountRankedKeywords(nil))
}

func keywordIDs(comparisons []*domain.KeywordComparison) []string {
	ids := make([]string, 0, len(comparisons))
	for _, c := range comparisons {
		ids = append(ids, c.KeywordID)
	}
	return ids
}
