package dashboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gadomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics/domain"
	gamocks "github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics/mocks"
	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
	mangoolsmocks "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/mocks"
	semrushdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush/domain"
	semrushmocks "github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush/mocks"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// referenceNow fixa o relógio dos testes: monthA = Aug 2024, monthB = Sep 2024,
// janela de série diária = 2023-10-01..2024-09-30
var referenceNow = time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC)

type serviceMocks struct {
	mangools *mangoolsmocks.MockMangoolsIntegrator
	ga       *gamocks.MockGAIntegrator
	semrush  *semrushmocks.MockSemrushIntegrator
	bindings *mocks.MockBindingRepository
	cache    *mocks.MockDashboardCacheRepository
}

func newTestService(ctrl *gomock.Controller, cfg *config.Config) (*Service, *serviceMocks) {
	m := &serviceMocks{
		mangools: mangoolsmocks.NewMockMangoolsIntegrator(ctrl),
		ga:       gamocks.NewMockGAIntegrator(ctrl),
		semrush:  semrushmocks.NewMockSemrushIntegrator(ctrl),
		bindings: mocks.NewMockBindingRepository(ctrl),
		cache:    mocks.NewMockDashboardCacheRepository(ctrl),
	}

	service := NewService(cfg, m.mangools, m.ga, m.semrush, m.bindings)
	service.now = func() time.Time { return referenceNow }

	return service, m
}

// expectAsyncSave sincroniza a escrita assíncrona do cache com o teste, evitando
// que a goroutine dispare depois do ctrl.Finish
func expectAsyncSave(m *serviceMocks) chan struct{} {
	saved := make(chan struct{})
	m.cache.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(_ *domain.DashboardCacheEntry) error {
			close(saved)
			return nil
		})
	return saved
}

func waitForSave(t *testing.T, saved chan struct{}) {
	t.Helper()
	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("escrita assíncrona no cache não aconteceu")
	}
}

func TestService_FetchMangoolsDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	binding := &domain.MangoolsTrackingBinding{
		DatasourceID: "ds-001",
		TrackingID:   "trk-123",
		Domain:       "exemplo.com.br",
		Active:       true,
	}

	m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(binding, nil)

	detail := &mangoolsdomain.TrackingDetail{
		Tracking: mangoolsdomain.Tracking{
			ID:       "trk-123",
			Domain:   "exemplo.com.br",
			Location: mangoolsdomain.TrackingLocation{Label: "Brazil"},
		},
		Keywords: []mangoolsdomain.TrackingKeywordRef{
			{ID: "kw1", Keyword: "óculos de grau"},
			{ID: "kw2", Keyword: "lentes de contato"},
		},
	}

	monthA, monthB := KeywordMonths(referenceNow)

	statsA := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(10), 900),
		keywordStats("kw2", flexInt(120), 400),
	}

	statsB := []mangoolsdomain.KeywordStats{
		keywordStats("kw1", flexInt(4), 1000),
		keywordStats("kw2", flexInt(80), 450),
	}

	m.mangools.EXPECT().FetchTrackingDetail("trk-123").Return(detail, nil)
	m.mangools.EXPECT().FetchTrackingStats("trk-123", monthA).Return(statsA, nil)
	m.mangools.EXPECT().FetchTrackingStats("trk-123", monthB).Return(statsB, nil)

	dashboard, err := service.FetchMangoolsDashboard("ds-001")

	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.Equal(t, "exemplo.com.br", dashboard.Domain)
	assert.Equal(t, "Brazil", dashboard.Location)
	assert.Equal(t, 2, dashboard.TotalKeywords)
	assert.Equal(t, "Aug 2024", dashboard.MonthA.Label)
	assert.Equal(t, "Sep 2024", dashboard.MonthB.Label)

	// No mês A só kw1 estava no top-100; no mês B as duas estão
	assert.Equal(t, 1, dashboard.RankedKeywordsA)
	assert.Equal(t, 2, dashboard.RankedKeywordsB)
	assert.Equal(t, domain.PeriodComparison{Change: 100, IsIncrease: true}, dashboard.RankedChange)

	require.NotNil(t, dashboard.Keywords)
	assert.Len(t, dashboard.Keywords.TopKeywords, 2)

	// kw1 melhorou 6 posições dentro do top-100
	require.Len(t, dashboard.Keywords.TopWinners, 1)
	assert.Equal(t, "óculos de grau", dashboard.Keywords.TopWinners[0].Keyword)
	assert.Equal(t, "▲6", dashboard.Keywords.TopWinners[0].MonthlyRankChangeLabel)

	// kw2 entrou no top-100 vindo da posição 120
	require.Len(t, dashboard.Keywords.NewRankings, 1)
	assert.Equal(t, "lentes de contato", dashboard.Keywords.NewRankings[0].Keyword)
}

func TestService_FetchMangoolsDashboard_SemVinculo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(nil, nil)

	dashboard, err := service.FetchMangoolsDashboard("ds-001")

	assert.NoError(t, err)
	assert.Nil(t, dashboard)
}

func TestService_FetchMangoolsDashboard_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(nil, assert.AnError)

	dashboard, err := service.FetchMangoolsDashboard("ds-001")

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}

func TestService_FetchMangoolsDashboard_ErroNoProvedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	binding := &domain.MangoolsTrackingBinding{
		DatasourceID: "ds-001",
		TrackingID:   "trk-123",
	}

	m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(binding, nil)

	// As três buscas disparam em paralelo; uma falha derruba o dashboard inteiro
	m.mangools.EXPECT().FetchTrackingDetail("trk-123").Return(&mangoolsdomain.TrackingDetail{}, nil)
	m.mangools.EXPECT().FetchTrackingStats("trk-123", gomock.Any()).Return(nil, assert.AnError)
	m.mangools.EXPECT().FetchTrackingStats("trk-123", gomock.Any()).Return(nil, nil)

	dashboard, err := service.FetchMangoolsDashboard("ds-001")

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}

func TestService_FetchMangoolsDashboard_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})
	service.WithCache(m.cache)

	binding := &domain.MangoolsTrackingBinding{
		DatasourceID: "ds-001",
		TrackingID:   "trk-123",
	}

	cached := &domain.MangoolsDashboardData{
		Domain:        "exemplo.com.br",
		TotalKeywords: 42,
	}
	payload, err := json.Marshal(cached)
	require.NoError(t, err)

	monthA, monthB := KeywordMonths(referenceNow)

	m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(binding, nil)
	m.cache.EXPECT().
		GetByKey("ds-001", "trk-123", monthA.StartDate, monthB.EndDate).
		Return(&domain.DashboardCacheEntry{
			Provider:  domain.ProviderMangools,
			Payload:   payload,
			UpdatedAt: referenceNow,
		}, nil)

	// Nenhuma expectativa no integrador: cache hit não toca o provedor
	dashboard, err := service.FetchMangoolsDashboard("ds-001")

	require.NoError(t, err)
	require.NotNil(t, dashboard)
	assert.Equal(t, "exemplo.com.br", dashboard.Domain)
	assert.Equal(t, 42, dashboard.TotalKeywords)
}

func TestService_FetchMangoolsDashboard_CacheMiss(t *testing.T) {
	tests := []struct {
		name  string
		entry *domain.DashboardCacheEntry
		err   error
	}{
		{
			name:  "Entrada inexistente",
			entry: nil,
		},
		{
			name: "Entrada gravada por outro provedor",
			entry: &domain.DashboardCacheEntry{
				Provider:  domain.ProviderSemrush,
				Payload:   []byte(`{}`),
				UpdatedAt: referenceNow,
			},
		},
		{
			name: "Erro de leitura rebaixado a miss",
			err:  assert.AnError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, m := newTestService(ctrl, &config.Config{})
			service.WithCache(m.cache)

			binding := &domain.MangoolsTrackingBinding{
				DatasourceID: "ds-001",
				TrackingID:   "trk-123",
			}

			m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(binding, nil)
			m.cache.EXPECT().
				GetByKey("ds-001", "trk-123", gomock.Any(), gomock.Any()).
				Return(tt.entry, tt.err)

			// Miss: o dashboard é rebuscado no provedor e gravado no cache
			m.mangools.EXPECT().FetchTrackingDetail("trk-123").Return(&mangoolsdomain.TrackingDetail{}, nil)
			m.mangools.EXPECT().FetchTrackingStats("trk-123", gomock.Any()).Return(nil, nil).Times(2)

			saved := expectAsyncSave(m)

			dashboard, err := service.FetchMangoolsDashboard("ds-001")

			require.NoError(t, err)
			require.NotNil(t, dashboard)

			waitForSave(t, saved)
		})
	}
}

func TestService_FetchMangoolsDashboard_CacheExpirado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := &config.Config{
		DashboardCache: config.DashboardCache{TTLHours: 1},
	}

	service, m := newTestService(ctrl, cfg)
	service.WithCache(m.cache)

	binding := &domain.MangoolsTrackingBinding{
		DatasourceID: "ds-001",
		TrackingID:   "trk-123",
	}

	m.bindings.EXPECT().GetMangoolsBinding("ds-001").Return(binding, nil)

	// Entrada válida mas atualizada há duas horas: além do TTL de uma hora
	m.cache.EXPECT().
		GetByKey("ds-001", "trk-123", gomock.Any(), gomock.Any()).
		Return(&domain.DashboardCacheEntry{
			Provider:  domain.ProviderMangools,
			Payload:   []byte(`{}`),
			UpdatedAt: referenceNow.Add(-2 * time.Hour),
		}, nil)

	m.mangools.EXPECT().FetchTrackingDetail("trk-123").Return(&mangoolsdomain.TrackingDetail{}, nil)
	m.mangools.EXPECT().FetchTrackingStats("trk-123", gomock.Any()).Return(nil, nil).Times(2)

	saved := expectAsyncSave(m)

	dashboard, err := service.FetchMangoolsDashboard("ds-001")

	require.NoError(t, err)
	require.NotNil(t, dashboard)

	waitForSave(t, saved)
}

func TestService_FetchGADashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	timezone := "America/Sao_Paulo"
	binding := &domain.GAPropertyBinding{
		DatasourceID: "ds-001",
		PropertyID:   "prop-9",
		PropertyName: "Loja Exemplo",
		Timezone:     &timezone,
	}

	m.bindings.EXPECT().GetGABinding("ds-001").Return(binding, nil)

	periods := ReportingWindow(referenceNow)

	traffic := &gadomain.TrafficData{
		DailyData: []gadomain.DailyRecord{
			{Date: "2024-07-10", OrganicSessions: 999, OrganicConversions: 99}, // fora dos meses comparados
			{Date: "2024-08-05", OrganicSessions: 100, OrganicConversions: 10},
			{Date: "2024-08-20", OrganicSessions: 150, OrganicConversions: 5},
			{Date: "2024-09-01", OrganicSessions: 200, OrganicConversions: 20},
			{Date: "2024-09-30", OrganicSessions: 300, OrganicConversions: 30},
		},
	}

	m.ga.EXPECT().FetchTrafficData("prop-9", periods.Window).Return(traffic, nil)

	dashboard, err := service.FetchGADashboard("ds-001")

	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.Equal(t, "prop-9", dashboard.PropertyID)
	assert.Equal(t, "Loja Exemplo", dashboard.PropertyName)
	assert.Equal(t, &timezone, dashboard.Timezone)
	assert.Equal(t, periods.Window, dashboard.DateRange)
	assert.Equal(t, domain.MonthLabels{Current: "Sep 2024", Previous: "Aug 2024"}, dashboard.Labels)
	assert.Len(t, dashboard.DailyData, 5)

	// Setembro: 200+300 sessões, 20+30 conversões; agosto: 100+150 e 10+5
	assert.Equal(t, 500, dashboard.LastMonthOrganicSessions)
	assert.Equal(t, 250, dashboard.PreviousMonthOrganicSessions)
	assert.Equal(t, 50, dashboard.LastMonthOrganicConversions)
	assert.Equal(t, 15, dashboard.PreviousMonthOrganicConversions)

	assert.Equal(t, domain.PeriodComparison{Change: 100, IsIncrease: true}, dashboard.SessionsChange)
	assert.Equal(t, domain.PeriodComparison{Change: 233.33, IsIncrease: true}, dashboard.ConversionsChange)
}

func TestService_FetchGADashboard_SemVinculo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	m.bindings.EXPECT().GetGABinding("ds-001").Return(nil, nil)

	dashboard, err := service.FetchGADashboard("ds-001")

	assert.NoError(t, err)
	assert.Nil(t, dashboard)
}

func TestService_FetchSemrushDashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	binding := &domain.SemrushDomainBinding{
		DatasourceID: "ds-001",
		Domain:       "exemplo.com.br",
	}

	m.bindings.EXPECT().GetSemrushBinding("ds-001").Return(binding, nil)

	periods := ReportingWindow(referenceNow)

	traffic := &semrushdomain.TrafficData{
		DailyData: []semrushdomain.DailyRecord{
			{Date: "2024-08-10", OrganicTraffic: 400},
			{Date: "2024-09-10", OrganicTraffic: 100},
			{Date: "2024-09-25", OrganicTraffic: 100},
		},
	}

	m.semrush.EXPECT().FetchDashboardData("exemplo.com.br", periods.Window).Return(traffic, nil)

	dashboard, err := service.FetchSemrushDashboard("ds-001")

	require.NoError(t, err)
	require.NotNil(t, dashboard)

	assert.Equal(t, "exemplo.com.br", dashboard.Domain)
	assert.Equal(t, periods.Window, dashboard.DateRange)
	assert.Equal(t, domain.MonthLabels{Current: "Sep 2024", Previous: "Aug 2024"}, dashboard.Labels)

	assert.Equal(t, 200, dashboard.LastMonthTotal)
	assert.Equal(t, 400, dashboard.PreviousMonthTotal)
	assert.Equal(t, domain.PeriodComparison{Change: 50, IsIncrease: false}, dashboard.TrafficChange)
}

func TestService_FetchSemrushDashboard_ErroNoProvedor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, &config.Config{})

	binding := &domain.SemrushDomainBinding{
		DatasourceID: "ds-001",
		Domain:       "exemplo.com.br",
	}

	m.bindings.EXPECT().GetSemrushBinding("ds-001").Return(binding, nil)
	m.semrush.EXPECT().FetchDashboardData("exemplo.com.br", gomock.Any()).Return(nil, assert.AnError)

	dashboard, err := service.FetchSemrushDashboard("ds-001")

	assert.Error(t, err)
	assert.Nil(t, dashboard)
}
