package dashboarding

import (
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools"
	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Service implementa Dashboarder, orquestrando os três provedores com o cache de
// dashboards na frente
type Service struct {
	cfg               *config.Config
	mangoolsService   mangools.MangoolsIntegrator
	gaService         googleanalytics.GAIntegrator
	semrushService    semrush.SemrushIntegrator
	bindingRepository repository.BindingRepository
	cacheRepository   repository.DashboardCacheRepository
	useCache          bool

	// now é o relógio do serviço; os testes o substituem para fixar a janela
	now func() time.Time
}

// NewService cria uma nova instância do serviço de dashboards, inicialmente sem cache
func NewService(
	cfg *config.Config,
	mangoolsService mangools.MangoolsIntegrator,
	gaService googleanalytics.GAIntegrator,
	semrushService semrush.SemrushIntegrator,
	bindingRepo repository.BindingRepository,
) *Service {
	return &Service{
		cfg:               cfg,
		mangoolsService:   mangoolsService,
		gaService:         gaService,
		semrushService:    semrushService,
		bindingRepository: bindingRepo,
		useCache:          false,
		now:               time.Now,
	}
}

// WithCache habilita o cache de dashboards
func (s *Service) WithCache(cacheRepo repository.DashboardCacheRepository) *Service {
	s.cacheRepository = cacheRepo
	s.useCache = (s.cacheRepository != nil)
	return s
}

// FetchMangoolsDashboard monta o dashboard de keywords do SERPWatcher para o
// datasource informado. Devolve (nil, nil) quando não há tracking vinculado.
func (s *Service) FetchMangoolsDashboard(datasourceID string) (*domain.MangoolsDashboardData, error) {
	binding, err := s.bindingRepository.GetMangoolsBinding(datasourceID)
	if err != nil {
		logrus.Error("Erro ao buscar vínculo do Mangools no repositório", map[string]any{
			"datasourceID": datasourceID,
			"error":        err,
		})
		return nil, err
	}

	if binding == nil {
		return nil, nil
	}

	monthA, monthB := KeywordMonths(s.now())

	// A chave do cache cobre o intervalo completo dos dois meses comparados
	if payload := s.lookupCache(datasourceID, binding.TrackingID, domain.ProviderMangools, monthA.StartDate, monthB.EndDate); payload != nil {
		dashboard := &domain.MangoolsDashboardData{}
		if err := json.Unmarshal(payload, dashboard); err == nil {
			return dashboard, nil
		}
		logrus.Warn("Payload do cache inválido, rebuscando no provedor", map[string]any{
			"datasourceID": datasourceID,
			"provider":     domain.ProviderMangools,
		})
	}

	// Busca concorrente: detalhe do tracking e estatísticas dos dois meses.
	// Qualquer falha invalida o dashboard inteiro; não há resposta parcial.
	var (
		detail         *mangoolsdomain.TrackingDetail
		statsA, statsB []mangoolsdomain.KeywordStats
		detailErr      error
		statsAErr      error
		statsBErr      error
	)

	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		detail, detailErr = s.mangoolsService.FetchTrackingDetail(binding.TrackingID)
	}()

	go func() {
		defer wg.Done()
		statsA, statsAErr = s.mangoolsService.FetchTrackingStats(binding.TrackingID, monthA)
	}()

	go func() {
		defer wg.Done()
		statsB, statsBErr = s.mangoolsService.FetchTrackingStats(binding.TrackingID, monthB)
	}()

	wg.Wait()

	for _, fetchErr := range []error{detailErr, statsAErr, statsBErr} {
		if fetchErr != nil {
			logrus.Error("Erro ao buscar dados do tracking no Mangools", map[string]any{
				"datasourceID": datasourceID,
				"trackingID":   binding.TrackingID,
				"error":        fetchErr,
			})
			return nil, fetchErr
		}
	}

	names := make(map[string]string, len(detail.Keywords))
	for _, ref := range detail.Keywords {
		names[ref.ID] = ref.Keyword
	}

	comparisons := BuildKeywordComparisons(statsA, statsB, names)

	rankedA := CountRankedKeywords(statsA)
	rankedB := CountRankedKeywords(statsB)

	dashboard := &domain.MangoolsDashboardData{
		Domain:          detail.Tracking.Domain,
		Location:        detail.Tracking.Location.Label,
		TotalKeywords:   len(detail.Keywords),
		MonthA:          monthA,
		MonthB:          monthB,
		RankedKeywordsA: rankedA,
		RankedKeywordsB: rankedB,
		RankedChange:    PercentageChange(float64(rankedB), float64(rankedA)),
		Keywords:        ClassifyKeywords(comparisons),
	}

	s.storeAsync(datasourceID, binding.TrackingID, domain.ProviderMangools, monthA.StartDate, monthB.EndDate, dashboard)

	return dashboard, nil
}

// FetchGADashboard monta o dashboard de tráfego orgânico do Google Analytics para
// o datasource informado. Devolve (nil, nil) quando não há propriedade vinculada.
func (s *Service) FetchGADashboard(datasourceID string) (*domain.GADashboardData, error) {
	binding, err := s.bindingRepository.GetGABinding(datasourceID)
	if err != nil {
		logrus.Error("Erro ao buscar vínculo do Google Analytics no repositório", map[string]any{
			"datasourceID": datasourceID,
			"error":        err,
		})
		return nil, err
	}

	if binding == nil {
		return nil, nil
	}

	periods := ReportingWindow(s.now())

	if payload := s.lookupCache(datasourceID, binding.PropertyID, domain.ProviderGoogleAnalytics, periods.Window.StartDate, periods.Window.EndDate); payload != nil {
		dashboard := &domain.GADashboardData{}
		if err := json.Unmarshal(payload, dashboard); err == nil {
			return dashboard, nil
		}
		logrus.Warn("Payload do cache inválido, rebuscando no provedor", map[string]any{
			"datasourceID": datasourceID,
			"provider":     domain.ProviderGoogleAnalytics,
		})
	}

	traffic, err := s.gaService.FetchTrafficData(binding.PropertyID, periods.Window)
	if err != nil {
		logrus.Error("Erro ao buscar tráfego no Google Analytics", map[string]any{
			"datasourceID": datasourceID,
			"propertyID":   binding.PropertyID,
			"error":        err,
		})
		return nil, err
	}

	daily := make([]domain.GADailyRecord, 0, len(traffic.DailyData))
	for _, record := range traffic.DailyData {
		daily = append(daily, domain.GADailyRecord{
			Date:        record.Date,
			Sessions:    record.OrganicSessions,
			Conversions: record.OrganicConversions,
		})
	}

	// Os totais mensais são derivados aqui da série diária; o integrador só
	// conhece a janela completa
	lastSessions, lastConversions := sumGADaily(daily, periods.LastMonth)
	prevSessions, prevConversions := sumGADaily(daily, periods.PreviousMonth)

	dashboard := &domain.GADashboardData{
		PropertyID:   binding.PropertyID,
		PropertyName: binding.PropertyName,
		Timezone:     binding.Timezone,
		Currency:     binding.Currency,
		DateRange:    periods.Window,
		Labels: domain.MonthLabels{
			Current:  periods.LastMonth.Label,
			Previous: periods.PreviousMonth.Label,
		},
		DailyData:                       daily,
		LastMonthOrganicSessions:        lastSessions,
		PreviousMonthOrganicSessions:    prevSessions,
		LastMonthOrganicConversions:     lastConversions,
		PreviousMonthOrganicConversions: prevConversions,
		SessionsChange:                  PercentageChange(float64(lastSessions), float64(prevSessions)),
		ConversionsChange:               PercentageChange(float64(lastConversions), float64(prevConversions)),
	}

	s.storeAsync(datasourceID, binding.PropertyID, domain.ProviderGoogleAnalytics, periods.Window.StartDate, periods.Window.EndDate, dashboard)

	return dashboard, nil
}

// FetchSemrushDashboard monta o dashboard de tráfego estimado do SEMrush para o
// datasource informado. Devolve (nil, nil) quando não há domínio vinculado.
func (s *Service) FetchSemrushDashboard(datasourceID string) (*domain.SemrushDashboardData, error) {
	binding, err := s.bindingRepository.GetSemrushBinding(datasourceID)
	if err != nil {
		logrus.Error("Erro ao buscar vínculo do SEMrush no repositório", map[string]any{
			"datasourceID": datasourceID,
			"error":        err,
		})
		return nil, err
	}

	if binding == nil {
		return nil, nil
	}

	periods := ReportingWindow(s.now())

	if payload := s.lookupCache(datasourceID, binding.Domain, domain.ProviderSemrush, periods.Window.StartDate, periods.Window.EndDate); payload != nil {
		dashboard := &domain.SemrushDashboardData{}
		if err := json.Unmarshal(payload, dashboard); err == nil {
			return dashboard, nil
		}
		logrus.Warn("Payload do cache inválido, rebuscando no provedor", map[string]any{
			"datasourceID": datasourceID,
			"provider":     domain.ProviderSemrush,
		})
	}

	traffic, err := s.semrushService.FetchDashboardData(binding.Domain, periods.Window)
	if err != nil {
		logrus.Error("Erro ao buscar tráfego no SEMrush", map[string]any{
			"datasourceID": datasourceID,
			"domain":       binding.Domain,
			"error":        err,
		})
		return nil, err
	}

	daily := make([]domain.SemrushDailyRecord, 0, len(traffic.DailyData))
	for _, record := range traffic.DailyData {
		daily = append(daily, domain.SemrushDailyRecord{
			Date:           record.Date,
			OrganicTraffic: record.OrganicTraffic,
		})
	}

	lastTotal := sumSemrushDaily(daily, periods.LastMonth)
	prevTotal := sumSemrushDaily(daily, periods.PreviousMonth)

	dashboard := &domain.SemrushDashboardData{
		Domain:    binding.Domain,
		DateRange: periods.Window,
		Labels: domain.MonthLabels{
			Current:  periods.LastMonth.Label,
			Previous: periods.PreviousMonth.Label,
		},
		DailyData:          daily,
		LastMonthTotal:     lastTotal,
		PreviousMonthTotal: prevTotal,
		TrafficChange:      PercentageChange(float64(lastTotal), float64(prevTotal)),
	}

	s.storeAsync(datasourceID, binding.Domain, domain.ProviderSemrush, periods.Window.StartDate, periods.Window.EndDate, dashboard)

	return dashboard, nil
}

// lookupCache busca a entrada do cache pela chave composta. Qualquer falha de
// leitura é rebaixada a cache miss: o dashboard é rebuscado no provedor e o log
// registra o problema.
func (s *Service) lookupCache(datasourceID, resourceID string, provider domain.ProviderType, startDate, endDate string) []byte {
	if !s.useCache {
		return nil
	}

	entry, err := s.cacheRepository.GetByKey(datasourceID, resourceID, startDate, endDate)
	if err != nil {
		logrus.Warn("Erro ao ler cache de dashboards, tratando como miss", map[string]any{
			"datasourceID": datasourceID,
			"resourceID":   resourceID,
			"error":        err,
		})
		return nil
	}

	if entry == nil {
		return nil
	}

	// O payload só é reaproveitado se foi gravado pelo mesmo provedor
	if entry.Provider != provider {
		logrus.Warn("Entrada do cache pertence a outro provedor, tratando como miss", map[string]any{
			"datasourceID": datasourceID,
			"expected":     provider,
			"found":        entry.Provider,
		})
		return nil
	}

	if ttl := s.cfg.DashboardCache.TTLHours; ttl > 0 {
		if s.now().Sub(entry.UpdatedAt) > time.Duration(ttl)*time.Hour {
			return nil
		}
	}

	return entry.Payload
}

// storeAsync grava o snapshot no cache sem bloquear a resposta. Escrita
// last-write-wins: requisições concorrentes para a mesma chave podem gravar duas
// vezes, e a última prevalece. Falha de escrita é apenas logada.
func (s *Service) storeAsync(datasourceID, resourceID string, provider domain.ProviderType, startDate, endDate string, payload any) {
	if !s.useCache {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		logrus.Warn("Erro ao serializar dashboard para o cache", map[string]any{
			"datasourceID": datasourceID,
			"provider":     provider,
			"error":        err,
		})
		return
	}

	go func() {
		entry := &domain.DashboardCacheEntry{
			DatasourceID: datasourceID,
			ResourceID:   resourceID,
			Provider:     provider,
			StartDate:    startDate,
			EndDate:      endDate,
			Payload:      data,
		}

		if err := s.cacheRepository.SaveOrUpdate(entry); err != nil {
			logrus.Warn("Erro ao salvar dashboard no cache", map[string]any{
				"datasourceID": datasourceID,
				"provider":     provider,
				"error":        err,
			})
		}
	}()
}

// sumGADaily soma sessões e conversões dos dias dentro do mês informado. As datas
// estão no formato 2006-01-02, então a comparação lexicográfica preserva a ordem
// cronológica.
func sumGADaily(daily []domain.GADailyRecord, month domain.MonthWindow) (sessions, conversions int) {
	for _, record := range daily {
		if record.Date >= month.StartDate && record.Date <= month.EndDate {
			sessions += record.Sessions
			conversions += record.Conversions
		}
	}

	return sessions, conversions
}

func sumSemrushDaily(daily []domain.SemrushDailyRecord, month domain.MonthWindow) int {
	total := 0
	for _, record := range daily {
		if record.Date >= month.StartDate && record.Date <= month.EndDate {
			total += record.OrganicTraffic
		}
	}

	return total
}
