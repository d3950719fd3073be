package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"github.com/vfg2006/seo-manager-api/internal/usecases/dashboarding"
)

// DashboardWarmupConfig representa a configuração do agendador de aquecimento de dashboards
type DashboardWarmupConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// DashboardWarmupService gerencia o agendamento do aquecimento do cache de dashboards:
// percorre os datasources ativos e monta cada dashboard, deixando o snapshot
// pronto no cache antes do primeiro acesso do dia
type DashboardWarmupService struct {
	scheduler           *gocron.Scheduler
	config              DashboardWarmupConfig
	appConfig           *config.Config
	datasourceRepo      repository.DatasourceRepository
	dashboarder         dashboarding.Dashboarder
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// WarmupStatus é o retorno do endpoint de status do agendador
type WarmupStatus struct {
	Running             bool       `json:"running"`
	Enabled             bool       `json:"enabled"`
	CronSchedule        string     `json:"cron_schedule"`
	LastSyncStartedAt   *time.Time `json:"last_sync_started_at,omitempty"`
	LastSyncCompletedAt *time.Time `json:"last_sync_completed_at,omitempty"`
}

// NewDashboardWarmupService cria uma nova instância do serviço de aquecimento de dashboards
func NewDashboardWarmupService(
	datasourceRepo repository.DatasourceRepository,
	dashboarder dashboarding.Dashboarder,
	appConfig *config.Config,
) *DashboardWarmupService {
	// Criar a configuração com base na config global
	warmupConfig := DashboardWarmupConfig{
		CronSchedule:        appConfig.DashboardWarmupSync.CronSchedule,
		RequestDelaySeconds: appConfig.DashboardWarmupSync.RequestDelaySeconds,
		MaxConcurrentJobs:   appConfig.DashboardWarmupSync.MaxConcurrentJobs,
		SyncEnabled:         appConfig.DashboardWarmupSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         warmupConfig.CronSchedule,
		"request_delay_seconds": warmupConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   warmupConfig.MaxConcurrentJobs,
		"sync_enabled":          warmupConfig.SyncEnabled,
	}).Info("Configuração do agendador de aquecimento de dashboards carregada")

	return &DashboardWarmupService{
		scheduler:      scheduler,
		config:         warmupConfig,
		appConfig:      appConfig,
		datasourceRepo: datasourceRepo,
		dashboarder:    dashboarder,
		syncRunning:    false,
	}
}

// Start inicia o agendador
func (s *DashboardWarmupService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Aquecimento de dashboards desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de dashboards")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.warmupDashboards()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de dashboards: %w", err)
	}

	// Executar o agendador em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de aquecimento de dashboards")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara o aquecimento fora do horário agendado. Retorna erro
// quando já existe uma execução em andamento.
func (s *DashboardWarmupService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		return fmt.Errorf("aquecimento de dashboards já em andamento")
	}

	go s.warmupDashboards()

	return nil
}

// GetStatus devolve o estado atual do agendador
func (s *DashboardWarmupService) GetStatus() *WarmupStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := &WarmupStatus{
		Running:      s.syncRunning,
		Enabled:      s.config.SyncEnabled,
		CronSchedule: s.config.CronSchedule,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastSyncStartedAt = &startedAt
	}

	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastSyncCompletedAt = &completedAt
	}

	return status
}

// warmupDashboards monta o dashboard de cada datasource ativo
func (s *DashboardWarmupService) warmupDashboards() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Aquecimento de dashboards já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	startTime := time.Now()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando aquecimento de dashboards para todos os datasources ativos")

	datasources, err := s.datasourceRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar datasources para aquecimento de dashboards")
		return
	}

	if len(datasources) == 0 {
		logrus.Info("Nenhum datasource ativo encontrado para aquecimento de dashboards")
		return
	}

	s.processDatasources(datasources)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration":    duration.String(),
		"datasources": len(datasources),
	}).Info("Aquecimento de dashboards concluído")
}

// processDatasources percorre os datasources com um número limitado de workers
func (s *DashboardWarmupService) processDatasources(datasources []*domain.Datasource) {
	// Criar um canal para controlar o número de workers concorrentes
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	for _, datasource := range datasources {
		wg.Add(1)
		semaphore <- struct{}{} // Adquirir semáforo

		go func(ds *domain.Datasource) {
			defer func() {
				<-semaphore // Liberar semáforo
				wg.Done()
			}()

			logrus.WithFields(logrus.Fields{
				"datasource_id": ds.ID,
				"customer_id":   ds.CustomerID,
				"provider":      ds.Provider,
			}).Info("Aquecendo dashboard do datasource")

			if err := s.warmupDatasource(ds); err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"datasource_id": ds.ID,
					"provider":      ds.Provider,
				}).Error("Erro ao aquecer dashboard do datasource")
			}

			// Aguardar antes do próximo datasource para evitar excesso de requisições
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}(datasource)
	}

	wg.Wait()
}

// warmupDatasource monta o dashboard do provedor do datasource. Datasource sem
// vínculo não é erro: não há o que aquecer.
func (s *DashboardWarmupService) warmupDatasource(ds *domain.Datasource) error {
	switch ds.Provider {
	case domain.ProviderMangools:
		_, err := s.dashboarder.FetchMangoolsDashboard(ds.ID)
		return err
	case domain.ProviderGoogleAnalytics:
		_, err := s.dashboarder.FetchGADashboard(ds.ID)
		return err
	case domain.ProviderSemrush:
		_, err := s.dashboarder.FetchSemrushDashboard(ds.ID)
		return err
	}

	return fmt.Errorf("provedor desconhecido: %s", ds.Provider)
}
