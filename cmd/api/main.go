package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-manager-api/infrastructure/database/postgres"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics/gaclient"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/mangoolsclient"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush/semrushclient"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository"
	"github.com/vfg2006/seo-manager-api/internal/api"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/scheduler"
	"github.com/vfg2006/seo-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-manager-api/internal/usecases/customer"
	"github.com/vfg2006/seo-manager-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seo-manager-api/internal/usecases/datasourcing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	customerRepo := repository.NewCustomerRepository(pgConn)
	datasourceRepo := repository.NewDatasourceRepository(pgConn)
	bindingRepo := repository.NewBindingRepository(pgConn)
	dashboardCacheRepo := repository.NewDashboardCacheRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	mangoolsClient := mangoolsclient.NewClient(cfg)
	mangoolsIntegrator := mangools.New(cfg, mangoolsClient)

	gaClient := gaclient.NewClient(cfg)
	gaIntegrator := googleanalytics.New(cfg, gaClient)

	semrushClient := semrushclient.NewClient(cfg)
	semrushIntegrator := semrush.New(cfg, semrushClient)

	// Inicializa o serviço de dashboards com suporte a cache
	dashboardService := dashboarding.NewService(
		cfg,
		mangoolsIntegrator,
		gaIntegrator,
		semrushIntegrator,
		bindingRepo,
	).WithCache(dashboardCacheRepo)

	datasourceService := datasourcing.NewService(datasourceRepo, bindingRepo, customerRepo)
	customerService := customer.NewService(customerRepo)

	// Inicializa o agendador de aquecimento do cache de dashboards
	dashboardWarmupService := scheduler.NewDashboardWarmupService(
		datasourceRepo,
		dashboardService,
		cfg,
	)

	if err := dashboardWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de dashboards")
	} else {
		logrus.Info("Agendador de aquecimento de dashboards iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		datasourceService,
		customerService,
		authenticator,
		dashboardWarmupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
