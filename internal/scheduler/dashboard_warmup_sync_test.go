package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	dashboardingmocks "github.com/vfg2006/seo-manager-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func TestDashboardWarmupService_warmupDashboards(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasourceRepo := mocks.NewMockDatasourceRepository(ctrl)
	mockDashboarder := dashboardingmocks.NewMockDashboarder(ctrl)

	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{
			MaxConcurrentJobs:   2,
			RequestDelaySeconds: 0,
		},
		datasourceRepo: mockDatasourceRepo,
		dashboarder:    mockDashboarder,
	}

	datasources := []*domain.Datasource{
		{ID: "ds-001", CustomerID: "cust-1", Provider: domain.ProviderMangools, Active: true},
		{ID: "ds-002", CustomerID: "cust-1", Provider: domain.ProviderGoogleAnalytics, Active: true},
		{ID: "ds-003", CustomerID: "cust-2", Provider: domain.ProviderSemrush, Active: true},
	}

	mockDatasourceRepo.EXPECT().ListActive().Return(datasources, nil)

	// Cada datasource aciona o orquestrador do seu provedor; datasource sem
	// vínculo devolve (nil, nil) e não é erro
	mockDashboarder.EXPECT().FetchMangoolsDashboard("ds-001").Return(&domain.MangoolsDashboardData{}, nil)
	mockDashboarder.EXPECT().FetchGADashboard("ds-002").Return(nil, nil)
	mockDashboarder.EXPECT().FetchSemrushDashboard("ds-003").Return(&domain.SemrushDashboardData{}, nil)

	service.warmupDashboards()

	status := service.GetStatus()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastSyncStartedAt)
	require.NotNil(t, status.LastSyncCompletedAt)
}

func TestDashboardWarmupService_warmupDashboards_ErroNaoInterrompeOsDemais(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDatasourceRepo := mocks.NewMockDatasourceRepository(ctrl)
	mockDashboarder := dashboardingmocks.NewMockDashboarder(ctrl)

	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{
			MaxConcurrentJobs:   1,
			RequestDelaySeconds: 0,
		},
		datasourceRepo: mockDatasourceRepo,
		dashboarder:    mockDashboarder,
	}

	datasources := []*domain.Datasource{
		{ID: "ds-001", Provider: domain.ProviderMangools, Active: true},
		{ID: "ds-002", Provider: domain.ProviderSemrush, Active: true},
	}

	mockDatasourceRepo.EXPECT().ListActive().Return(datasources, nil)

	// A falha do primeiro datasource é só logada; o segundo ainda é aquecido
	mockDashboarder.EXPECT().FetchMangoolsDashboard("ds-001").Return(nil, assert.AnError)
	mockDashboarder.EXPECT().FetchSemrushDashboard("ds-002").Return(&domain.SemrushDashboardData{}, nil)

	service.warmupDashboards()
}

func TestDashboardWarmupService_warmupDatasource_ProviderDesconhecido(t *testing.T) {
	service := &DashboardWarmupService{}

	err := service.warmupDatasource(&domain.Datasource{
		ID:       "ds-x",
		Provider: domain.ProviderType("facebook"),
	})

	assert.Error(t, err)
}

func TestDashboardWarmupService_TriggerManualSync_JaEmAndamento(t *testing.T) {
	service := &DashboardWarmupService{}
	service.syncRunning = true

	err := service.TriggerManualSync()

	assert.Error(t, err)
}

func TestDashboardWarmupService_GetStatus(t *testing.T) {
	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{
			CronSchedule: "0 5 * * *",
			SyncEnabled:  true,
		},
	}

	status := service.GetStatus()

	assert.False(t, status.Running)
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 5 * * *", status.CronSchedule)
	assert.Nil(t, status.LastSyncStartedAt)
	assert.Nil(t, status.LastSyncCompletedAt)
}
