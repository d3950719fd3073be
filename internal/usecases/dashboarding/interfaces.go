package dashboarding

import (
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

// MangoolsDashboarder define a interface para montar o dashboard de keywords do SERPWatcher
type MangoolsDashboarder interface {
	// FetchMangoolsDashboard monta o dashboard de keywords do datasource informado
	FetchMangoolsDashboard(datasourceID string) (*domain.MangoolsDashboardData, error)
}

// GADashboarder define a interface para montar o dashboard de tráfego do Google Analytics
type GADashboarder interface {
	// FetchGADashboard monta o dashboard de tráfego orgânico do datasource informado
	FetchGADashboard(datasourceID string) (*domain.GADashboardData, error)
}

// SemrushDashboarder define a interface para montar o dashboard de tráfego do SEMrush
type SemrushDashboarder interface {
	// FetchSemrushDashboard monta o dashboard de tráfego estimado do datasource informado
	FetchSemrushDashboard(datasourceID string) (*domain.SemrushDashboardData, error)
}

// Dashboarder é a interface completa consumida pela camada HTTP e pelo warmup.
// Todos os métodos devolvem (nil, nil) quando o datasource não tem vínculo ativo
// com o provedor correspondente.
type Dashboarder interface {
	MangoolsDashboarder
	GADashboarder
	SemrushDashboarder
}
