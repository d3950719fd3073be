package semrush

import (
	semrushdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush/domain"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush/semrushclient"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

// SemrushIntegrator expõe a consulta de tráfego orgânico consumida pelo dashboard
type SemrushIntegrator interface {
	FetchDashboardData(domainName string, window domain.DateWindow) (*semrushdomain.TrafficData, error)
}

type SemrushService struct {
	cfg    *config.Config
	Client semrushclient.Client
}

func New(cfg *config.Config, client semrushclient.Client) SemrushIntegrator {
	return &SemrushService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SemrushService) FetchDashboardData(domainName string, window domain.DateWindow) (*semrushdomain.TrafficData, error) {
	return s.Client.GetOrganicTraffic(domainName, window.StartDate, window.EndDate)
}
