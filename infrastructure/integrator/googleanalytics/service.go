package googleanalytics

import (
	gadomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics/domain"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics/gaclient"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

// GAIntegrator expõe a consulta de tráfego orgânico consumida pelo dashboard
type GAIntegrator interface {
	FetchTrafficData(propertyID string, window domain.DateWindow) (*gadomain.TrafficData, error)
}

type GAService struct {
	cfg    *config.Config
	Client gaclient.Client
}

func New(cfg *config.Config, client gaclient.Client) GAIntegrator {
	return &GAService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *GAService) FetchTrafficData(propertyID string, window domain.DateWindow) (*gadomain.TrafficData, error) {
	return s.Client.GetTrafficData(propertyID, window.StartDate, window.EndDate)
}
