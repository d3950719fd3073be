package mangools

import (
	"github.com/sirupsen/logrus"
	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
	"github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/mangoolsclient"
	"github.com/vfg2006/seo-manager-api/internal/config"
	"github.com/vfg2006/seo-manager-api/internal/domain"
)

// MangoolsIntegrator expõe as consultas do SERPWatcher consumidas pelos dashboards
type MangoolsIntegrator interface {
	FetchTrackingDetail(trackingID string) (*mangoolsdomain.TrackingDetail, error)
	FetchTrackingStats(trackingID string, window domain.MonthWindow) ([]mangoolsdomain.KeywordStats, error)
}

type MangoolsService struct {
	cfg    *config.Config
	Client mangoolsclient.Client
}

func New(cfg *config.Config, client mangoolsclient.Client) MangoolsIntegrator {
	return &MangoolsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MangoolsService) FetchTrackingDetail(trackingID string) (*mangoolsdomain.TrackingDetail, error) {
	detail, err := s.Client.GetTrackingDetail(trackingID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"tracking_id": trackingID,
		"domain":      detail.Tracking.Domain,
		"keywords":    len(detail.Keywords),
	}).Debug("dashboards: detalhe do tracking obtido do Mangools")

	return detail, nil
}

func (s *MangoolsService) FetchTrackingStats(trackingID string, window domain.MonthWindow) ([]mangoolsdomain.KeywordStats, error) {
	stats, err := s.Client.GetTrackingStats(trackingID, window.StartCompact, window.EndCompact)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		return []mangoolsdomain.KeywordStats{}, nil
	}

	return stats.Keywords, nil
}
