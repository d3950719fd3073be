package mangoolsclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
)

// GetTrackingStats busca as estatísticas de ranking de um tracking para uma janela
// de datas. As datas seguem o formato compacto exigido pela API (20060102).
func (c *MangoolsClient) GetTrackingStats(trackingID, fromDate, toDate string) (*mangoolsdomain.TrackingStats, error) {
	url := fmt.Sprintf(
		"%s/serpwatcher/trackings/%s/stats?from=%s&to=%s",
		c.Cfg.Mangools.BaseURL,
		trackingID,
		fromDate,
		toDate,
	)

	body, err := c.doRequest(url)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"tracking_id": trackingID,
			"from":        fromDate,
			"to":          toDate,
		}).Error("Erro ao buscar estatísticas do tracking no Mangools")
		return nil, err
	}

	stats := &mangoolsdomain.TrackingStats{}
	if err := json.Unmarshal(body, stats); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON das estatísticas do tracking")
		return nil, err
	}

	return stats, nil
}
