package mangoolsclient

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
)

// GetTrackingDetail busca o detalhe de um tracking do SERPWatcher: domínio,
// localização e a lista de keywords acompanhados (id + texto)
func (c *MangoolsClient) GetTrackingDetail(trackingID string) (*mangoolsdomain.TrackingDetail, error) {
	url := fmt.Sprintf("%s/serpwatcher/trackings/%s", c.Cfg.Mangools.BaseURL, trackingID)

	body, err := c.doRequest(url)
	if err != nil {
		logrus.WithError(err).WithField("tracking_id", trackingID).Error("Erro ao buscar detalhe do tracking no Mangools")
		return nil, err
	}

	detail := &mangoolsdomain.TrackingDetail{}
	if err := json.Unmarshal(body, detail); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do detalhe do tracking")
		return nil, err
	}

	return detail, nil
}
