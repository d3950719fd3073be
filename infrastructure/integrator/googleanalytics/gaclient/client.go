package gaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	gadomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/googleanalytics/domain"
	"github.com/vfg2006/seo-manager-api/internal/config"
)

type Client interface {
	GetTrafficData(propertyID, startDate, endDate string) (*gadomain.TrafficData, error)
}

type GAClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GAClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetTrafficData busca a série diária de sessões e conversões orgânicas de uma
// propriedade dentro da janela informada (datas no formato 2006-01-02)
func (c *GAClient) GetTrafficData(propertyID, startDate, endDate string) (*gadomain.TrafficData, error) {
	url := fmt.Sprintf(
		"%s/properties/%s/organicTraffic?start_date=%s&end_date=%s&key=%s",
		c.Cfg.GoogleAnalytics.BaseURL,
		propertyID,
		startDate,
		endDate,
		c.Cfg.GoogleAnalytics.APIKey,
	)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("property_id", propertyID).Error("Erro ao buscar tráfego no Google Analytics")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	traffic := &gadomain.TrafficData{}
	if err := json.Unmarshal(body, traffic); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do tráfego do Google Analytics")
		return nil, err
	}

	return traffic, nil
}
