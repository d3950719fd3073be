package semrushclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	semrushdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/semrush/domain"
	"github.com/vfg2006/seo-manager-api/internal/config"
)

type Client interface {
	GetOrganicTraffic(domain, startDate, endDate string) (*semrushdomain.TrafficData, error)
}

type SemrushClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &SemrushClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// GetOrganicTraffic busca a série diária de tráfego orgânico estimado de um
// domínio dentro da janela informada (datas no formato 2006-01-02)
func (c *SemrushClient) GetOrganicTraffic(domain, startDate, endDate string) (*semrushdomain.TrafficData, error) {
	params := url.Values{}
	params.Add("type", "domain_organic_traffic")
	params.Add("domain", domain)
	params.Add("display_date_begin", startDate)
	params.Add("display_date_end", endDate)
	params.Add("key", c.Cfg.Semrush.APIKey)

	requestURL := fmt.Sprintf("%s/analytics/v1/?%s", c.Cfg.Semrush.BaseURL, params.Encode())

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithField("domain", domain).Error("Erro ao buscar tráfego no SEMrush")
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", requestURL, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	traffic := &semrushdomain.TrafficData{}
	if err := json.Unmarshal(body, traffic); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON do tráfego do SEMrush")
		return nil, err
	}

	return traffic, nil
}
