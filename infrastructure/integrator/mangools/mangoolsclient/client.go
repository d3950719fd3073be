package mangoolsclient

import (
	"fmt"
	"io"
	"net/http"
	"time"

	mangoolsdomain "github.com/vfg2006/seo-manager-api/infrastructure/integrator/mangools/domain"
	"github.com/vfg2006/seo-manager-api/internal/config"
)

type Client interface {
	GetTrackingDetail(trackingID string) (*mangoolsdomain.TrackingDetail, error)
	GetTrackingStats(trackingID, fromDate, toDate string) (*mangoolsdomain.TrackingStats, error)
}

type MangoolsClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MangoolsClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doRequest executa uma chamada autenticada à API do Mangools e devolve o corpo
func (c *MangoolsClient) doRequest(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Access-Token", c.Cfg.Mangools.AccessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Error on Request: %s status: %s", url, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
