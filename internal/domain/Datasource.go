package domain

import (
	"time"
)

type ProviderType string

const (
	ProviderMangools        ProviderType = "mangools"
	ProviderGoogleAnalytics ProviderType = "google_analytics"
	ProviderSemrush         ProviderType = "semrush"
)

// ValidProvider verifica se o tipo de provedor informado é suportado
func ValidProvider(p ProviderType) bool {
	switch p {
	case ProviderMangools, ProviderGoogleAnalytics, ProviderSemrush:
		return true
	}
	return false
}

// DeletionPolicy define como cada entidade é removida do sistema
type DeletionPolicy string

const (
	DeletionPolicySoft DeletionPolicy = "SOFT" // marca active=false
	DeletionPolicyHard DeletionPolicy = "HARD" // remove a linha
)

// DeletionPolicyFor centraliza a política de remoção por entidade.
// O legado misturava soft e hard delete sem critério; aqui a escolha é explícita.
func DeletionPolicyFor(entity string) DeletionPolicy {
	switch entity {
	case "customer":
		return DeletionPolicyHard
	case "datasource", "domain_binding":
		return DeletionPolicySoft
	}
	return DeletionPolicyHard
}

type Datasource struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer_id"`
	Provider   ProviderType `json:"provider"`
	Active     bool         `json:"active"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// MangoolsTrackingBinding vincula um datasource a um tracking do SERPWatcher
type MangoolsTrackingBinding struct {
	DatasourceID string    `json:"datasource_id"`
	TrackingID   string    `json:"tracking_id"`
	Domain       string    `json:"domain"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// GAPropertyBinding vincula um datasource a uma propriedade do Google Analytics
type GAPropertyBinding struct {
	DatasourceID string    `json:"datasource_id"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Timezone     *string   `json:"timezone"`
	Currency     *string   `json:"currency"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// SemrushDomainBinding vincula um datasource a um domínio monitorado no SEMrush
type SemrushDomainBinding struct {
	DatasourceID string    `json:"datasource_id"`
	Domain       string    `json:"domain"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// AttachBindingRequest é o corpo aceito pelo endpoint de attach, com os campos
// específicos de cada provedor
type AttachBindingRequest struct {
	TrackingID   *string `json:"tracking_id"`
	Domain       *string `json:"domain"`
	PropertyID   *string `json:"property_id"`
	PropertyName *string `json:"property_name"`
	Timezone     *string `json:"timezone"`
	Currency     *string `json:"currency"`
}
