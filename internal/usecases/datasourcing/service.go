package datasourcing

import (
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"github.com/vfg2006/seo-manager-api/pkg/apiErrors"
	"github.com/vfg2006/seo-manager-api/pkg/utils"
)

type DatasourceService interface {
	CreateDatasource(customerID string, provider domain.ProviderType) (*domain.Datasource, error)
	GetDatasource(datasourceID string) (*domain.Datasource, error)
	ListByCustomer(customerID string) ([]*domain.Datasource, error)
	AttachBinding(datasourceID string, request *domain.AttachBindingRequest) error
	DeleteDatasource(datasourceID string) error
}

type Service struct {
	datasourceRepository repository.DatasourceRepository
	bindingRepository    repository.BindingRepository
	customerRepository   repository.CustomerRepository
}

func NewService(
	datasourceRepository repository.DatasourceRepository,
	bindingRepository repository.BindingRepository,
	customerRepository repository.CustomerRepository,
) DatasourceService {
	return &Service{
		datasourceRepository: datasourceRepository,
		bindingRepository:    bindingRepository,
		customerRepository:   customerRepository,
	}
}

// CreateDatasource cria um datasource do provedor informado para o customer.
// O vínculo com o recurso do provedor é feito depois, via AttachBinding.
func (s *Service) CreateDatasource(customerID string, provider domain.ProviderType) (*domain.Datasource, error) {
	if !domain.ValidProvider(provider) {
		return nil, NewDatasourceError(ErrInvalidProvider, apiErrors.ErrInvalidRequest, string(provider))
	}

	customer, err := s.customerRepository.GetByID(customerID)
	if err != nil {
		logrus.Error("Erro ao buscar customer no banco de dados", map[string]any{
			"customerID": customerID,
			"error":      err,
		})
		return nil, NewDatasourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao consultar customer")
	}

	if customer == nil {
		return nil, NewDatasourceError(ErrCustomerNotFound, apiErrors.ErrInvalidRequest, customerID)
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewDatasourceError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar ID do datasource")
	}

	datasource := &domain.Datasource{
		ID:         id,
		CustomerID: customerID,
		Provider:   provider,
		Active:     true,
	}

	if err := s.datasourceRepository.Create(datasource); err != nil {
		logrus.Error("Erro ao criar datasource no banco de dados", map[string]any{
			"customerID": customerID,
			"provider":   provider,
			"error":      err,
		})
		return nil, NewDatasourceError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao criar datasource")
	}

	return datasource, nil
}

// GetDatasource devolve o datasource ou nil quando não existe
func (s *Service) GetDatasource(datasourceID string) (*domain.Datasource, error) {
	datasource, err := s.datasourceRepository.GetByID(datasourceID)
	if err != nil {
		return nil, NewDatasourceErrorWithID(ErrFetchDatasources, apiErrors.ErrDatabaseOperation, datasourceID, "Falha ao consultar datasource")
	}

	return datasource, nil
}

func (s *Service) ListByCustomer(customerID string) ([]*domain.Datasource, error) {
	datasources, err := s.datasourceRepository.ListByCustomer(customerID)
	if err != nil {
		return nil, NewDatasourceError(ErrFetchDatasources, apiErrors.ErrDatabaseOperation, "Falha ao listar datasources")
	}

	return datasources, nil
}

// AttachBinding vincula o datasource ao recurso do seu provedor. Um recurso só
// pode estar vinculado a um datasource ativo por vez; o attach sobre um
// datasource que já tem vínculo substitui o vínculo anterior.
func (s *Service) AttachBinding(datasourceID string, request *domain.AttachBindingRequest) error {
	if request == nil {
		return NewDatasourceErrorWithID(ErrBindingRequired, apiErrors.ErrMissingRequiredData, datasourceID, "Corpo da requisição ausente")
	}

	datasource, err := s.datasourceRepository.GetByID(datasourceID)
	if err != nil {
		return NewDatasourceErrorWithID(ErrFetchDatasources, apiErrors.ErrDatabaseOperation, datasourceID, "Falha ao consultar datasource")
	}

	if datasource == nil {
		return NewDatasourceErrorWithID(ErrDatasourceNotFound, apiErrors.ErrInvalidRequest, datasourceID, "Datasource não encontrado")
	}

	switch datasource.Provider {
	case domain.ProviderMangools:
		return s.attachMangools(datasource, request)
	case domain.ProviderGoogleAnalytics:
		return s.attachGA(datasource, request)
	case domain.ProviderSemrush:
		return s.attachSemrush(datasource, request)
	}

	return NewDatasourceErrorWithID(ErrInvalidProvider, apiErrors.ErrInvalidRequest, datasourceID, string(datasource.Provider))
}

func (s *Service) attachMangools(datasource *domain.Datasource, request *domain.AttachBindingRequest) error {
	if request.TrackingID == nil || *request.TrackingID == "" {
		return NewDatasourceErrorWithID(ErrBindingRequired, apiErrors.ErrMissingRequiredData, datasource.ID, "tracking_id é obrigatório")
	}

	attached, err := s.bindingRepository.ListAttachedMangoolsTrackings()
	if err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasource.ID, "Falha ao consultar trackings vinculados")
	}

	if s.boundElsewhere(attached, *request.TrackingID, datasource.ID, func() (string, error) {
		binding, err := s.bindingRepository.GetMangoolsBinding(datasource.ID)
		if err != nil || binding == nil {
			return "", err
		}
		return binding.TrackingID, nil
	}) {
		return NewDatasourceErrorWithID(ErrResourceAlreadyBound, apiErrors.ErrInvalidRequest, datasource.ID, *request.TrackingID)
	}

	binding := &domain.MangoolsTrackingBinding{
		DatasourceID: datasource.ID,
		TrackingID:   *request.TrackingID,
		Active:       true,
	}
	if request.Domain != nil {
		binding.Domain = *request.Domain
	}

	if err := s.bindingRepository.SaveMangoolsBinding(binding); err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasource.ID, "Falha ao salvar vínculo do Mangools")
	}

	return nil
}

func (s *Service) attachGA(datasource *domain.Datasource, request *domain.AttachBindingRequest) error {
	if request.PropertyID == nil || *request.PropertyID == "" {
		return NewDatasourceErrorWithID(ErrBindingRequired, apiErrors.ErrMissingRequiredData, datasource.ID, "property_id é obrigatório")
	}

	attached, err := s.bindingRepository.ListAttachedGAProperties()
	if err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasource.ID, "Falha ao consultar propriedades vinculadas")
	}

	if s.boundElsewhere(attached, *request.PropertyID, datasource.ID, func() (string, error) {
		binding, err := s.bindingRepository.GetGABinding(datasource.ID)
		if err != nil || binding == nil {
			return "", err
		}
		return binding.PropertyID, nil
	}) {
		return NewDatasourceErrorWithID(ErrResourceAlreadyBound, apiErrors.ErrInvalidRequest, datasource.ID, *request.PropertyID)
	}

	binding := &domain.GAPropertyBinding{
		DatasourceID: datasource.ID,
		PropertyID:   *request.PropertyID,
		Timezone:     request.Timezone,
		Currency:     request.Currency,
		Active:       true,
	}
	if request.PropertyName != nil {
		binding.PropertyName = *request.PropertyName
	}

	if err := s.bindingRepository.SaveGABinding(binding); err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasource.ID, "Falha ao salvar vínculo do Google Analytics")
	}

	return nil
}

func (s *Service) attachSemrush(datasource *domain.Datasource, request *domain.AttachBindingRequest) error {
	if request.Domain == nil || *request.Domain == "" {
		return NewDatasourceErrorWithID(ErrBindingRequired, apiErrors.ErrMissingRequiredData, datasource.ID, "domain é obrigatório")
	}

	attached, err := s.bindingRepository.ListAttachedSemrushDomains()
	if err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasource.ID, "Falha ao consultar domínios vinculados")
	}

	if s.boundElsewhere(attached, *request.Domain, datasource.ID, func() (string, error) {
		binding, err := s.bindingRepository.GetSemrushBinding(datasource.ID)
		if err != nil || binding == nil {
			return "", err
		}
		return binding.Domain, nil
	}) {
		return NewDatasourceErrorWithID(ErrResourceAlreadyBound, apiErrors.ErrInvalidRequest, datasource.ID, *request.Domain)
	}

	binding := &domain.SemrushDomainBinding{
		DatasourceID: datasource.ID,
		Domain:       *request.Domain,
		Active:       true,
	}

	if err := s.bindingRepository.SaveSemrushBinding(binding); err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasource.ID, "Falha ao salvar vínculo do SEMrush")
	}

	return nil
}

// boundElsewhere verifica se o recurso já está vinculado a outro datasource. Um
// re-attach do mesmo recurso ao mesmo datasource é permitido (substituição).
func (s *Service) boundElsewhere(attached map[string]struct{}, resource, datasourceID string, currentResource func() (string, error)) bool {
	if _, exists := attached[resource]; !exists {
		return false
	}

	current, err := currentResource()
	if err != nil {
		logrus.Warn("Erro ao consultar vínculo atual do datasource", map[string]any{
			"datasourceID": datasourceID,
			"error":        err,
		})
		return true
	}

	return current != resource
}

// DeleteDatasource remove o datasource segundo a política da entidade: soft
// delete no datasource e desativação dos vínculos, liberando o recurso para
// outro datasource
func (s *Service) DeleteDatasource(datasourceID string) error {
	datasource, err := s.datasourceRepository.GetByID(datasourceID)
	if err != nil {
		return NewDatasourceErrorWithID(ErrFetchDatasources, apiErrors.ErrDatabaseOperation, datasourceID, "Falha ao consultar datasource")
	}

	if datasource == nil {
		return NewDatasourceErrorWithID(ErrDatasourceNotFound, apiErrors.ErrInvalidRequest, datasourceID, "Datasource não encontrado")
	}

	if domain.DeletionPolicyFor("datasource") == domain.DeletionPolicySoft {
		if err := s.datasourceRepository.Deactivate(datasourceID); err != nil {
			return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasourceID, "Falha ao desativar datasource")
		}
	} else {
		if err := s.datasourceRepository.Delete(datasourceID); err != nil {
			return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasourceID, "Falha ao remover datasource")
		}
	}

	if err := s.bindingRepository.DeactivateByDatasource(datasourceID); err != nil {
		return NewDatasourceErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, datasourceID, "Falha ao desativar vínculos do datasource")
	}

	return nil
}
