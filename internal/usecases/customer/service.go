package customer

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"github.com/vfg2006/seo-manager-api/pkg/utils"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrCustomerNotFound     = errors.New("customer not found")
)

type CustomerService interface {
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(customerID string) (*domain.Customer, error)
	ListCustomers() ([]*domain.Customer, error)
	UpdateCustomer(request *domain.UpdateCustomerRequest) (*domain.Customer, error)
	DeleteCustomer(customerID string) error
}

type Service struct {
	customerRepository repository.CustomerRepository
}

func NewService(customerRepository repository.CustomerRepository) CustomerService {
	return &Service{
		customerRepository: customerRepository,
	}
}

func (s *Service) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	if customer == nil || customer.Name == "" {
		return nil, ErrCustomerNameRequired
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	customer.ID = id
	customer.Active = true

	if err := s.customerRepository.Create(customer); err != nil {
		logrus.Error("Erro ao criar customer no banco de dados", map[string]any{
			"name":  customer.Name,
			"error": err,
		})
		return nil, err
	}

	return customer, nil
}

// GetCustomer devolve o customer ou nil quando não existe
func (s *Service) GetCustomer(customerID string) (*domain.Customer, error) {
	return s.customerRepository.GetByID(customerID)
}

func (s *Service) ListCustomers() ([]*domain.Customer, error) {
	return s.customerRepository.List()
}

// UpdateCustomer aplica apenas os campos presentes na requisição
func (s *Service) UpdateCustomer(request *domain.UpdateCustomerRequest) (*domain.Customer, error) {
	customer, err := s.customerRepository.GetByID(request.ID)
	if err != nil {
		return nil, err
	}

	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	if request.Name != nil && *request.Name != "" {
		customer.Name = *request.Name
	}

	if request.Company != nil {
		customer.Company = request.Company
	}

	if request.Email != nil {
		customer.Email = request.Email
	}

	if request.Active != nil {
		customer.Active = *request.Active
	}

	if err := s.customerRepository.Update(customer); err != nil {
		logrus.Error("Erro ao atualizar customer no banco de dados", map[string]any{
			"customerID": request.ID,
			"error":      err,
		})
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer remove o customer de fato, seguindo a política HARD da entidade
func (s *Service) DeleteCustomer(customerID string) error {
	customer, err := s.customerRepository.GetByID(customerID)
	if err != nil {
		return err
	}

	if customer == nil {
		return ErrCustomerNotFound
	}

	return s.customerRepository.Delete(customerID)
}
