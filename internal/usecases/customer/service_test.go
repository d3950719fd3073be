package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/seo-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestService_CreateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	customerRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(customer *domain.Customer) error {
			assert.NotEmpty(t, customer.ID)
			assert.Equal(t, "Ótica Exemplo", customer.Name)
			assert.True(t, customer.Active)
			return nil
		})

	customer, err := service.CreateCustomer(&domain.Customer{Name: "Ótica Exemplo"})

	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.NotEmpty(t, customer.ID)
}

func TestService_CreateCustomer_NomeObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	tests := []struct {
		name     string
		customer *domain.Customer
	}{
		{name: "Customer nulo", customer: nil},
		{name: "Nome vazio", customer: &domain.Customer{Name: ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer, err := service.CreateCustomer(tt.customer)

			assert.Nil(t, customer)
			assert.ErrorIs(t, err, ErrCustomerNameRequired)
		})
	}
}

func TestService_UpdateCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	existing := &domain.Customer{
		ID:     "cust-1",
		Name:   "Ótica Exemplo",
		Email:  stringPtr("contato@exemplo.com.br"),
		Active: true,
	}

	customerRepo.EXPECT().GetByID("cust-1").Return(existing, nil)
	customerRepo.EXPECT().
		Update(gomock.Any()).
		DoAndReturn(func(customer *domain.Customer) error {
			// Apenas os campos presentes na requisição são alterados
			assert.Equal(t, "Ótica Nova", customer.Name)
			assert.Equal(t, stringPtr("contato@exemplo.com.br"), customer.Email)
			assert.False(t, customer.Active)
			return nil
		})

	customer, err := service.UpdateCustomer(&domain.UpdateCustomerRequest{
		ID:     "cust-1",
		Name:   stringPtr("Ótica Nova"),
		Active: boolPtr(false),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ótica Nova", customer.Name)
}

func TestService_UpdateCustomer_Inexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	customerRepo.EXPECT().GetByID("cust-x").Return(nil, nil)

	customer, err := service.UpdateCustomer(&domain.UpdateCustomerRequest{ID: "cust-x"})

	assert.Nil(t, customer)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_DeleteCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	customerRepo.EXPECT().GetByID("cust-1").Return(&domain.Customer{ID: "cust-1"}, nil)

	// Customers usam hard delete: a linha é removida de fato
	customerRepo.EXPECT().Delete("cust-1").Return(nil)

	err := service.DeleteCustomer("cust-1")

	assert.NoError(t, err)
}

func TestService_DeleteCustomer_Inexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	customerRepo.EXPECT().GetByID("cust-x").Return(nil, nil)

	err := service.DeleteCustomer("cust-x")

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_GetCustomer_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	customerRepo := mocks.NewMockCustomerRepository(ctrl)
	service := NewService(customerRepo)

	customerRepo.EXPECT().GetByID("cust-x").Return(nil, nil)

	customer, err := service.GetCustomer("cust-x")

	assert.NoError(t, err)
	assert.Nil(t, customer)
}
