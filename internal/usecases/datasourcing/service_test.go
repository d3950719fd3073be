package datasourcing

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

func newTestService(ctrl *gomock.Controller) (DatasourceService, *mocks.MockDatasourceRepository, *mocks.MockBindingRepository, *mocks.MockCustomerRepository) {
	datasourceRepo := mocks.NewMockDatasourceRepository(ctrl)
	bindingRepo := mocks.NewMockBindingRepository(ctrl)
	customerRepo := mocks.NewMockCustomerRepository(ctrl)

	return NewService(datasourceRepo, bindingRepo, customerRepo), datasourceRepo, bindingRepo, customerRepo
}

func TestService_CreateDatasource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, _, customerRepo := newTestService(ctrl)

	customerRepo.EXPECT().
		GetByID("cust-1").
		Return(&domain.Customer{ID: "cust-1", Name: "Ótica Exemplo"}, nil)

	datasourceRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(ds *domain.Datasource) error {
			assert.NotEmpty(t, ds.ID)
			assert.Equal(t, "cust-1", ds.CustomerID)
			assert.Equal(t, domain.ProviderMangools, ds.Provider)
			assert.True(t, ds.Active)
			return nil
		})

	datasource, err := service.CreateDatasource("cust-1", domain.ProviderMangools)

	require.NoError(t, err)
	require.NotNil(t, datasource)
	assert.True(t, datasource.Active)
}

func TestService_CreateDatasource_ProviderInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestService(ctrl)

	datasource, err := service.CreateDatasource("cust-1", domain.ProviderType("facebook"))

	assert.Nil(t, datasource)
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestService_CreateDatasource_CustomerInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, customerRepo := newTestService(ctrl)

	customerRepo.EXPECT().GetByID("cust-x").Return(nil, nil)

	datasource, err := service.CreateDatasource("cust-x", domain.ProviderSemrush)

	assert.Nil(t, datasource)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestService_AttachBinding_Mangools(t *testing.T) {
	datasource := &domain.Datasource{
		ID:         "ds-001",
		CustomerID: "cust-1",
		Provider:   domain.ProviderMangools,
		Active:     true,
	}

	tests := []struct {
		name        string
		request     *domain.AttachBindingRequest
		setup       func(datasourceRepo *mocks.MockDatasourceRepository, bindingRepo *mocks.MockBindingRepository)
		expectedErr error
	}{
		{
			name:    "Attach de tracking livre deve salvar o vínculo",
			request: &domain.AttachBindingRequest{TrackingID: stringPtr("trk-123"), Domain: stringPtr("exemplo.com.br")},
			setup: func(datasourceRepo *mocks.MockDatasourceRepository, bindingRepo *mocks.MockBindingRepository) {
				datasourceRepo.EXPECT().GetByID("ds-001").Return(datasource, nil)
				bindingRepo.EXPECT().ListAttachedMangoolsTrackings().Return(map[string]struct{}{}, nil)
				bindingRepo.EXPECT().
					SaveMangoolsBinding(gomock.Any()).
					DoAndReturn(func(binding *domain.MangoolsTrackingBinding) error {
						assert.Equal(t, "ds-001", binding.DatasourceID)
						assert.Equal(t, "trk-123", binding.TrackingID)
						assert.Equal(t, "exemplo.com.br", binding.Domain)
						assert.True(t, binding.Active)
						return nil
					})
			},
		},
		{
			name:    "Tracking vinculado a outro datasource deve ser rejeitado",
			request: &domain.AttachBindingRequest{TrackingID: stringPtr("trk-123")},
			setup: func(datasourceRepo *mocks.MockDatasourceRepository, bindingRepo *mocks.MockBindingRepository) {
				datasourceRepo.EXPECT().GetByID("ds-001").Return(datasource, nil)
				bindingRepo.EXPECT().
					ListAttachedMangoolsTrackings().
					Return(map[string]struct{}{"trk-123": {}}, nil)

				// O vínculo atual do ds-001 aponta para outro tracking
				bindingRepo.EXPECT().
					GetMangoolsBinding("ds-001").
					Return(&domain.MangoolsTrackingBinding{DatasourceID: "ds-001", TrackingID: "trk-999"}, nil)
			},
			expectedErr: ErrResourceAlreadyBound,
		},
		{
			name:    "Re-attach do mesmo tracking ao mesmo datasource é substituição",
			request: &domain.AttachBindingRequest{TrackingID: stringPtr("trk-123")},
			setup: func(datasourceRepo *mocks.MockDatasourceRepository, bindingRepo *mocks.MockBindingRepository) {
				datasourceRepo.EXPECT().GetByID("ds-001").Return(datasource, nil)
				bindingRepo.EXPECT().
					ListAttachedMangoolsTrackings().
					Return(map[string]struct{}{"trk-123": {}}, nil)
				bindingRepo.EXPECT().
					GetMangoolsBinding("ds-001").
					Return(&domain.MangoolsTrackingBinding{DatasourceID: "ds-001", TrackingID: "trk-123"}, nil)
				bindingRepo.EXPECT().SaveMangoolsBinding(gomock.Any()).Return(nil)
			},
		},
		{
			name:    "tracking_id ausente deve ser rejeitado",
			request: &domain.AttachBindingRequest{},
			setup: func(datasourceRepo *mocks.MockDatasourceRepository, bindingRepo *mocks.MockBindingRepository) {
				datasourceRepo.EXPECT().GetByID("ds-001").Return(datasource, nil)
			},
			expectedErr: ErrBindingRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service, datasourceRepo, bindingRepo, _ := newTestService(ctrl)
			tt.setup(datasourceRepo, bindingRepo)

			err := service.AttachBinding("ds-001", tt.request)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestService_AttachBinding_GA(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, bindingRepo, _ := newTestService(ctrl)

	datasource := &domain.Datasource{
		ID:       "ds-002",
		Provider: domain.ProviderGoogleAnalytics,
		Active:   true,
	}

	timezone := "America/Sao_Paulo"
	currency := "BRL"

	datasourceRepo.EXPECT().GetByID("ds-002").Return(datasource, nil)
	bindingRepo.EXPECT().ListAttachedGAProperties().Return(map[string]struct{}{}, nil)
	bindingRepo.EXPECT().
		SaveGABinding(gomock.Any()).
		DoAndReturn(func(binding *domain.GAPropertyBinding) error {
			assert.Equal(t, "prop-9", binding.PropertyID)
			assert.Equal(t, "Loja Exemplo", binding.PropertyName)
			assert.Equal(t, &timezone, binding.Timezone)
			assert.Equal(t, &currency, binding.Currency)
			return nil
		})

	err := service.AttachBinding("ds-002", &domain.AttachBindingRequest{
		PropertyID:   stringPtr("prop-9"),
		PropertyName: stringPtr("Loja Exemplo"),
		Timezone:     &timezone,
		Currency:     &currency,
	})

	assert.NoError(t, err)
}

func TestService_AttachBinding_Semrush_DominioObrigatorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, _, _ := newTestService(ctrl)

	datasourceRepo.EXPECT().GetByID("ds-003").Return(&domain.Datasource{
		ID:       "ds-003",
		Provider: domain.ProviderSemrush,
	}, nil)

	err := service.AttachBinding("ds-003", &domain.AttachBindingRequest{Domain: stringPtr("")})

	assert.ErrorIs(t, err, ErrBindingRequired)
}

func TestService_AttachBinding_DatasourceInexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, _, _ := newTestService(ctrl)

	datasourceRepo.EXPECT().GetByID("ds-x").Return(nil, nil)

	err := service.AttachBinding("ds-x", &domain.AttachBindingRequest{TrackingID: stringPtr("trk-123")})

	assert.ErrorIs(t, err, ErrDatasourceNotFound)
}

func TestService_AttachBinding_RequestAusente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _ := newTestService(ctrl)

	err := service.AttachBinding("ds-001", nil)

	assert.ErrorIs(t, err, ErrBindingRequired)
}

func TestService_DeleteDatasource(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, bindingRepo, _ := newTestService(ctrl)

	datasourceRepo.EXPECT().GetByID("ds-001").Return(&domain.Datasource{
		ID:     "ds-001",
		Active: true,
	}, nil)

	// Datasources usam soft delete: desativação em vez de remoção, e os vínculos
	// são desativados junto para liberar o recurso
	datasourceRepo.EXPECT().Deactivate("ds-001").Return(nil)
	bindingRepo.EXPECT().DeactivateByDatasource("ds-001").Return(nil)

	err := service.DeleteDatasource("ds-001")

	assert.NoError(t, err)
}

func TestService_DeleteDatasource_Inexistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, _, _ := newTestService(ctrl)

	datasourceRepo.EXPECT().GetByID("ds-x").Return(nil, nil)

	err := service.DeleteDatasource("ds-x")

	assert.ErrorIs(t, err, ErrDatasourceNotFound)
}

func TestService_GetDatasource_NaoEncontrado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, datasourceRepo, _, _ := newTestService(ctrl)

	datasourceRepo.EXPECT().GetByID("ds-x").Return(nil, nil)

	datasource, err := service.GetDatasource("ds-x")

	assert.NoError(t, err)
	assert.Nil(t, datasource)
}
