package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"github.com/vfg2006/seo-manager-api/internal/usecases/datasourcing"
	"github.com/vfg2006/seo-manager-api/pkg/apiErrors"
	"github.com/vfg2006/seo-manager-api/pkg/log"
)

// CreateDatasourceRequest é o corpo aceito pelo endpoint de criação de datasources
type CreateDatasourceRequest struct {
	CustomerID string              `json:"customer_id"`
	Provider   domain.ProviderType `json:"provider"`
}

func CreateDatasource(service datasourcing.DatasourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request CreateDatasourceRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithField("error", err.Error()).Warn("datasource: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"customer_id": request.CustomerID,
			"provider":    request.Provider,
		}).Info("datasource: creating datasource")

		datasource, err := service.CreateDatasource(request.CustomerID, request.Provider)
		if err != nil {
			writeDatasourceError(w, logger, err, "datasource: failed to create datasource")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(datasource); err != nil {
			logger.WithField("error", err.Error()).Error("datasource: failed to encode response")
		}
	})
}

func GetDatasource(service datasourcing.DatasourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("datasource_id", id).Info("datasource: fetching datasource by ID")

		datasource, err := service.GetDatasource(id)
		if err != nil {
			writeDatasourceError(w, logger, err, "datasource: failed to fetch datasource")
			return
		}

		if datasource == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Datasource não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(datasource); err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("datasource: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func ListDatasourcesByCustomer(service datasourcing.DatasourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		customerID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", customerID).Info("datasource: listing datasources by customer")

		datasources, err := service.ListByCustomer(customerID)
		if err != nil {
			writeDatasourceError(w, logger, err, "datasource: failed to list datasources")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(datasources); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": customerID,
				"error":       err.Error(),
			}).Error("datasource: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func AttachBinding(service datasourcing.DatasourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.AttachBindingRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Warn("datasource: invalid binding request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithField("datasource_id", id).Info("datasource: attaching binding")

		if err := service.AttachBinding(id, &request); err != nil {
			writeDatasourceError(w, logger, err, "datasource: failed to attach binding")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message":       "Vínculo criado com sucesso",
			"datasource_id": id,
		})
	})
}

func DeleteDatasource(service datasourcing.DatasourceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("datasource_id", id).Info("datasource: deleting datasource")

		if err := service.DeleteDatasource(id); err != nil {
			writeDatasourceError(w, logger, err, "datasource: failed to delete datasource")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// writeDatasourceError traduz o erro do caso de uso para a resposta HTTP padronizada
func writeDatasourceError(w http.ResponseWriter, logger log.Logger, err error, message string) {
	logger.WithField("error", err.Error()).Error(message)

	var dsErr *datasourcing.DatasourceError
	if errors.As(err, &dsErr) {
		apiErrors.WriteError(w, dsErr.Code, dsErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}
