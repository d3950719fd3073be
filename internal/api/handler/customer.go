package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seo-manager-api/internal/domain"
	"github.com/vfg2006/seo-manager-api/internal/usecases/customer"
	"github.com/vfg2006/seo-manager-api/pkg/apiErrors"
	"github.com/vfg2006/seo-manager-api/pkg/log"
)

func CreateCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request domain.Customer
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithField("error", err.Error()).Warn("customer: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		logger.WithField("name", request.Name).Info("customer: creating customer")

		created, err := service.CreateCustomer(&request)
		if err != nil {
			if errors.Is(err, customer.ErrCustomerNameRequired) {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do customer é obrigatório", nil)
				return
			}

			logger.WithField("error", err.Error()).Error("customer: failed to create customer")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithField("error", err.Error()).Error("customer: failed to encode response")
		}
	})
}

func GetCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", id).Info("customer: fetching customer by ID")

		found, err := service.GetCustomer(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customer: failed to fetch customer")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if found == nil {
			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Customer não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(found); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customer: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func ListCustomers(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		logger.Info("customer: listing customers")

		customers, err := service.ListCustomers()
		if err != nil {
			logger.WithField("error", err.Error()).Error("customer: failed to list customers")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(customers); err != nil {
			logger.WithField("error", err.Error()).Error("customer: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func UpdateCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var request domain.UpdateCustomerRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Warn("customer: invalid request body")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		request.ID = id
		logger.WithField("customer_id", id).Info("customer: updating customer")

		updated, err := service.UpdateCustomer(&request)
		if err != nil {
			if errors.Is(err, customer.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Customer não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customer: failed to update customer")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customer: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func DeleteCustomer(service customer.CustomerService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("customer_id", id).Info("customer: deleting customer")

		if err := service.DeleteCustomer(id); err != nil {
			if errors.Is(err, customer.ErrCustomerNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Customer não encontrado", nil)
				return
			}

			logger.WithFields(log.Fields{
				"customer_id": id,
				"error":       err.Error(),
			}).Error("customer: failed to delete customer")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
