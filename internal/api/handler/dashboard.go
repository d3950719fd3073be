package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/seo-manager-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seo-manager-api/pkg/apiErrors"
	"github.com/vfg2006/seo-manager-api/pkg/log"
)

func GetMangoolsDashboard(service dashboarding.MangoolsDashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("datasource_id", id).Info("dashboard: fetching mangools dashboard")

		dashboard, err := service.FetchMangoolsDashboard(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("dashboard: failed to build mangools dashboard")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Sem vínculo com o provedor: não existe dashboard para este datasource
		if dashboard == nil {
			logger.WithField("datasource_id", id).Info("dashboard: no mangools binding for datasource")

			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Datasource sem tracking do Mangools vinculado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetGADashboard(service dashboarding.GADashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("datasource_id", id).Info("dashboard: fetching google analytics dashboard")

		dashboard, err := service.FetchGADashboard(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("dashboard: failed to build google analytics dashboard")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if dashboard == nil {
			logger.WithField("datasource_id", id).Info("dashboard: no google analytics binding for datasource")

			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Datasource sem propriedade do Google Analytics vinculada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetSemrushDashboard(service dashboarding.SemrushDashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("datasource_id", id).Info("dashboard: fetching semrush dashboard")

		dashboard, err := service.FetchSemrushDashboard(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("dashboard: failed to build semrush dashboard")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if dashboard == nil {
			logger.WithField("datasource_id", id).Info("dashboard: no semrush binding for datasource")

			apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Datasource sem domínio do SEMrush vinculado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(dashboard); err != nil {
			logger.WithFields(log.Fields{
				"datasource_id": id,
				"error":         err.Error(),
			}).Error("dashboard: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
