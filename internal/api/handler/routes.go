package handler

import (
	"net/http"

	"github.com/vfg2006/seo-manager-api/internal/api/handler/router"
	"github.com/vfg2006/seo-manager-api/internal/usecases/authenticating"
	"github.com/vfg2006/seo-manager-api/internal/usecases/customer"
	"github.com/vfg2006/seo-manager-api/internal/usecases/dashboarding"
	"github.com/vfg2006/seo-manager-api/internal/usecases/datasourcing"
	"github.com/vfg2006/seo-manager-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Dashboards(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasources/:id/dashboard/mangools",
			Method:      http.MethodGet,
			Handler:     GetMangoolsDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasources/:id/dashboard/google-analytics",
			Method:      http.MethodGet,
			Handler:     GetGADashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasources/:id/dashboard/semrush",
			Method:      http.MethodGet,
			Handler:     GetSemrushDashboard(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Datasources(service datasourcing.DatasourceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasources",
			Method:      http.MethodPost,
			Handler:     CreateDatasource(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/datasources/:id",
			Method:      http.MethodGet,
			Handler:     GetDatasource(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasources/:id/binding",
			Method:      http.MethodPut,
			Handler:     AttachBinding(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/datasources/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDatasource(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Customers(service customer.CustomerService, datasourceService datasourcing.DatasourceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/customers",
			Method:      http.MethodGet,
			Handler:     ListCustomers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers",
			Method:      http.MethodPost,
			Handler:     CreateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodGet,
			Handler:     GetCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/customers/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteCustomer(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/customers/:id/datasources",
			Method:      http.MethodGet,
			Handler:     ListDatasourcesByCustomer(datasourceService),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
