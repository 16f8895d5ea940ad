package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/orders-report-api/internal/api/handler/router"
	"github.com/vfg2006/orders-report-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-report-api/internal/usecases/reporting"
	"github.com/vfg2006/orders-report-api/pkg/middleware"
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

func Orders(service ordering.OrderingService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/save_orders",
			Method:  http.MethodPost,
			Handler: SaveOrders(service),
		},
		{
			Path:    "/api/parse_preview",
			Method:  http.MethodPost,
			Handler: ParsePreview(service),
		},
		{
			Path:    "/api/clear_data",
			Method:  http.MethodPost,
			Handler: ClearData(service),
		},
	}
}

// Reports consulta o gasto no Meta, por isso as rotas têm limite de tempo
func Reports(service reporting.ReportService, timeout time.Duration) []router.Route {
	return []router.Route{
		{
			Path:        "/api/generate_report",
			Method:      http.MethodGet,
			Handler:     GenerateReport(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Timeout(timeout)},
		},
		{
			Path:        "/v1/report/summary",
			Method:      http.MethodGet,
			Handler:     ReportSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.Timeout(timeout)},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
