package handler

import (
	"errors"
	"net/http"

	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-report-api/pkg/apiErrors"
	"github.com/vfg2006/orders-report-api/pkg/log"
)

func SaveOrders(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.SaveOrdersRequest
		if !decodeBody(w, r, &request) {
			return
		}

		response, err := service.SaveOrders(r.Context(), &request)
		if err != nil {
			writeOrderingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func ParsePreview(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request domain.ParsePreviewRequest
		if !decodeBody(w, r, &request) {
			return
		}

		response, err := service.Preview(r.Context(), request.Orders)
		if err != nil {
			writeOrderingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func ClearData(service ordering.OrderingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		response, err := service.ClearData(r.Context())
		if err != nil {
			writeOrderingError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, response)
	})
}

func writeOrderingError(w http.ResponseWriter, r *http.Request, err error) {
	log.ForContext(r.Context()).WithError(err).Warn("Erro ao processar pedidos")

	var orderingErr *ordering.OrderingError
	if errors.As(err, &orderingErr) {
		apiErrors.WriteError(w, orderingErr.Code, orderingErr.Details, nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "حدث خطأ: "+err.Error(), nil)
}
