package ordering

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/vfg2006/orders-report-api/infrastructure/repository"
	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/internal/parsing"
	"github.com/vfg2006/orders-report-api/pkg/apiErrors"
	"github.com/vfg2006/orders-report-api/pkg/log"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

type OrderingService interface {
	SaveOrders(ctx context.Context, request *domain.SaveOrdersRequest) (*domain.SaveOrdersResponse, error)
	Preview(ctx context.Context, text string) (*domain.ParsePreviewResponse, error)
	ClearData(ctx context.Context) (*domain.ClearDataResponse, error)
}

type Service struct {
	rollupRepository repository.OrderRollupRepository
	parser           *parsing.Parser
	newBatchID       func() (string, error)
}

func NewService(rollupRepository repository.OrderRollupRepository, parser *parsing.Parser) OrderingService {
	return &Service{
		rollupRepository: rollupRepository,
		parser:           parser,
		newBatchID:       utils.GenerateBatchID,
	}
}

func (s *Service) SaveOrders(ctx context.Context, request *domain.SaveOrdersRequest) (*domain.SaveOrdersResponse, error) {
	logger := log.ForContext(ctx)

	if request == nil || strings.TrimSpace(request.Team) == "" {
		return nil, NewOrderingError(ErrMissingTeam, apiErrors.ErrMissingRequiredData, "الرجاء اختيار الفريق وإدخال نصوص الأوردرات.")
	}

	team, err := domain.ParseTeam(request.Team)
	if err != nil {
		return nil, NewOrderingError(ErrUnknownTeam, apiErrors.ErrUnknownTeam, fmt.Sprintf("الفريق غير معروف: %s", request.Team))
	}

	if strings.TrimSpace(request.Orders) == "" {
		return nil, NewOrderingError(ErrEmptyOrders, apiErrors.ErrMissingRequiredData, "الرجاء اختيار الفريق وإدخال نصوص الأوردرات.")
	}

	outcomes := s.parser.Parse(request.Orders)
	rollup := Aggregate(team, domain.AcceptedOrders(outcomes))
	rejections := domain.RejectionsByReason(outcomes)

	response := &domain.SaveOrdersResponse{
		Team:        team,
		OrdersSaved: rollup.OrderCount,
		TotalSales:  rollup.SalesTotal,
		Rejected:    len(outcomes) - rollup.OrderCount,
		Rejections:  rejections,
		Details:     outcomes,
	}

	if rollup.OrderCount == 0 {
		logger.WithFields(log.Fields{
			"team":            team,
			"orders_rejected": response.Rejected,
		}).Warn("Nenhum pedido válido encontrado no texto")
		response.Message = "لم يتم العثور على أوردرات صالحة."
		return response, nil
	}

	batchID, err := s.newBatchID()
	if err != nil {
		return nil, NewOrderingError(ErrGenerateID, apiErrors.ErrInternalServer, "Falha ao gerar identificador do lote")
	}
	rollup.BatchID = batchID

	if err := s.rollupRepository.Insert(ctx, &rollup); err != nil {
		logger.WithError(err).WithField("team", team).Error("Erro ao salvar resumo do lote")
		return nil, NewOrderingError(
			errors.Wrap(ErrPersistRollup, err.Error()),
			apiErrors.ErrDatabaseOperation,
			fmt.Sprintf("حدث خطأ: %s", err.Error()),
		)
	}

	response.BatchID = batchID
	response.Message = fmt.Sprintf("تم حفظ %d أوردرات بنجاح!", rollup.OrderCount)

	logger.WithFields(log.Fields{
		"team":            team,
		"batch_id":        batchID,
		"orders_saved":    rollup.OrderCount,
		"orders_rejected": response.Rejected,
	}).Info("Lote de pedidos salvo")

	for reason, count := range rejections {
		logger.Debugf("Blocos rejeitados por %s: %d", reason, count)
	}

	return response, nil
}

func (s *Service) Preview(ctx context.Context, text string) (*domain.ParsePreviewResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, NewOrderingError(ErrEmptyOrders, apiErrors.ErrMissingRequiredData, "الرجاء إدخال نصوص الأوردرات.")
	}

	outcomes := s.parser.Parse(text)
	orders := domain.AcceptedOrders(outcomes)
	rollup := Aggregate("", orders)

	log.ForContext(ctx).Debugf("Pré-visualização: %d blocos, %d aceitos", len(outcomes), rollup.OrderCount)

	return &domain.ParsePreviewResponse{
		Blocks:     len(outcomes),
		Accepted:   rollup.OrderCount,
		TotalSales: rollup.SalesTotal,
		Rejections: domain.RejectionsByReason(outcomes),
		Details:    outcomes,
	}, nil
}

func (s *Service) ClearData(ctx context.Context) (*domain.ClearDataResponse, error) {
	deleted, err := s.rollupRepository.DeleteAll(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Erro ao apagar resumos de lote")
		return nil, NewOrderingError(
			errors.Wrap(ErrClearRollups, err.Error()),
			apiErrors.ErrDatabaseOperation,
			fmt.Sprintf("حدث خطأ أثناء مسح البيانات: %s", err.Error()),
		)
	}

	log.ForContext(ctx).WithField("batch_deleted", deleted).Info("Resumos de lote apagados")

	return &domain.ClearDataResponse{
		Message: "تم مسح جميع البيانات بنجاح!",
		Deleted: deleted,
	}, nil
}
