package spending

import (
	"context"
	"time"

	"github.com/vfg2006/orders-report-api/internal/domain"
)

// Provider fornece o gasto de anúncios por time. Nunca falha: times cuja
// consulta falhou aparecem com zero (ou valor salvo) e listados em Failed.
type Provider interface {
	GetTeamSpend(ctx context.Context, day time.Time) domain.SpendSnapshot
}
