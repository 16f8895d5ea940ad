package metaclient

import (
	"fmt"

	metadomain "github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/domain"
)

// TokenManager resolve o token de acesso de cada time a partir do business
// manager ao qual a conta de anúncios pertence. Os mapas são copiados e
// não mudam depois da criação.
type TokenManager struct {
	tokens       map[string]string // business -> token
	teamBusiness map[string]string // time -> business
}

func NewTokenManager(tokens map[string]string, teamBusiness map[string]string) *TokenManager {
	tm := &TokenManager{
		tokens:       make(map[string]string, len(tokens)),
		teamBusiness: make(map[string]string, len(teamBusiness)),
	}
	for k, v := range tokens {
		tm.tokens[k] = v
	}
	for k, v := range teamBusiness {
		tm.teamBusiness[k] = v
	}
	return tm
}

// TokenFor devolve o token usado para consultar as contas do time
func (tm *TokenManager) TokenFor(team string) (string, error) {
	business, ok := tm.teamBusiness[team]
	if !ok {
		return "", fmt.Errorf("%w: time %s sem business manager", metadomain.ErrNoToken, team)
	}

	token := tm.tokens[business]
	if token == "" {
		return "", fmt.Errorf("%w: %s", metadomain.ErrNoToken, business)
	}

	return token, nil
}
