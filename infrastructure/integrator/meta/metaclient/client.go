package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/orders-report-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const defaultRequestTimeout = 15 * time.Second

type Client interface {
	GetAccountSpendInsights(ctx context.Context, accountID string, accessToken string, day time.Time) ([]metadomain.SpendInsight, error)
}

type MetaClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Meta.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return &MetaClient{
		baseURL:    cfg.Meta.URL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// get executa um GET e devolve o corpo quando o status é 200
func (c *MetaClient) get(ctx context.Context, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return HandleResponse(resp)
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}

// HandleResponse manipula a resposta HTTP e verifica erros de token expirado
func HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	apiErr := &metadomain.APIError{StatusCode: resp.StatusCode, Body: string(body)}

	errorResp, parseErr := ParseErrorResponse(body)
	if parseErr == nil {
		apiErr.Details = errorResp.Error
	}

	if (parseErr == nil && errorResp.IsTokenExpired()) || metadomain.ContainsTokenExpirationMessage(string(body)) {
		logrus.Warnf("Token expirado detectado pela API Meta. Código: %d, Subcódigo: %d",
			apiErr.Details.Code, apiErr.Details.ErrorSubcode)
		return nil, fmt.Errorf("%w: %w", metadomain.ErrTokenExpired, apiErr)
	}

	return nil, apiErr
}
