package metadomain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTokenExpired = errors.New("meta access token expired or invalid")
	ErrNoToken      = errors.New("no access token configured for business")
	ErrNoAdAccount  = errors.New("no ad account configured for team")
)

// ErrorResponse representa a estrutura de erro da API do Meta
type ErrorResponse struct {
	Error ErrorDetails `json:"error"`
}

// ErrorDetails contém os detalhes de erro da API do Meta
type ErrorDetails struct {
	Message      string      `json:"message"`
	Type         string      `json:"type"`
	Code         int         `json:"code"`
	ErrorSubcode int         `json:"error_subcode,omitempty"`
	FBTraceID    string      `json:"fbtrace_id"`
	ErrorData    interface{} `json:"error_data,omitempty"`
}

// IsTokenExpired verifica se o erro é de token expirado
func (e *ErrorResponse) IsTokenExpired() bool {
	// O código 190 representa "token expirado" nas respostas da API do Meta
	// Possíveis subcódigos relacionados a problemas de token: 460, 463, 467
	return e.Error.Code == 190 ||
		(e.Error.Type == "OAuthException" && (e.Error.ErrorSubcode == 460 || e.Error.ErrorSubcode == 463 || e.Error.ErrorSubcode == 467))
}

// ContainsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func ContainsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}

// APIError é uma resposta de erro da Graph API
type APIError struct {
	StatusCode int
	Details    ErrorDetails
	Body       string
}

func (e *APIError) Error() string {
	if e.Details.Message != "" {
		return fmt.Sprintf("meta api: status %d, code %d: %s", e.StatusCode, e.Details.Code, e.Details.Message)
	}
	return fmt.Sprintf("meta api: status %d: %s", e.StatusCode, e.Body)
}
