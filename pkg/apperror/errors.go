package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
// Details carries the structured error payload shown to the caller: a
// string, a slice of messages, or a field map, depending on the error kind.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Details    any    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// WithDetails attaches a structured error payload.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Input validation ----

// InvalidFields signals malformed or missing input (400).
func InvalidFields(details any) *AppError {
	return New("INVALID_FIELDS", "Campos inválidos", http.StatusBadRequest).WithDetails(details)
}

// ---- Tenant authentication ----

// Unauthorized signals a tenant credential or status failure (401).
// The message is deliberately generic so callers cannot probe which
// check failed.
func Unauthorized() *AppError {
	return New("UNAUTHORIZED", "Credenciais inválidas", http.StatusUnauthorized)
}

// ---- Domain state ----

// BusinessRule signals valid input against invalid domain state (422).
func BusinessRule(details any) *AppError {
	return New("BUSINESS_RULE", "Regra de negócio violada", http.StatusUnprocessableEntity).WithDetails(details)
}

// NotFound signals a missing resource (404).
func NotFound(message string) *AppError {
	return New("NOT_FOUND", message, http.StatusNotFound)
}

// AlreadyProcessed signals an idempotency hit (409). The cached response
// rides in Details.
func AlreadyProcessed(cached any) *AppError {
	return New("ALREADY_PROCESSED", "Reenvio já processado", http.StatusConflict).WithDetails(cached)
}

// NotImplemented signals an unsupported notification kind (501).
func NotImplemented(kind string) *AppError {
	return New("NOT_IMPLEMENTED", fmt.Sprintf("Tipo de notificação não suportado: %s", kind), http.StatusNotImplemented)
}

// RateLimitExceeded signals too many requests in the current window (429).
func RateLimitExceeded() *AppError {
	return New("RATE_LIMIT_EXCEEDED", "Limite de requisições excedido", http.StatusTooManyRequests)
}

// ---- Dispatch & infrastructure ----

// DispatchError signals a downstream gateway failure (500).
func DispatchError(err error) *AppError {
	return Wrap("DISPATCH_ERROR", "Falha no envio da notificação", http.StatusInternalServerError, err)
}

// InternalError wraps an unexpected error (500).
func InternalError(err error) *AppError {
	return Wrap("INTERNAL_ERROR", "Erro interno do servidor", http.StatusInternalServerError, err)
}
