package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// 安定したエラーコード（機械可読）
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeNotFound              = "NOT_FOUND"
	CodeProductNotFound       = "PRODUCT_NOT_FOUND"
	CodeInactiveClient        = "INACTIVE_CLIENT"
	CodeInsufficientStock     = "INSUFFICIENT_STOCK"
	CodeBusinessRuleViolation = "BUSINESS_RULE_VIOLATION"
	CodeInternalError         = "INTERNAL_ERROR"
)

type AppError struct {
	Status  int
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAppError(status int, code string, message string) error {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	ok := errors.As(err, &ae)
	return ae, ok
}

func errInvalidInput(message string) error {
	return NewAppError(http.StatusBadRequest, CodeInvalidInput, message)
}

func errNotFound(message string) error {
	return NewAppError(http.StatusNotFound, CodeNotFound, message)
}

func errProductNotFound() error {
	return NewAppError(http.StatusNotFound, CodeProductNotFound, "product not found or inactive")
}

func errInactiveClient() error {
	return NewAppError(http.StatusBadRequest, CodeInactiveClient, "client inactive or not found")
}

func errInsufficientStock(message string) error {
	return NewAppError(http.StatusBadRequest, CodeInsufficientStock, message)
}

func errBusinessRule(message string) error {
	return NewAppError(http.StatusBadRequest, CodeBusinessRuleViolation, message)
}

// 接続・プール・予期しないストア障害。内部詳細は外に出さない
func errDB() error {
	return NewAppError(http.StatusInternalServerError, CodeInternalError, "db error")
}
