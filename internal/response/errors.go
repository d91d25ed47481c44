package response

import (
	"errors"
	"net/http"
)

// BusinessError 业务错误
// Status 决定 HTTP 状态码；Msg 是对外可见的消息；Err 只用于服务端日志
type BusinessError struct {
	Code   ErrorCode
	Status int
	Msg    string
	Err    error
}

func (e *BusinessError) Error() string {
	return e.Msg
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ErrorCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithStatus(status int) ErrorOption {
	return func(be *BusinessError) {
		be.Status = status
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code:   StoreUnavailable,
		Status: http.StatusInternalServerError,
		Msg:    "business error",
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// NewValidationError 输入错误，返回 400
func NewValidationError(code ErrorCode, msg string) *BusinessError {
	return NewBusinessError(
		WithErrorCode(code),
		WithStatus(http.StatusBadRequest),
		WithErrorMessage(msg),
	)
}

// NewNotFoundError 资源不存在，返回 404
func NewNotFoundError(msg string) *BusinessError {
	return NewBusinessError(
		WithErrorCode(NotFound),
		WithStatus(http.StatusNotFound),
		WithErrorMessage(msg),
	)
}

// NewStoreError 存储失败，对外隐藏细节，原始错误由调用方记录日志
func NewStoreError(msg string, err error) *BusinessError {
	return NewBusinessError(
		WithErrorCode(StoreUnavailable),
		WithStatus(http.StatusInternalServerError),
		WithErrorMessage(msg),
		WithError(err),
	)
}

// AsBusinessError 从 error 链中取出业务错误
func AsBusinessError(err error) (*BusinessError, bool) {
	var be *BusinessError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
