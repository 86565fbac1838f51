package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an AppError independently of the HTTP status it maps to.
type Kind string

const (
	KindValidation          Kind = "validation"
	KindDuplicateEmail      Kind = "duplicate_email"
	KindInvalidCredentials  Kind = "invalid_credentials"
	KindUnsupportedFileType Kind = "unsupported_file_type"
	KindFileTooLarge        Kind = "file_too_large"
	KindNotFound            Kind = "not_found"
	KindStorage             Kind = "storage"
)

type AppError struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	// Detail is an optional diagnostic string for the client.
	Detail string `json:"error,omitempty"`
	Err    error  `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCode returns a copy of e reported with a different HTTP status.
func (e *AppError) WithCode(code int) *AppError {
	cp := *e
	cp.Code = code
	return &cp
}

// WithDetail returns a copy of e carrying a diagnostic detail.
func (e *AppError) WithDetail(detail string) *AppError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// Sensitive reports whether Detail came from an internal failure rather than
// from the client's own input.
func (e *AppError) Sensitive() bool {
	return e.Kind == KindStorage
}

func New(code int, kind Kind, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func Validation(message string) *AppError {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

func DuplicateEmail(message string) *AppError {
	return New(http.StatusBadRequest, KindDuplicateEmail, message, nil)
}

func InvalidCredentials(message string) *AppError {
	return New(http.StatusUnauthorized, KindInvalidCredentials, message, nil)
}

func UnsupportedFileType(message, detail string) *AppError {
	return New(http.StatusBadRequest, KindUnsupportedFileType, message, nil).WithDetail(detail)
}

func FileTooLarge(message, detail string) *AppError {
	return New(http.StatusBadRequest, KindFileTooLarge, message, nil).WithDetail(detail)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// Storage wraps a persistence failure. The driver error becomes the detail.
func Storage(message string, err error) *AppError {
	appErr := New(http.StatusInternalServerError, KindStorage, message, err)
	if err != nil {
		appErr.Detail = err.Error()
	}
	return appErr
}

// Is reports whether err is an AppError of the given kind.
func Is(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}

// As extracts the AppError from err's chain.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
