// Package apperr is the single failure representation crossing
// layer boundaries: a machine code, an HTTP-like status, a developer
// message and a localized user-facing message. The Operational flag
// separates expected failures (not-found, bad input) from programming
// faults, which only ever surface a generic localized message.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/techreviews/backend/pkg/i18n"
)

type Code string

const (
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeUnauthorized Code = "UNAUTHORIZED"
	CodeForbidden    Code = "FORBIDDEN"
	CodeBadRequest   Code = "BAD_REQUEST"

	CodeInternal    Code = "INTERNAL_ERROR"
	CodeDatabase    Code = "DATABASE_ERROR"
	CodeExternalAPI Code = "EXTERNAL_API_ERROR"

	CodeProductNotFound  Code = "PRODUCT_NOT_FOUND"
	CodeCategoryNotFound Code = "CATEGORY_NOT_FOUND"
	CodeInvalidLocale    Code = "INVALID_LOCALE"
)

type Error struct {
	Code        Code
	Status      int
	Message     string
	Localized   i18n.LocalizedString
	Operational bool
	cause       error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches errors by code, so callers can use errors.Is with a
// factory-produced sentinel.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithCause attaches the underlying error, preserved for logs and
// errors.Is/As chains.
func (e *Error) WithCause(err error) *Error {
	c := *e
	c.cause = err
	return &c
}

// UserMessage is the message safe to show an end user in the given
// locale. Non-operational errors always get the generic fallback.
func (e *Error) UserMessage(l i18n.Locale) string {
	if !e.Operational {
		return internalFallback.Get(l)
	}
	if !e.Localized.IsZero() {
		return e.Localized.Get(l)
	}
	return e.Message
}

var internalFallback = i18n.LocalizedString{
	He: "שגיאת שרת פנימית",
	En: "Internal server error",
}

// New builds an operational error. Reserve it for cases the
// factories below do not cover.
func New(code Code, status int, message string, localized i18n.LocalizedString) *Error {
	return &Error{
		Code:        code,
		Status:      status,
		Message:     message,
		Localized:   localized,
		Operational: true,
	}
}

func NotFound(resource string) *Error {
	return New(CodeNotFound, http.StatusNotFound,
		resource+" not found",
		i18n.LocalizedString{
			He: resource + " לא נמצא",
			En: resource + " not found",
		})
}

func InvalidInput(field string) *Error {
	return New(CodeInvalidInput, http.StatusBadRequest,
		"invalid input: "+field,
		i18n.LocalizedString{
			He: "קלט לא תקין: " + field,
			En: "Invalid input: " + field,
		})
}

func Unauthorized() *Error {
	return New(CodeUnauthorized, http.StatusUnauthorized,
		"unauthorized access",
		i18n.LocalizedString{
			He: "גישה לא מורשית",
			En: "Unauthorized access",
		})
}

func ProductNotFound(id string) *Error {
	return New(CodeProductNotFound, http.StatusNotFound,
		fmt.Sprintf("product %s not found", id),
		i18n.LocalizedString{
			He: "המוצר לא נמצא",
			En: "Product not found",
		})
}

func CategoryNotFound(id string) *Error {
	return New(CodeCategoryNotFound, http.StatusNotFound,
		fmt.Sprintf("category %s not found", id),
		i18n.LocalizedString{
			He: "הקטגוריה לא נמצאה",
			En: "Category not found",
		})
}

func InvalidLocale(raw string) *Error {
	return New(CodeInvalidLocale, http.StatusNotFound,
		fmt.Sprintf("unsupported locale %q", raw),
		i18n.LocalizedString{
			He: "שפה לא נתמכת",
			En: "Unsupported locale",
		})
}

// Internal is a programming fault: logged in full, shown only as the
// generic fallback.
func Internal(message string) *Error {
	return &Error{
		Code:        CodeInternal,
		Status:      http.StatusInternalServerError,
		Message:     message,
		Localized:   internalFallback,
		Operational: false,
	}
}

// External marks a failure of an upstream API. Still operational:
// the site degrades, the user sees an honest message.
func External(message string, status int) *Error {
	if status == 0 {
		status = http.StatusBadGateway
	}
	return New(CodeExternalAPI, status, message,
		i18n.LocalizedString{
			He: "שירות חיצוני אינו זמין כעת",
			En: "An external service is currently unavailable",
		})
}

// Timeout marks an upstream request that was cancelled after the
// configured wait.
func Timeout(message string) *Error {
	return New(CodeExternalAPI, http.StatusGatewayTimeout, message,
		i18n.LocalizedString{
			He: "תם הזמן המוקצב לבקשה",
			En: "The request timed out",
		})
}

// From coerces any failure into *Error. Unknown errors become
// non-operational internals, keeping the original as the cause.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(err.Error()).WithCause(err)
}

// IsOperational reports whether err is an expected failure that is
// safe to surface to users.
func IsOperational(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Operational
	}
	return false
}
