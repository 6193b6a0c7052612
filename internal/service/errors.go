package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Сервисные ошибки аутентификации.
var (
	ErrLoginTaken         = errors.New("login already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// ValidationError — пофилдовые ошибки валидации входа. Не пробрасывается
// наружу как 500: хендлер разворачивает её в {success:false, fieldErrors}.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError создаёт пустой набор ошибок.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: map[string]string{}}
}

// Add добавляет ошибку поля.
func (e *ValidationError) Add(field, msg string) {
	e.Fields[field] = msg
}

// OrNil возвращает nil, если ошибок не накопилось.
func (e *ValidationError) OrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsValidation распаковывает ValidationError из цепочки ошибок.
func AsValidation(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
