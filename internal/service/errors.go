package service

import (
	"errors"
	"fmt"
)

// Ошибки валидации: вина вызывающей стороны, повторять запрос бессмысленно.
var (
	ErrEmptyRequesterID   = errors.New("requester id is required")
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidAcceptance  = errors.New("acceptance requires a positive estimated response time")
	ErrInvalidID          = errors.New("request id and hospital id must be positive")
	ErrPhotoTooLarge      = errors.New("injury photo exceeds the size limit")
	ErrInvalidPhotoData   = errors.New("injury photo is not valid base64")
)

// Ошибки конфликта: состояние уже изменилось, вызывающая сторона должна перечитать его.
var (
	// ErrAlreadyProcessed - запрос уже принят другой больницей или закрыт
	ErrAlreadyProcessed = errors.New("request already processed")
)

// Ошибки конфигурации: должен исправлять оператор, а не ретраи.
var (
	ErrNoHospitalsConfigured = errors.New("no hospitals configured for dispatch")
)

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrHospitalNotFound = errors.New("hospital not found")
)

// ExistingActiveRequestError возвращается при попытке создать второй
// открытый запрос; несет id уже существующего.
type ExistingActiveRequestError struct {
	RequestID int64
}

func (e *ExistingActiveRequestError) Error() string {
	return fmt.Sprintf("user already has an active request %d", e.RequestID)
}

// IsValidationError сообщает, относится ли ошибка к классу ошибок валидации
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyRequesterID) ||
		errors.Is(err, ErrInvalidCoordinates) ||
		errors.Is(err, ErrInvalidAcceptance) ||
		errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrPhotoTooLarge) ||
		errors.Is(err, ErrInvalidPhotoData)
}
