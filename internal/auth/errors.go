package auth

import "errors"

var (
	// ErrNoSession возвращается, когда токен сессии отсутствует
	ErrNoSession = errors.New("auth: no session token")

	// ErrSessionExpired возвращается, когда срок сессии истек
	ErrSessionExpired = errors.New("auth: session expired")

	// ErrInvalidSession возвращается при невалидном токене сессии
	ErrInvalidSession = errors.New("auth: invalid session token")
)
