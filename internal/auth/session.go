package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session аутентифицированная сессия оператора.
// Все мутирующие операции над записями требуют активной сессии;
// выдачей токенов занимается внешний сервис аутентификации.
type Session struct {
	Subject   string
	ExpiresAt time.Time
}

// Manager проверяет токены сессий, подписанные HS256
type Manager struct {
	secret []byte
}

// NewManager создает новый менеджер сессий
func NewManager(secret string) *Manager {
	return &Manager{secret: []byte(secret)}
}

// Parse проверяет подпись и срок действия токена и возвращает сессию
func (m *Manager) Parse(tokenString string) (*Session, error) {
	if tokenString == "" {
		return nil, ErrNoSession
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSession
	}

	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidSession)
	}

	session := &Session{Subject: subject}

	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		session.ExpiresAt = exp.Time
	}

	return session, nil
}
