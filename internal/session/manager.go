package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieOptions controls the session cookie written to the browser.
type CookieOptions struct {
	Name     string
	Domain   string
	Secure   bool
	SameSite http.SameSite
	MaxAge   time.Duration
}

// Manager issues and verifies session cookies. The cookie value is an
// HS256 token whose jti claim is the session id.
type Manager struct {
	store  Store
	secret []byte
	cookie CookieOptions
	now    func() time.Time
}

func NewManager(store Store, secret string, cookie CookieOptions) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		cookie: cookie,
		now:    time.Now,
	}
}

// Load returns the session named by the request cookie. Requests without a
// valid cookie get a new session with IsNew set.
func (m *Manager) Load(r *http.Request) *Session {
	if c, err := r.Cookie(m.cookie.Name); err == nil {
		if id, err := m.parse(c.Value); err == nil {
			return New(id, m.store)
		}
	}

	s := New(uuid.NewString(), m.store)
	s.IsNew = true
	return s
}

// Cookie builds the Set-Cookie value for s.
func (m *Manager) Cookie(s *Session) (*http.Cookie, error) {
	token, err := m.sign(s.ID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     m.cookie.Name,
		Value:    token,
		Path:     "/",
		Domain:   m.cookie.Domain,
		MaxAge:   int(m.cookie.MaxAge / time.Second),
		Secure:   m.cookie.Secure,
		HttpOnly: true,
		SameSite: m.cookie.SameSite,
	}, nil
}

func (m *Manager) sign(id string) (string, error) {
	now := m.now()
	claims := jwt.RegisteredClaims{
		ID:       id,
		IssuedAt: jwt.NewNumericDate(now),
	}
	if m.cookie.MaxAge > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(m.cookie.MaxAge))
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

func (m *Manager) parse(value string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(value, claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(m.now))
	if err != nil {
		return "", err
	}
	if _, err := uuid.Parse(claims.ID); err != nil {
		return "", errors.New("session token carries no valid id")
	}
	return claims.ID, nil
}
