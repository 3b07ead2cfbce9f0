package cookie

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/amirhossein-jamali/invest-dashboard/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v5"
)

// Issuer is written into every session cookie
const Issuer = "invest-dashboard"

// ErrInvalidCookie is returned when a cookie fails signature, issuer or expiry checks
var ErrInvalidCookie = errors.New("invalid session cookie")

// Codec signs session IDs into cookie values and reads them back.
// The cookie carries only the session ID; credentials stay server-side.
type Codec struct {
	name         string
	secret       []byte
	secure       bool
	maxAge       time.Duration
	timeProvider core.TimeProvider
}

// NewCodec creates a codec. maxAge is both the token expiry and the cookie Max-Age.
func NewCodec(name, secret string, secure bool, maxAge time.Duration, timeProvider core.TimeProvider) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("session secret is required")
	}
	if name == "" {
		return nil, errors.New("session cookie name is required")
	}
	return &Codec{
		name:         name,
		secret:       []byte(secret),
		secure:       secure,
		maxAge:       maxAge,
		timeProvider: timeProvider,
	}, nil
}

// Name returns the cookie name
func (c *Codec) Name() string {
	return c.name
}

// Encode returns a signed value for sessionID, valid for maxAge from now
func (c *Codec) Encode(sessionID string) (string, error) {
	now := c.timeProvider.Now()
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    Issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.maxAge)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign session cookie: %w", err)
	}
	return signed, nil
}

// Decode verifies value and returns the session ID it carries
func (c *Codec) Decode(value string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(value, &claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.timeProvider.Now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidCookie, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidCookie)
	}
	return claims.Subject, nil
}

// Cookie builds the Set-Cookie value for sessionID
func (c *Codec) Cookie(sessionID string) (*http.Cookie, error) {
	value, err := c.Encode(sessionID)
	if err != nil {
		return nil, err
	}
	return &http.Cookie{
		Name:     c.name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(c.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}, nil
}

// Expired builds a cookie that removes the session cookie from the browser
func (c *Codec) Expired() *http.Cookie {
	return &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}
