// AngelaMos | 2026
// jwt.go

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"

	"github.com/angelamos/todoapp/internal/config"
	"github.com/angelamos/todoapp/internal/core"
	"github.com/angelamos/todoapp/internal/middleware"
)

// JWTManager signs and verifies access tokens with a process-wide HS256
// secret. The key is loaded once at startup and never rotated mid-process.
type JWTManager struct {
	key    jwk.Key
	config config.JWTConfig
	clock  jwt.Clock
}

func NewJWTManager(cfg config.JWTConfig) (*JWTManager, error) {
	key, err := jwk.Import([]byte(cfg.SecretKey))
	if err != nil {
		return nil, fmt.Errorf("import signing key: %w", err)
	}

	if setErr := key.Set(jwk.AlgorithmKey, jwa.HS256()); setErr != nil {
		return nil, fmt.Errorf("set algorithm: %w", setErr)
	}

	return &JWTManager{
		key:    key,
		config: cfg,
		clock:  jwt.ClockFunc(time.Now),
	}, nil
}

// CreateAccessToken issues a signed token carrying the caller's username as
// subject plus id and role claims, expiring after the configured TTL.
func (m *JWTManager) CreateAccessToken(
	identity middleware.Identity,
) (string, error) {
	now := m.clock.Now()

	token, err := jwt.NewBuilder().
		JwtID(uuid.New().String()).
		Issuer(m.config.Issuer).
		Audience([]string{m.config.Audience}).
		Subject(identity.Username).
		IssuedAt(now).
		Expiration(now.Add(m.config.AccessTokenExpire)).
		NotBefore(now).
		Claim("id", identity.UserID).
		Claim("role", identity.Role).
		Build()
	if err != nil {
		return "", fmt.Errorf("build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), m.key))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return string(signed), nil
}

// VerifyAccessToken checks signature and expiry and requires the subject, id,
// and role claims to be present. Every failure mode collapses into
// core.ErrTokenInvalid so callers cannot distinguish a forged token from an
// expired or truncated one.
func (m *JWTManager) VerifyAccessToken(
	ctx context.Context,
	tokenString string,
) (middleware.Identity, error) {
	token, err := jwt.Parse(
		[]byte(tokenString),
		jwt.WithKey(jwa.HS256(), m.key),
		jwt.WithValidate(true),
		jwt.WithIssuer(m.config.Issuer),
		jwt.WithAudience(m.config.Audience),
		jwt.WithClock(m.clock),
	)
	if err != nil {
		return middleware.Identity{}, fmt.Errorf(
			"verify token: %w",
			core.ErrTokenInvalid,
		)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return middleware.Identity{}, fmt.Errorf(
			"verify token: missing subject: %w",
			core.ErrTokenInvalid,
		)
	}

	var userID float64
	if err := token.Get("id", &userID); err != nil || userID == 0 {
		return middleware.Identity{}, fmt.Errorf(
			"verify token: missing id claim: %w",
			core.ErrTokenInvalid,
		)
	}

	var role string
	if err := token.Get("role", &role); err != nil || role == "" {
		return middleware.Identity{}, fmt.Errorf(
			"verify token: missing role claim: %w",
			core.ErrTokenInvalid,
		)
	}

	return middleware.Identity{
		Username: subject,
		UserID:   int64(userID),
		Role:     role,
	}, nil
}

var _ middleware.TokenVerifier = (*JWTManager)(nil)
