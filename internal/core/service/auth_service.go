package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/nzwalks/walks-api/internal/core/domain"
	"github.com/nzwalks/walks-api/internal/core/ports"
)

const defaultTokenTTL = 15 * time.Minute

// TokenConfig holds the signing parameters for issued access tokens. All
// values come from process configuration; the secret is validated for
// minimum strength at startup, before any service is constructed.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService authenticates credentials against the user repository and
// issues signed access tokens. It trusts the repository for user lookup and
// performs the password comparison itself.
type AuthService struct {
	repo  ports.UserRepository
	token TokenConfig
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, token TokenConfig, log zerolog.Logger) *AuthService {
	if token.TTL <= 0 {
		token.TTL = defaultTokenTTL
	}
	return &AuthService{repo: repo, token: token, log: log}
}

// accessClaims is the claim set baked into issued tokens: the subject is the
// username and roles carries one entry per role held at issuance time. The
// set is fixed for the token's lifetime; no live re-check happens later.
type accessClaims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Login verifies the username/password pair and returns a signed token plus
// the matched user. Both unknown-user and wrong-password resolve to
// domain.ErrInvalidCredentials so the response does not reveal which failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("username", user.Username).Strs("roles", user.Roles).Msg("token issued")
	return token, user, nil
}

// issueToken converts an already-authenticated user into a signed bearer
// credential. An empty role list yields a token with zero role claims.
func (s *AuthService) issueToken(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := accessClaims{
		Roles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			Issuer:    s.token.Issuer,
			Audience:  jwt.ClaimStrings{s.token.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.token.TTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.token.Secret))
}

// HashPassword returns the bcrypt hash used for stored credentials. Seeding
// paths use it so plaintext never reaches a store.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
