package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession  = errors.New("invalid session token")
	ErrVerifierMissing = errors.New("no session verifier configured")
)

// sessionLeeway absorbs clock skew between Supabase and this service.
const sessionLeeway = 30 * time.Second

// sessionAudience is the aud Supabase puts on signed-in user tokens.
const sessionAudience = "authenticated"

// SessionClaims are the Supabase access-token claims we rely on.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// SessionVerifier turns a bearer token into verified claims.
type SessionVerifier interface {
	VerifySession(ctx context.Context, token string) (*SessionClaims, error)
}

// JWTService verifies Supabase access tokens. Projects on the legacy shared
// secret sign with HS256; projects with asymmetric keys publish a JWKS.
type JWTService struct {
	secretKey []byte
	keySet    oidc.KeySet
}

// NewJWTService needs at least one of secret or jwksURL.
func NewJWTService(ctx context.Context, secret, jwksURL string) (*JWTService, error) {
	if secret == "" && jwksURL == "" {
		return nil, errors.New("SUPABASE_JWT_SECRET or SUPABASE_JWKS_URL must be set")
	}
	s := &JWTService{}
	if secret != "" {
		s.secretKey = []byte(secret)
	}
	if jwksURL != "" {
		s.keySet = oidc.NewRemoteKeySet(ctx, jwksURL)
	}
	return s, nil
}

// WithKeySet swaps the JWKS source.
func (j *JWTService) WithKeySet(ks oidc.KeySet) *JWTService {
	j.keySet = ks
	return j
}

func (j *JWTService) VerifySession(ctx context.Context, tokenString string) (*SessionClaims, error) {
	unverified, _, err := jwt.NewParser().ParseUnverified(tokenString, &SessionClaims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	var claims *SessionClaims
	switch alg, _ := unverified.Header["alg"].(string); {
	case alg == jwt.SigningMethodHS256.Alg():
		claims, err = j.verifyHMAC(tokenString)
	case j.keySet != nil:
		claims, err = j.verifyJWKS(ctx, tokenString)
	default:
		return nil, fmt.Errorf("%w: unsupported signing method %q", ErrInvalidSession, alg)
	}
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, fmt.Errorf("%w: token missing required claims", ErrInvalidSession)
	}
	return claims, nil
}

func (j *JWTService) verifyHMAC(tokenString string) (*SessionClaims, error) {
	if len(j.secretKey) == 0 {
		return nil, fmt.Errorf("%w: HS256 tokens are not accepted", ErrInvalidSession)
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(sessionLeeway),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(sessionAudience),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return nil, ErrInvalidSession
	}
	return claims, nil
}

func (j *JWTService) verifyJWKS(ctx context.Context, tokenString string) (*SessionClaims, error) {
	payload, err := j.keySet.VerifySignature(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	claims := &SessionClaims{}
	if err := json.Unmarshal(payload, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if err := jwt.NewValidator(jwt.WithLeeway(sessionLeeway), jwt.WithExpirationRequired()).Validate(claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return claims, nil
}

// GenerateSessionToken signs an HS256 token shaped like a Supabase access
// token. Used by the CLI and tests.
func GenerateSessionToken(secret, subject, email string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("secret cannot be empty")
	}
	now := time.Now()
	claims := SessionClaims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Audience:  jwt.ClaimStrings{sessionAudience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
