// Package credential hashes passwords and issues the signed access tokens
// carried by every authenticated request.
package credential

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrEmptySecret  = errors.New("jwt secret is required")
)

// Claims is the token payload: {id, role_id, username}.
type Claims struct {
	ID       uint   `json:"id"`
	RoleID   uint   `json:"role_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issuer and Verifier let callers depend on one side of the Service.
type Issuer interface {
	IssueToken(claims Claims) (string, error)
}

type Verifier interface {
	VerifyToken(token string) (*Claims, error)
}

type Service struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService fails when secret is empty; there is no fallback key.
// A zero ttl issues tokens without an exp claim.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Service{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

func (s *Service) IssueToken(claims Claims) (string, error) {
	now := s.now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid || claims.ID == 0 {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func ComparePassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
