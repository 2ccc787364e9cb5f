package jwt

import (
	"errors"
	"fmt"
	"time"

	"recipe-api/domain"

	"github.com/golang-jwt/jwt/v4"
)

const DefaultTTL = 120 * time.Minute

type (
	JWTService interface {
		GenerateTokenUser(userID string, roles []string) (string, error)
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, []string, error)
	}

	jwtUserClaim struct {
		UserID string   `json:"user_id"`
		Roles  []string `json:"roles"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		ttl       time.Duration
		now       func() time.Time
	}
)

func NewJWTService(secretKey, issuer string, ttl time.Duration) JWTService {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &jwtService{
		secretKey: secretKey,
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
	}
}

func (j *jwtService) GenerateTokenUser(userID string, roles []string) (string, error) {
	now := j.now()
	claims := jwtUserClaim{
		userID,
		roles,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, []string, error) {
	t_Token, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", nil, domain.ErrTokenExpired
		}
		return "", nil, domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", nil, domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtUserClaim)
	if !ok || claims.UserID == "" || (j.issuer != "" && claims.Issuer != j.issuer) {
		return "", nil, domain.ErrTokenInvalid
	}
	return claims.UserID, claims.Roles, nil
}
