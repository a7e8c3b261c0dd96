package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/avGenie/go-checkout-system/internal/app/entity"
	usecase "github.com/avGenie/go-checkout-system/internal/app/usecase/errors"
)

const tokenExpire = 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID entity.UserID `json:"user_id"`
}

// Tokenizer signs and verifies HS256 bearer tokens issued by the storefront
// auth service.
type Tokenizer struct {
	secret []byte
	expire time.Duration
}

func NewTokenizer(secret string) *Tokenizer {
	return &Tokenizer{
		secret: []byte(secret),
		expire: tokenExpire,
	}
}

func (t *Tokenizer) BuildJWTString(userID entity.UserID) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.expire)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("error while signing jwt token: %w", err)
	}

	return tokenString, nil
}

func (t *Tokenizer) GetUserID(tokenString string) (entity.UserID, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.UserID(""), usecase.ErrTokenExpired
		}

		return entity.UserID(""), fmt.Errorf("%w: %w", usecase.ErrTokenNotValid, err)
	}

	if !token.Valid {
		return entity.UserID(""), usecase.ErrTokenNotValid
	}

	return claims.UserID, nil
}
