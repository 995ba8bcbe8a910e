package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var TimeNow = time.Now
var ErrTokenNotValid error = errors.New("token is not valid")

type TokenInfo struct {
	UserID     uint
	Email      string
	Role       string
	Expiration time.Duration
}

// Claims is the payload carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID uint   `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type JWTService struct {
	secret []byte
}

func NewJWTService(jwtSecret []byte) *JWTService {
	return &JWTService{
		secret: jwtSecret,
	}
}

func (gen *JWTService) Generate(data TokenInfo) *jwt.Token {
	now := TimeNow()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(data.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(data.Expiration)),
		},
		UserID: data.UserID,
		Email:  data.Email,
		Role:   data.Role,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
}

func (gen *JWTService) Sign(token *jwt.Token) (string, error) {
	tokenStr, err := token.SignedString(gen.secret)
	if err != nil {
		return "", fmt.Errorf("get signing string: %w", err)
	}
	return tokenStr, nil
}

// Validate checks signature and expiry. Every failure wraps ErrTokenNotValid,
// so callers cannot tell an expired token from a forged one.
func (gen *JWTService) Validate(token string) (*Claims, error) {
	claims := &Claims{}
	jwtToken, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return gen.secret, nil
		},
		jwt.WithTimeFunc(TimeNow),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("jwt parse: %w: %w", err, ErrTokenNotValid)
	}

	if !jwtToken.Valid {
		return nil, ErrTokenNotValid
	}

	return claims, nil
}
