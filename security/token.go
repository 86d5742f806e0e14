package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenInvalid = errors.New("token is invalid")

// Tokens issues and verifies the signed HS256 session tokens handed out
// on login. Secret and lifetime are fixed at construction so nothing
// reaches into global config at request time
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Make issues a session token for a user
func (t *Tokens) Make(userID string) (string, error) {
	now := time.Now()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"type":    "auth",
		"iat":     now.Unix(),
		"exp":     now.Add(t.ttl).Unix(),
	})

	return tok.SignedString(t.secret)
}

// Parse verifies the signature and expiry of a session token and
// returns the user id and issue time encoded in it
func (t *Tokens) Parse(tokenStr string) (userID string, issuedAt time.Time, err error) {
	token, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", tok.Method.Alg())
		}

		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", time.Time{}, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", time.Time{}, ErrTokenInvalid
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", time.Time{}, ErrTokenInvalid
	}

	iat, err := claims.GetIssuedAt()
	if err != nil || iat == nil {
		return "", time.Time{}, ErrTokenInvalid
	}

	return userID, iat.Time, nil
}

// DecodeExpiry reads the exp claim of a token without verifying its
// signature. A token being logged out is by definition believed valid by
// its holder, we only need to know how long to keep it blacklisted
func DecodeExpiry(tokenStr string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenStr, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, ErrTokenInvalid
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, ErrTokenInvalid
	}

	return exp.Time, nil
}
