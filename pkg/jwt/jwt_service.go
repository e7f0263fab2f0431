package jwt

import (
	"fmt"
	"time"

	"barnmonitor-backend/domain"

	"github.com/golang-jwt/jwt/v4"
)

type (
	// JWTService signs the opaque session id handed to clients. Expiry is
	// tracked server side on the session row, not in the token.
	JWTService interface {
		GenerateSessionToken(sessionID string) (string, error)
		ValidateSessionToken(token string) (*jwt.Token, error)
		GetSessionIDByToken(token string) (string, error)
	}

	jwtSessionClaim struct {
		SessionID string `json:"sid"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "BARNMONITOR",
	}
}

func (j *jwtService) GenerateSessionToken(sessionID string) (string, error) {
	claims := jwtSessionClaim{
		sessionID,
		jwt.RegisteredClaims{
			Issuer:   j.issuer,
			IssuedAt: jwt.NewNumericDate(time.Now()),
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

func (j *jwtService) ValidateSessionToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtSessionClaim{}, j.parseToken)
}

func (j *jwtService) GetSessionIDByToken(token string) (string, error) {
	t_Token, err := j.ValidateSessionToken(token)
	if err != nil || !t_Token.Valid {
		return "", domain.ErrTokenInvalid
	}

	claims, ok := t_Token.Claims.(*jwtSessionClaim)
	if !ok || claims.Issuer != j.issuer || claims.SessionID == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.SessionID, nil
}
