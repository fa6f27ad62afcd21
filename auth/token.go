package auth

import (
	"errors"
	"time"

	"clubhub/repository"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserId      int      `json:"user_id"`
	Permissions []string `json:"permissions"`
	Exp         int64    `json:"exp"`
}

func (claims *Claims) FromJWTClaims(jwtClaims jwt.Claims) error {
	mapClaims, ok := jwtClaims.(jwt.MapClaims)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	permissions := []string{}
	if rawPermissions, ok := mapClaims["permissions"].([]interface{}); ok {
		for _, perm := range rawPermissions {
			if p, ok := perm.(string); ok {
				permissions = append(permissions, p)
			}
		}
	}
	userId, ok := mapClaims["user_id"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	exp, ok := mapClaims["exp"].(float64)
	if !ok {
		return jwt.ErrTokenInvalidClaims
	}
	claims.Permissions = permissions
	claims.UserId = int(userId)
	claims.Exp = int64(exp)
	return nil
}

func (claims *Claims) Valid() error {
	if time.Now().Unix() > claims.Exp {
		return jwt.ErrTokenExpired
	}
	return nil
}

func (claims *Claims) HasAnyPermission(permissions ...repository.Permission) bool {
	for _, required := range permissions {
		for _, granted := range claims.Permissions {
			if required == granted {
				return true
			}
		}
	}
	return false
}

// Authenticator signs and verifies the HS256 tokens issued to club members.
type Authenticator struct {
	secret []byte
}

func NewAuthenticator(secret string) *Authenticator {
	return &Authenticator{secret: []byte(secret)}
}

func (a *Authenticator) CreateToken(user *repository.User, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256,
		jwt.MapClaims{
			"user_id":     user.Id,
			"permissions": []string(user.Permissions),
			"exp":         time.Now().Add(ttl).Unix(),
		})

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (a *Authenticator) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims := &Claims{}
	if err := claims.FromJWTClaims(token.Claims); err != nil {
		return nil, err
	}
	if err := claims.Valid(); err != nil {
		return nil, err
	}
	return claims, nil
}
