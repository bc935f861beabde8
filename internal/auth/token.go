package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/itacademy/dice-game-api/internal/apperrors"
)

// JwtCustomClaims binds a token to a user id and role. The jti
// (RegisteredClaims.ID) is registered server-side so tokens stay
// revocable instead of being trusted on signature alone.
type JwtCustomClaims struct {
	Id   uint `json:"id"`
	Role Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenRegistry tracks the ids of tokens this service has issued.
type TokenRegistry interface {
	Register(ctx context.Context, jti string, userID uint, ttl time.Duration) error
	Exists(ctx context.Context, jti string) (bool, error)
}

// RedisTokenRegistry keeps issued token ids in Redis, expiring them
// together with the token itself.
type RedisTokenRegistry struct {
	rdb *redis.Client
}

func NewRedisTokenRegistry(rdb *redis.Client) *RedisTokenRegistry {
	return &RedisTokenRegistry{rdb: rdb}
}

func tokenKey(jti string) string {
	return "token:" + jti
}

func (r *RedisTokenRegistry) Register(ctx context.Context, jti string, userID uint, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, tokenKey(jti), userID, ttl).Err(); err != nil {
		return apperrors.NewAppError(http.StatusInternalServerError, "error registering token", err)
	}
	return nil
}

func (r *RedisTokenRegistry) Exists(ctx context.Context, jti string) (bool, error) {
	_, err := r.rdb.Get(ctx, tokenKey(jti)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.NewAppError(http.StatusInternalServerError, "error checking token", err)
	}
	return true, nil
}

// TokenService issues and validates the bearer tokens of the API.
type TokenService struct {
	secret   []byte
	ttl      time.Duration
	registry TokenRegistry
}

func NewTokenService(secret string, ttl time.Duration, registry TokenRegistry) *TokenService {
	return &TokenService{
		secret:   []byte(secret),
		ttl:      ttl,
		registry: registry,
	}
}

// Issue signs a token for the user and records its jti in the registry.
func (s *TokenService) Issue(ctx context.Context, userID uint, role Role) (string, error) {
	jti := uuid.New().String()
	claims := JwtCustomClaims{
		Id:   userID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", apperrors.NewAppError(http.StatusInternalServerError, "error creating jwt token", err)
	}

	if err := s.registry.Register(ctx, jti, userID, s.ttl); err != nil {
		return "", err
	}
	return signed, nil
}

// Parse validates a bearer token and resolves it to a principal. A
// token is only accepted when its signature checks out and its jti is
// still registered.
func (s *TokenService) Parse(ctx context.Context, tokenString string) (*Principal, error) {
	claims := &JwtCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Unauthenticated.", err)
	}

	known, err := s.registry.Exists(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !known {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Unauthenticated.", nil)
	}

	return &Principal{UserID: claims.Id, Role: claims.Role}, nil
}
