package adaptor

import (
	"context"
	"errors"
	"learning-market/biz/infrastructure/config"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mitchellh/mapstructure"
)

type userMetaKey struct{}

// UserMeta 令牌中解出的用户信息
type UserMeta struct {
	Email string `mapstructure:"email" json:"email"`
	Name  string `mapstructure:"name" json:"name,omitempty"`
}

func (u *UserMeta) GetEmail() string {
	if u == nil {
		return ""
	}
	return u.Email
}

func WithUserMeta(ctx context.Context, user *UserMeta) context.Context {
	return context.WithValue(ctx, userMetaKey{}, user)
}

// ExtractUserMeta 未经过鉴权中间件时返回空的 UserMeta
func ExtractUserMeta(ctx context.Context) *UserMeta {
	user, ok := ctx.Value(userMetaKey{}).(*UserMeta)
	if !ok || user == nil {
		return new(UserMeta)
	}
	return user
}

// GenerateJwtToken 以共享密钥签发 HS256 令牌, payload 原样写入 claims
func GenerateJwtToken(auth config.Auth, payload map[string]any) (string, int64, error) {
	if auth.Secret == "" {
		return "", 0, errors.New("token secret not configured")
	}
	iat := time.Now().Unix()
	exp := iat + auth.AccessExpire
	claims := make(jwt.MapClaims, len(payload)+2)
	for k, v := range payload {
		claims[k] = v
	}
	claims["exp"] = exp
	claims["iat"] = iat

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(auth.Secret))
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}

// ParseJwtToken 校验签名与过期时间, header 可以带 Bearer 前缀
func ParseJwtToken(auth config.Auth, header string) (*UserMeta, error) {
	if auth.Secret == "" {
		return nil, errors.New("token secret not configured")
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if tokenString == "" {
		return nil, errors.New("token missing")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	user := new(UserMeta)
	if err = mapstructure.Decode(map[string]any(claims), user); err != nil {
		return nil, err
	}
	return user, nil
}
