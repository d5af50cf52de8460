package adaptor

import (
	"context"
	"errors"
	"listening-show/biz/application/dto/basic"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/consts"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
)

type userMetaKey struct{}

// WithUserMeta 将调用方信息写入上下文, 由鉴权中间件调用
func WithUserMeta(ctx context.Context, meta *basic.UserMeta) context.Context {
	return context.WithValue(ctx, userMetaKey{}, meta)
}

// ExtractUserMeta 未登录时返回空的 UserMeta
func ExtractUserMeta(ctx context.Context) *basic.UserMeta {
	if meta, ok := ctx.Value(userMetaKey{}).(*basic.UserMeta); ok && meta != nil {
		return meta
	}
	return new(basic.UserMeta)
}

// ParseToken 校验 ES256 签名并解析出 UserMeta, 兼容 "Bearer " 前缀
func ParseToken(publicKey, tokenString string) (*basic.UserMeta, error) {
	tokenString = strings.TrimSpace(strings.TrimPrefix(tokenString, consts.Bearer))
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwt.ParseECPublicKeyFromPEM([]byte(publicKey))
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token is not valid")
	}
	user := new(basic.UserMeta)
	if err = mapstructure.Decode(map[string]interface{}(claims), user); err != nil {
		return nil, err
	}
	if user.UserId == "" {
		return nil, errors.New("token has no user id")
	}
	return user, nil
}

// GenerateJwtToken 生成jwt
/*
生成 ECDSA 私钥: openssl ecparam -genkey -name prime256v1 -noout -out private_key.pem
从私钥中提取公钥: openssl ec -in private_key.pem -pubout -out public_key.pem
*/
func GenerateJwtToken(meta *basic.UserMeta) (string, int64, error) {
	auth := config.GetConfig().Auth
	return signToken(auth.SecretKey, auth.AccessExpire, meta)
}

func signToken(secretKey string, expire int64, meta *basic.UserMeta) (string, int64, error) {
	key, err := jwt.ParseECPrivateKeyFromPEM([]byte(secretKey))
	if err != nil {
		return "", 0, err
	}
	iat := time.Now().Unix()
	exp := iat + expire
	claims := make(jwt.MapClaims)
	claims["exp"] = exp
	claims["iat"] = iat
	claims["jti"] = uuid.NewString()
	claims["userId"] = meta.UserId
	claims["role"] = meta.Role
	claims["name"] = meta.Name
	token := jwt.New(jwt.SigningMethodES256)
	token.Claims = claims
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", 0, err
	}
	return tokenString, exp, nil
}
