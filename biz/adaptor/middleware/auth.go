package middleware

import (
	"context"
	"listening-show/biz/adaptor"
	"listening-show/biz/infrastructure/config"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/util/log"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/samber/lo"
)

// Auth 校验 Authorization 头中的 token, 并把 UserMeta 注入到后续 handler 的 ctx
func Auth() app.HandlerFunc {
	return auth(func() string {
		return config.GetConfig().Auth.PublicKey
	})
}

func auth(publicKey func() string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		meta, err := adaptor.ParseToken(publicKey(), string(c.GetHeader(consts.Authorization)))
		if err != nil {
			log.CtxInfo(ctx, "[%s] reject request, err=%v", c.Path(), err)
			status, body := adaptor.ErrorResponse(consts.ErrNotAuthentication)
			c.AbortWithStatusJSON(status, body)
			return
		}
		c.Next(adaptor.WithUserMeta(ctx, meta))
	}
}

// RequireRole 必须放在 Auth 之后
func RequireRole(roles ...string) app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		meta := adaptor.ExtractUserMeta(ctx)
		if !lo.Contains(roles, meta.GetRole()) {
			status, body := adaptor.ErrorResponse(consts.ErrForbidden)
			c.AbortWithStatusJSON(status, body)
			return
		}
		c.Next(ctx)
	}
}
