package redis

import (
	"context"
	"listening-show/biz/infrastructure/config"

	"github.com/zeromicro/go-zero/core/limit"
)

const signInLimitPrefix = "limit:sign_in:"

// ISignInLimiter 返回值同 limit.PeriodLimit: Allowed/HitQuota/OverQuota
type ISignInLimiter interface {
	TakeCtx(ctx context.Context, key string) (int, error)
}

// NewSignInLimiter 按邮箱限制登录尝试次数
func NewSignInLimiter(config *config.Config) ISignInLimiter {
	return limit.NewPeriodLimit(config.SignInLimit.Period, config.SignInLimit.Quota, GetRedis(config), signInLimitPrefix)
}
