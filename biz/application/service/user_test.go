package service

import (
	"context"
	"errors"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/basic"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/repository/user"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/limit"
)

type fakeLimiter struct {
	quota int
	hits  map[string]int
	err   error
}

func (l *fakeLimiter) TakeCtx(_ context.Context, key string) (int, error) {
	if l.err != nil {
		return limit.Unknown, l.err
	}
	l.hits[key]++
	if l.hits[key] > l.quota {
		return limit.OverQuota, nil
	}
	return limit.Allowed, nil
}

func newUserService(t *testing.T) (*UserService, *fakeLimiter) {
	t.Helper()
	limiter := &fakeLimiter{quota: 3, hits: make(map[string]int)}
	svc := &UserService{
		UserMapper: user.NewMemoryMapper(),
		Limiter:    limiter,
		SignToken: func(meta *basic.UserMeta) (string, int64, error) {
			return "token-" + meta.UserId, 3600, nil
		},
	}
	_, err := svc.CreateUser(context.Background(), &show.CreateUserReq{
		Name:     "Ms. Lee",
		Email:    " Lee@Example.com ",
		Password: "secret123",
		Role:     consts.RoleInstructor,
	})
	require.NoError(t, err)
	return svc, limiter
}

func TestSignIn(t *testing.T) {
	svc, _ := newUserService(t)

	resp, err := svc.SignIn(context.Background(), &show.SignInReq{Email: "lee@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Ms. Lee", resp.Name)
	assert.Equal(t, consts.RoleInstructor, resp.Role)
	assert.Equal(t, "token-"+resp.Id, resp.AccessToken)
	assert.Equal(t, int64(3600), resp.AccessExpire)

	_, err = svc.SignIn(context.Background(), &show.SignInReq{Email: "lee@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, consts.ErrSignIn)
	_, err = svc.SignIn(context.Background(), &show.SignInReq{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, consts.ErrSignIn)
	_, err = svc.SignIn(context.Background(), &show.SignInReq{Email: "", Password: "x"})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)
}

func TestSignInThrottled(t *testing.T) {
	svc, limiter := newUserService(t)

	for i := 0; i < limiter.quota; i++ {
		_, err := svc.SignIn(context.Background(), &show.SignInReq{Email: "lee@example.com", Password: "wrong"})
		assert.ErrorIs(t, err, consts.ErrSignIn)
	}
	_, err := svc.SignIn(context.Background(), &show.SignInReq{Email: "LEE@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, consts.ErrTooManyAttempts)

	// 限流器故障时放行
	limiter.err = errors.New("redis down")
	_, err = svc.SignIn(context.Background(), &show.SignInReq{Email: "lee@example.com", Password: "secret123"})
	assert.NoError(t, err)
}

func TestCreateUserValidation(t *testing.T) {
	svc, _ := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, &show.CreateUserReq{Name: "X", Email: "lee@example.com", Password: "p", Role: consts.RoleParent})
	assert.ErrorIs(t, err, consts.ErrRepeatedSignUp)
	_, err = svc.CreateUser(ctx, &show.CreateUserReq{Name: "X", Email: "x@example.com", Password: "p", Role: "admin"})
	assert.ErrorIs(t, err, consts.ErrInvalidParams)

	u, err := svc.CreateUser(ctx, &show.CreateUserReq{Name: "X", Email: "x@example.com", Password: "p", Role: consts.RoleParent})
	require.NoError(t, err)
	assert.NotEqual(t, "p", u.PasswordHash)
}

func TestGetUserInfo(t *testing.T) {
	svc, _ := newUserService(t)

	_, err := svc.GetUserInfo(context.Background(), &show.GetUserInfoReq{})
	assert.ErrorIs(t, err, consts.ErrNotAuthentication)

	u, err := svc.UserMapper.FindOneByEmail(context.Background(), "lee@example.com")
	require.NoError(t, err)
	ctx := adaptor.WithUserMeta(context.Background(), &basic.UserMeta{UserId: u.ID.Hex(), Role: u.Role})
	info, err := svc.GetUserInfo(ctx, &show.GetUserInfoReq{})
	require.NoError(t, err)
	assert.Equal(t, "lee@example.com", info.Email)
}
