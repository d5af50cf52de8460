package service

import (
	"context"
	"errors"
	"listening-show/biz/adaptor"
	"listening-show/biz/application/dto/basic"
	"listening-show/biz/application/dto/show"
	"listening-show/biz/infrastructure/consts"
	"listening-show/biz/infrastructure/redis"
	"listening-show/biz/infrastructure/repository/user"
	"listening-show/biz/infrastructure/util/log"
	"strings"

	"github.com/google/wire"
	"github.com/samber/lo"
	"github.com/zeromicro/go-zero/core/limit"
	"golang.org/x/crypto/bcrypt"
)

var roles = []string{consts.RoleInstructor, consts.RoleParent, consts.RoleStudent}

type IUserService interface {
	SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error)
	GetUserInfo(ctx context.Context, req *show.GetUserInfoReq) (*show.GetUserInfoResp, error)
	CreateUser(ctx context.Context, req *show.CreateUserReq) (*user.User, error)
}

type UserService struct {
	UserMapper user.IMongoMapper
	Limiter    redis.ISignInLimiter
	// SignToken 签发 token, 为空时使用 adaptor.GenerateJwtToken
	SignToken func(meta *basic.UserMeta) (string, int64, error) `wire:"-"`
}

var UserServiceSet = wire.NewSet(
	wire.Struct(new(UserService), "UserMapper", "Limiter"),
	wire.Bind(new(IUserService), new(*UserService)),
)

// SignIn 邮箱密码登录
func (s *UserService) SignIn(ctx context.Context, req *show.SignInReq) (*show.SignInResp, error) {
	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		return nil, consts.ErrInvalidParams
	}

	if s.Limiter != nil {
		code, err := s.Limiter.TakeCtx(ctx, email)
		if err != nil {
			// 限流不可用时不阻断登录
			log.CtxError(ctx, "sign in limiter fail: %v", err)
		} else if code == limit.OverQuota {
			return nil, consts.ErrTooManyAttempts
		}
	}

	u, err := s.UserMapper.FindOneByEmail(ctx, email)
	switch {
	case err == nil:
	case errors.Is(err, consts.ErrNotFound):
		return nil, consts.ErrSignIn
	default:
		log.CtxError(ctx, "find user fail: %v", err)
		return nil, consts.ErrCall
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)) != nil {
		return nil, consts.ErrSignIn
	}

	sign := s.SignToken
	if sign == nil {
		sign = adaptor.GenerateJwtToken
	}
	accessToken, accessExpire, err := sign(&basic.UserMeta{
		UserId: u.ID.Hex(),
		Role:   u.Role,
		Name:   u.Name,
	})
	if err != nil {
		log.CtxError(ctx, "sign token fail: %v", err)
		return nil, consts.ErrCall
	}

	return &show.SignInResp{
		Id:           u.ID.Hex(),
		Name:         u.Name,
		Role:         u.Role,
		AccessToken:  accessToken,
		AccessExpire: accessExpire,
	}, nil
}

func (s *UserService) GetUserInfo(ctx context.Context, _ *show.GetUserInfoReq) (*show.GetUserInfoResp, error) {
	meta := adaptor.ExtractUserMeta(ctx)
	if meta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	u, err := s.UserMapper.FindOne(ctx, meta.GetUserId())
	if err != nil {
		log.CtxError(ctx, "find user fail: %v", err)
		return nil, consts.ErrNotFound
	}
	return &show.GetUserInfoResp{
		Id:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}, nil
}

// CreateUser 创建账号, 密码以 bcrypt 存储
func (s *UserService) CreateUser(ctx context.Context, req *show.CreateUserReq) (*user.User, error) {
	email := normalizeEmail(req.Email)
	if strings.TrimSpace(req.Name) == "" || email == "" || req.Password == "" || !lo.Contains(roles, req.Role) {
		return nil, consts.ErrInvalidParams
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &user.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         req.Role,
	}
	if err = s.UserMapper.Insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
