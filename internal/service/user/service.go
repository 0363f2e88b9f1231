package user

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"go.uber.org/zap"

	"campus_club_server/internal/dao/mysql/repository"
	myredis "campus_club_server/internal/dao/redis"
	"campus_club_server/internal/dto/request"
	"campus_club_server/internal/dto/respond"
	"campus_club_server/internal/model"
	"campus_club_server/pkg/constants"
	"campus_club_server/pkg/errorx"
	"campus_club_server/pkg/util/jwt"
	"campus_club_server/pkg/util/random"
)

// userService 用户业务逻辑实现
type userService struct {
	repos *repository.Repositories
	cache myredis.AsyncCacheService
}

// NewUserService 构造函数，注入所有依赖
func NewUserService(repos *repository.Repositories, cache myredis.AsyncCacheService) *userService {
	return &userService{
		repos: repos,
		cache: cache,
	}
}

// checkEmailValid 校验邮箱是否有效
func (u *userService) checkEmailValid(email string) bool {
	pattern := `^[^\s@]+@[^\s@]+\.[^\s@]+$`
	match, err := regexp.MatchString(pattern, email)
	if err != nil {
		zap.L().Error(err.Error())
	}
	return match
}

// Register 用户注册
func (u *userService) Register(req request.RegisterRequest) (*respond.RegisterRespond, error) {
	if !u.checkEmailValid(req.Email) {
		return nil, errorx.New(errorx.CodeValidation, "邮箱格式不正确")
	}
	if len(req.Password) < 6 {
		return nil, errorx.New(errorx.CodeValidation, "密码长度不能少于6位")
	}

	if _, err := u.repos.User.FindByEmail(req.Email); err == nil {
		return nil, errorx.New(errorx.CodeConflict, "该邮箱已注册，请直接登录")
	} else if errorx.GetCode(err) != errorx.CodeNotFound {
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	user := model.User{
		Uuid:        fmt.Sprintf("U%s", random.GetNowAndLenRandomString(11)),
		Name:        req.Name,
		Email:       req.Email,
		RawPassword: req.Password, // BeforeSave 钩子中加密
	}
	if err := u.repos.User.Create(&user); err != nil {
		// 并发注册时邮箱唯一索引冲突
		if errorx.GetCode(err) == errorx.CodeConflict {
			return nil, errorx.New(errorx.CodeConflict, "该邮箱已注册，请直接登录")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}

	return &respond.RegisterRespond{
		Uuid:      user.Uuid,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}

// Login 密码登录，签发双 Token
func (u *userService) Login(req request.LoginRequest) (*respond.LoginRespond, error) {
	user, err := u.repos.User.FindByEmail(req.Email)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "用户不存在，请注册")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	if !user.CheckPassword(req.Password) {
		return nil, errorx.New(errorx.CodeUnauthorized, "密码不正确，请重试")
	}

	accessToken, err := jwt.GenerateAccessToken(user.Uuid)
	if err != nil {
		zap.L().Error("生成 Access Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	refreshToken, tokenID, err := jwt.GenerateRefreshToken(user.Uuid)
	if err != nil {
		zap.L().Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, errorx.ErrServerBusy
	}

	// 将 Refresh Token ID 存入 Redis，实现单点互踢
	// 存储失败只记日志，不阻塞登录
	err = u.cache.Set(context.Background(), myredis.UserTokenKey(user.Uuid), tokenID,
		time.Duration(constants.REFRESH_TOKEN_EXPIRY_HOURS)*time.Hour)
	if err != nil {
		zap.L().Error("存储 Token ID 到 Redis 失败", zap.Error(err))
	}

	return &respond.LoginRespond{
		Uuid:         user.Uuid,
		Name:         user.Name,
		Email:        user.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}, nil
}

// GetUserInfo 获取用户信息
func (u *userService) GetUserInfo(uuid string) (*respond.UserInfoRespond, error) {
	user, err := u.repos.User.FindByUuid(uuid)
	if err != nil {
		if errorx.GetCode(err) == errorx.CodeNotFound {
			return nil, errorx.New(errorx.CodeNotFound, "用户不存在")
		}
		zap.L().Error(err.Error())
		return nil, errorx.ErrServerBusy
	}
	return &respond.UserInfoRespond{
		Uuid:      user.Uuid,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}, nil
}
