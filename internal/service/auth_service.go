package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resihub/backend/config"
	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
	"resihub/backend/internal/repository"
	"resihub/backend/pkg/jwt"
)

// 认证模块业务错误
var (
	ErrInvalidCredentials = errors.New("用户名或密码错误")
	ErrUserNotFound       = errors.New("用户不存在")
	ErrInvalidRefresh     = errors.New("refresh token 无效")
	ErrWrongOldPassword   = errors.New("原密码不正确")
)

// AuthService 认证服务接口
type AuthService interface {
	// Login 校验凭据并签发 Token 对
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// Refresh 用 refresh token 换取新的 Token 对（滚动刷新）
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout 将当前 access token 加入黑名单
	Logout(ctx context.Context, claims *jwt.Claims) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	// Bootstrap 在启动时确保演示账号存在
	Bootstrap(ctx context.Context) error
}

// TokenBlacklist Logout 所需的黑名单写入能力（由 pkg/redis.Client 提供）
type TokenBlacklist interface {
	BlacklistToken(ctx context.Context, jti string, ttl time.Duration) error
}

// authService AuthService 实现
type authService struct {
	userRepo   repository.UserRepository
	jwtManager *jwt.Manager
	blacklist  TokenBlacklist // 可为 nil（未配置 Redis 时降级为无黑名单）
	cfg        *config.Config
	logger     *zap.Logger
}

// NewAuthService 创建认证服务
func NewAuthService(
	userRepo repository.UserRepository,
	jwtManager *jwt.Manager,
	blacklist TokenBlacklist,
	cfg *config.Config,
	logger *zap.Logger,
) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		blacklist:  blacklist,
		cfg:        cfg,
		logger:     logger,
	}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// 不区分用户不存在与密码错误，避免账号枚举
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.String("username", req.Username), zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	resp, err := s.issueTokens(user, req.RememberMe)
	if err != nil {
		return nil, err
	}

	s.logger.Info("用户登录成功",
		zap.String("username", user.Username),
		zap.String("role", user.Role),
	)
	return resp, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtManager.ParseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefresh
	}
	if claims.TokenType != "refresh" {
		return nil, ErrInvalidRefresh
	}

	// 重新读库，保证改名/改角色后的新 Token 携带最新信息
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	return s.issueTokens(user, claims.RememberMe)
}

func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.blacklist == nil || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.blacklist.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("写入 Token 黑名单失败", zap.String("jti", claims.ID), zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.OldPassword)); err != nil {
		return ErrWrongOldPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)

	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.logger.Info("用户修改密码", zap.String("username", user.Username))
	return nil
}

// Bootstrap 确保演示账号存在（幂等）
// 生产部署应通过环境变量覆盖默认口令后再暴露服务
func (s *authService) Bootstrap(ctx context.Context) error {
	seeds := []struct {
		username, password, name, unit, role string
	}{
		{"admin", "thegodlyadmin", "Building Manager", "", model.RoleAdmin},
		{"resident", "powerlessresident", "John Resident", "101", model.RoleResident},
	}

	for _, seed := range seeds {
		_, err := s.userRepo.GetByUsername(ctx, seed.username)
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &model.User{
			Username:     seed.username,
			PasswordHash: string(hash),
			Name:         seed.name,
			Unit:         seed.unit,
			Role:         seed.role,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return err
		}
		s.logger.Info("已创建演示账号", zap.String("username", seed.username), zap.String("role", seed.role))
	}
	return nil
}

// issueTokens 为用户签发 access + refresh Token 对
func (s *authService) issueTokens(user *model.User, rememberMe bool) (*dto.TokenResponse, error) {
	id := jwt.Identity{
		UserID:   user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Role:     user.Role,
	}

	accessToken, err := s.jwtManager.GenerateAccessToken(id)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.jwtManager.GenerateRefreshToken(id, rememberMe)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         toUserResponse(user),
	}, nil
}

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:       user.UserID,
		Username: user.Username,
		Name:     user.Name,
		Unit:     user.Unit,
		Role:     user.Role,
	}
}
