package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
	"resihub/backend/pkg/jwt"
)

func setupTestAuthService() (AuthService, *mockUserRepo) {
	cfg := testConfig()
	userRepo := newMockUserRepo()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(userRepo, jwtMgr, nil, cfg, zap.NewNop())
	return svc, userRepo
}

func createTestUser(userRepo *mockUserRepo, username, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Name:         "测试用户",
		Unit:         "101",
		Role:         role,
	}
	userRepo.users[username] = user
	userRepo.users[user.UserID] = user
	return user
}

// ── 登录测试 ──

func TestLogin_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "resident", "password123", model.RoleResident)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "resident",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Login 应成功，但返回错误: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken 不应为空")
	}
	if result.User.Username != "resident" {
		t.Errorf("期望 Username=resident，实际=%s", result.User.Username)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "resident", "password123", model.RoleResident)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "resident",
		Password: "wrong_password",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nonexistent",
		Password: "password123",
	})

	// 用户不存在与密码错误返回同一错误，避免账号枚举
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── 刷新测试 ──

func TestRefresh_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "resident", "password123", model.RoleResident)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "resident",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}

	result, err := svc.Refresh(context.Background(), login.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh 应成功: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Error("刷新后应返回新的 Token 对")
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "resident", "password123", model.RoleResident)

	login, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "resident",
		Password: "password123",
	})

	// access token 不能当 refresh token 用
	_, err := svc.Refresh(context.Background(), login.AccessToken)
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

func TestRefresh_GarbageToken(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	if !errors.Is(err, ErrInvalidRefresh) {
		t.Errorf("期望 ErrInvalidRefresh，实际: %v", err)
	}
}

// ── 修改密码测试 ──

func TestChangePassword_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	user := createTestUser(userRepo, "resident", "oldpassword", model.RoleResident)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "oldpassword",
		NewPassword: "newpassword123",
	})
	if err != nil {
		t.Fatalf("ChangePassword 应成功: %v", err)
	}

	// 旧密码失效，新密码可登录
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "resident", Password: "oldpassword",
	}); !errors.Is(err, ErrInvalidCredentials) {
		t.Error("旧密码应已失效")
	}
	if _, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "resident", Password: "newpassword123",
	}); err != nil {
		t.Errorf("新密码应可登录: %v", err)
	}
}

func TestChangePassword_WrongOldPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	user := createTestUser(userRepo, "resident", "oldpassword", model.RoleResident)

	err := svc.ChangePassword(context.Background(), user.UserID, &dto.ChangePasswordRequest{
		OldPassword: "wrong",
		NewPassword: "newpassword123",
	})
	if !errors.Is(err, ErrWrongOldPassword) {
		t.Errorf("期望 ErrWrongOldPassword，实际: %v", err)
	}
}

// ── Bootstrap 测试 ──

func TestBootstrap_SeedsDemoAccounts(t *testing.T) {
	svc, userRepo := setupTestAuthService()

	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("Bootstrap 应成功: %v", err)
	}

	admin, ok := userRepo.users["admin"]
	if !ok {
		t.Fatal("Bootstrap 后应存在 admin 账号")
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("admin 角色期望 %s，实际 %s", model.RoleAdmin, admin.Role)
	}
	if _, ok := userRepo.users["resident"]; !ok {
		t.Fatal("Bootstrap 后应存在 resident 账号")
	}
}

func TestBootstrap_Idempotent(t *testing.T) {
	svc, userRepo := setupTestAuthService()

	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("第一次 Bootstrap 应成功: %v", err)
	}
	firstHash := userRepo.users["admin"].PasswordHash

	if err := svc.Bootstrap(context.Background()); err != nil {
		t.Fatalf("第二次 Bootstrap 应成功: %v", err)
	}
	if userRepo.users["admin"].PasswordHash != firstHash {
		t.Error("重复 Bootstrap 不应重置已有账号")
	}
}

// ── 当前用户测试 ──

func TestGetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.GetCurrentUser(context.Background(), "no-such-user")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
