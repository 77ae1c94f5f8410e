package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
)

func setupTestGatePassService() (GatePassService, *mockGatePassRepo) {
	repo := newMockGatePassRepo()
	svc := NewGatePassService(repo, testConfig(), zap.NewNop())
	return svc, repo
}

func TestGatePassRegister_Success(t *testing.T) {
	svc, _ := setupTestGatePassService()

	resp, err := svc.Register(context.Background(), adminActor(), &dto.RegisterGatePassRequest{
		VisitorName: "Alice Visitor",
		HostUnit:    "101",
		Purpose:     "拜访亲友",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	if len(resp.PassCode) != 6 {
		t.Errorf("通行码应为 6 位，实际 %q", resp.PassCode)
	}
	for _, c := range resp.PassCode {
		if c < '0' || c > '9' {
			t.Errorf("通行码应为纯数字，实际 %q", resp.PassCode)
			break
		}
	}
	if resp.ValidUntil == "" {
		t.Error("ValidUntil 不应为空")
	}
}

func TestGatePassRegister_NonAdminForbidden(t *testing.T) {
	svc, _ := setupTestGatePassService()

	_, err := svc.Register(context.Background(), residentActor(), &dto.RegisterGatePassRequest{
		VisitorName: "Alice Visitor",
		HostUnit:    "101",
		Purpose:     "拜访亲友",
	})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("期望 ErrForbidden，实际: %v", err)
	}
}

func TestGatePassListValid_PurgesExpired(t *testing.T) {
	svc, repo := setupTestGatePassService()

	expired := &model.GatePass{
		PassID:      "gp-expired",
		PassCode:    "123456",
		VisitorName: "Old Visitor",
		HostUnit:    "202",
		Purpose:     "历史记录",
		ValidUntil:  time.Now().Add(-1 * time.Hour),
	}
	repo.passes[expired.PassID] = expired

	if _, err := svc.Register(context.Background(), adminActor(), &dto.RegisterGatePassRequest{
		VisitorName: "Alice Visitor",
		HostUnit:    "101",
		Purpose:     "拜访亲友",
	}); err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	list, err := svc.ListValid(context.Background(), adminActor())
	if err != nil {
		t.Fatalf("ListValid 应成功: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("过期通行码应被清理，期望 1 条，实际 %d 条", len(list))
	}
	if _, ok := repo.passes["gp-expired"]; ok {
		t.Error("过期通行码应已从存储中删除")
	}
}

func TestGeneratePassCode_Range(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generatePassCode()
		if err != nil {
			t.Fatalf("generatePassCode 应成功: %v", err)
		}
		if len(code) != 6 || code[0] == '0' {
			t.Fatalf("通行码应为 100000-999999 的 6 位数字，实际 %q", code)
		}
	}
}
