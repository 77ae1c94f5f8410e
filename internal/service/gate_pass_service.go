package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"go.uber.org/zap"

	"resihub/backend/config"
	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
	"resihub/backend/internal/repository"
)

// GatePassService 门岗访客通行码服务接口
// 门岗登记访客后签发 6 位数字通行码，默认 24 小时内有效
type GatePassService interface {
	Register(ctx context.Context, actor Actor, req *dto.RegisterGatePassRequest) (*dto.GatePassResponse, error)
	// ListValid 管理员查看当前有效的通行码，查询前先清理过期记录
	ListValid(ctx context.Context, actor Actor) ([]dto.GatePassResponse, error)
}

type gatePassService struct {
	repo   repository.GatePassRepository
	cfg    *config.Config
	logger *zap.Logger
}

// NewGatePassService 创建通行码服务
func NewGatePassService(repo repository.GatePassRepository, cfg *config.Config, logger *zap.Logger) GatePassService {
	return &gatePassService{repo: repo, cfg: cfg, logger: logger}
}

func (s *gatePassService) Register(ctx context.Context, actor Actor, req *dto.RegisterGatePassRequest) (*dto.GatePassResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	code, err := generatePassCode()
	if err != nil {
		return nil, err
	}

	p := &model.GatePass{
		PassCode:         code,
		VisitorName:      req.VisitorName,
		HostUnit:         req.HostUnit,
		Purpose:          req.Purpose,
		ArrivalTime:      req.ArrivalTime,
		ExpectedDuration: req.ExpectedDuration,
		ValidUntil:       time.Now().Add(s.cfg.Booking.GatePassTTL),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.logger.Info("门岗登记访客",
		zap.String("pass_id", p.PassID),
		zap.String("host_unit", p.HostUnit),
		zap.String("operator", actor.Username),
	)
	resp := toGatePassResponse(p)
	return &resp, nil
}

func (s *gatePassService) ListValid(ctx context.Context, actor Actor) ([]dto.GatePassResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	now := time.Now()
	if purged, err := s.repo.PurgeExpired(ctx, now); err != nil {
		s.logger.Error("清理过期通行码失败", zap.Error(err))
	} else if purged > 0 {
		s.logger.Info("清理过期通行码", zap.Int64("purged", purged))
	}

	list, err := s.repo.ListValid(ctx, now)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.GatePassResponse, 0, len(list))
	for i := range list {
		resps = append(resps, toGatePassResponse(&list[i]))
	}
	return resps, nil
}

// generatePassCode 生成 100000-999999 的随机 6 位通行码
func generatePassCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func toGatePassResponse(p *model.GatePass) dto.GatePassResponse {
	return dto.GatePassResponse{
		PassCode:     p.PassCode,
		VisitorName:  p.VisitorName,
		HostUnit:     p.HostUnit,
		RegisteredAt: formatTimestamp(p.CreatedAt),
		ValidUntil:   formatTimestamp(p.ValidUntil),
	}
}
