package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"resihub/backend/config"
	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
	"resihub/backend/internal/repository"
)

// ErrRequestNotFound 访客申请不存在（或对当前操作者不可删除）
var ErrRequestNotFound = errors.New("访客申请不存在")

// VisitorRequestService 访客申请服务接口
type VisitorRequestService interface {
	Submit(ctx context.Context, actor Actor, req *dto.SubmitVisitorRequestRequest) (*dto.VisitorRequestResponse, error)
	// Review 管理员改判状态，可在 pending/approved/rejected 间反复流转
	Review(ctx context.Context, actor Actor, id string, req *dto.ReviewVisitorRequestRequest) (*dto.VisitorRequestResponse, error)
	// Remove 管理员删任意记录；住户只能删本人 pending 记录
	Remove(ctx context.Context, actor Actor, id string) error
	// List 先清理过期记录，再按角色返回可见范围
	List(ctx context.Context, actor Actor) ([]dto.VisitorRequestResponse, error)
}

// visitorRequestService VisitorRequestService 实现
type visitorRequestService struct {
	repo   repository.VisitorRequestRepository
	cfg    *config.Config
	logger *zap.Logger
}

// NewVisitorRequestService 创建访客申请服务
func NewVisitorRequestService(repo repository.VisitorRequestRepository, cfg *config.Config, logger *zap.Logger) VisitorRequestService {
	return &visitorRequestService{repo: repo, cfg: cfg, logger: logger}
}

func (s *visitorRequestService) Submit(ctx context.Context, actor Actor, req *dto.SubmitVisitorRequestRequest) (*dto.VisitorRequestResponse, error) {
	start, err := parseStartInstant(req.VisitDate, req.VisitTime)
	if err != nil {
		return nil, err
	}
	if start.Before(time.Now()) {
		return nil, ErrPastStartTime
	}

	vr := &model.VisitorRequest{
		ResidentUsername: actor.Username,
		ResidentName:     actor.Name,
		VisitorName:      req.VisitorName,
		VisitorPhone:     req.VisitorPhone,
		VisitDate:        req.VisitDate,
		VisitTime:        req.VisitTime,
		Purpose:          req.Purpose,
		Status:           model.StatusPending,
	}
	if err := s.repo.Create(ctx, vr); err != nil {
		s.logger.Error("创建访客申请失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("住户提交访客申请",
		zap.String("request_id", vr.RequestID),
		zap.String("resident", actor.Username),
		zap.String("visit_date", vr.VisitDate),
	)
	resp := toVisitorRequestResponse(vr)
	return &resp, nil
}

func (s *visitorRequestService) Review(ctx context.Context, actor Actor, id string, req *dto.ReviewVisitorRequestRequest) (*dto.VisitorRequestResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	status, err := parseReviewStatus(req.Status)
	if err != nil {
		return nil, err
	}

	vr, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}

	vr.Status = status
	vr.CommitteeNotes = req.Notes
	if err := s.repo.Update(ctx, vr); err != nil {
		return nil, err
	}

	s.logger.Info("管理员审核访客申请",
		zap.String("request_id", id),
		zap.String("status", string(status)),
		zap.String("reviewer", actor.Username),
	)
	resp := toVisitorRequestResponse(vr)
	return &resp, nil
}

func (s *visitorRequestService) Remove(ctx context.Context, actor Actor, id string) error {
	var (
		rows int64
		err  error
	)
	if actor.IsAdmin() {
		rows, err = s.repo.Delete(ctx, id)
	} else {
		// 住户路径把所有权和状态约束下推到 WHERE 条件里，
		// 非本人或已审核的记录一律表现为不存在
		rows, err = s.repo.DeleteOwnedPending(ctx, id, actor.Username)
	}
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrRequestNotFound
	}

	s.logger.Info("删除访客申请", zap.String("request_id", id), zap.String("operator", actor.Username))
	return nil
}

func (s *visitorRequestService) List(ctx context.Context, actor Actor) ([]dto.VisitorRequestResponse, error) {
	// 读时清理：超过保留期的记录在每次列表查询前删除
	before := time.Now().Add(-s.cfg.Booking.Retention)
	if purged, err := s.repo.PurgeExpired(ctx, before); err != nil {
		// 清理失败不阻塞本次查询，过期记录留待下次列表时再清
		s.logger.Error("清理过期访客申请失败", zap.Error(err))
	} else if purged > 0 {
		s.logger.Info("清理过期访客申请", zap.Int64("purged", purged))
	}

	var (
		list []model.VisitorRequest
		err  error
	)
	if actor.IsAdmin() {
		list, err = s.repo.ListAll(ctx)
	} else {
		list, err = s.repo.ListByResident(ctx, actor.Username)
	}
	if err != nil {
		return nil, err
	}

	resps := make([]dto.VisitorRequestResponse, 0, len(list))
	for i := range list {
		resps = append(resps, toVisitorRequestResponse(&list[i]))
	}
	return resps, nil
}

func toVisitorRequestResponse(vr *model.VisitorRequest) dto.VisitorRequestResponse {
	return dto.VisitorRequestResponse{
		ID:               vr.RequestID,
		ResidentUsername: vr.ResidentUsername,
		ResidentName:     vr.ResidentName,
		VisitorName:      vr.VisitorName,
		VisitorPhone:     vr.VisitorPhone,
		VisitDate:        vr.VisitDate,
		VisitTime:        vr.VisitTime,
		Purpose:          vr.Purpose,
		Status:           string(vr.Status),
		CommitteeNotes:   vr.CommitteeNotes,
		CreatedAt:        formatTimestamp(vr.CreatedAt),
		UpdatedAt:        formatTimestamp(vr.UpdatedAt),
	}
}
