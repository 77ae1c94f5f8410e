package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
	"resihub/backend/internal/repository"
)

// ErrAnnouncementNotFound 公告不存在
var ErrAnnouncementNotFound = errors.New("公告不存在")

// AnnouncementService 楼宇公告服务接口
// 读操作对所有已登录用户开放，写操作仅管理员
type AnnouncementService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context) ([]dto.AnnouncementResponse, error)
}

type announcementService struct {
	repo   repository.AnnouncementRepository
	logger *zap.Logger
}

// NewAnnouncementService 创建公告服务
func NewAnnouncementService(repo repository.AnnouncementRepository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) Create(ctx context.Context, actor Actor, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	a := &model.Announcement{
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
		Important: req.Important,
	}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info("发布公告", zap.String("announcement_id", a.AnnouncementID), zap.String("title", a.Title))
	resp := toAnnouncementResponse(a)
	return &resp, nil
}

func (s *announcementService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Content != nil {
		a.Content = *req.Content
	}
	if req.Category != nil {
		a.Category = *req.Category
	}
	if req.Important != nil {
		a.Important = *req.Important
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	resp := toAnnouncementResponse(a)
	return &resp, nil
}

func (s *announcementService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrAnnouncementNotFound
	}

	s.logger.Info("删除公告", zap.String("announcement_id", id), zap.String("operator", actor.Username))
	return nil
}

func (s *announcementService) List(ctx context.Context) ([]dto.AnnouncementResponse, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.AnnouncementResponse, 0, len(list))
	for i := range list {
		resps = append(resps, toAnnouncementResponse(&list[i]))
	}
	return resps, nil
}

func toAnnouncementResponse(a *model.Announcement) dto.AnnouncementResponse {
	return dto.AnnouncementResponse{
		ID:        a.AnnouncementID,
		Title:     a.Title,
		Content:   a.Content,
		Category:  a.Category,
		Important: a.Important,
		CreatedAt: formatTimestamp(a.CreatedAt),
		UpdatedAt: formatTimestamp(a.UpdatedAt),
	}
}
