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

// 联系方式模块业务错误
var (
	ErrContactNotFound = errors.New("联系方式记录不存在")
	ErrContactExists   = errors.New("该用户名已有联系方式记录")
)

// ContactInfoService 住户联系方式目录服务接口
// 维护仅管理员；管理员可查全部目录，住户只能看到本人记录
type ContactInfoService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateContactInfoRequest) (*dto.ContactInfoResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateContactInfoRequest) (*dto.ContactInfoResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context, actor Actor) ([]dto.ContactInfoResponse, error)
}

type contactInfoService struct {
	repo   repository.ContactInfoRepository
	logger *zap.Logger
}

// NewContactInfoService 创建联系方式服务
func NewContactInfoService(repo repository.ContactInfoRepository, logger *zap.Logger) ContactInfoService {
	return &contactInfoService{repo: repo, logger: logger}
}

func (s *contactInfoService) Create(ctx context.Context, actor Actor, req *dto.CreateContactInfoRequest) (*dto.ContactInfoResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	// username 每户一条
	if _, err := s.repo.GetByUsername(ctx, req.Username); err == nil {
		return nil, ErrContactExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	c := &model.ContactInfo{
		Username:    req.Username,
		Unit:        req.Unit,
		OwnerName:   req.OwnerName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	s.logger.Info("新建住户联系方式", zap.String("contact_id", c.ContactID), zap.String("unit", c.Unit))
	resp := toContactInfoResponse(c)
	return &resp, nil
}

func (s *contactInfoService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateContactInfoRequest) (*dto.ContactInfoResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, err
	}

	if req.Unit != nil {
		c.Unit = *req.Unit
	}
	if req.OwnerName != nil {
		c.OwnerName = *req.OwnerName
	}
	if req.PhoneNumber != nil {
		c.PhoneNumber = *req.PhoneNumber
	}
	if req.Email != nil {
		c.Email = *req.Email
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}

	resp := toContactInfoResponse(c)
	return &resp, nil
}

func (s *contactInfoService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrContactNotFound
	}

	s.logger.Info("删除住户联系方式", zap.String("contact_id", id), zap.String("operator", actor.Username))
	return nil
}

func (s *contactInfoService) List(ctx context.Context, actor Actor) ([]dto.ContactInfoResponse, error) {
	if !actor.IsAdmin() {
		// 住户只能看到本人记录；没有记录时返回空列表
		c, err := s.repo.GetByUsername(ctx, actor.Username)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []dto.ContactInfoResponse{}, nil
			}
			return nil, err
		}
		return []dto.ContactInfoResponse{toContactInfoResponse(c)}, nil
	}

	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.ContactInfoResponse, 0, len(list))
	for i := range list {
		resps = append(resps, toContactInfoResponse(&list[i]))
	}
	return resps, nil
}

func toContactInfoResponse(c *model.ContactInfo) dto.ContactInfoResponse {
	return dto.ContactInfoResponse{
		ID:          c.ContactID,
		Username:    c.Username,
		Unit:        c.Unit,
		OwnerName:   c.OwnerName,
		PhoneNumber: c.PhoneNumber,
		Email:       c.Email,
		CreatedAt:   formatTimestamp(c.CreatedAt),
		UpdatedAt:   formatTimestamp(c.UpdatedAt),
	}
}
