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

// 设施预订业务错误
var (
	ErrBookingNotFound = errors.New("预订记录不存在")
	ErrUnknownAmenity  = errors.New("未知的设施")
	ErrDurationTooLong = errors.New("预订时长超出限制")
)

// AmenityBookingService 设施预订服务接口
type AmenityBookingService interface {
	// Submit 住户提交预订；冲突检查与插入在仓储层同一串行化事务内完成
	Submit(ctx context.Context, actor Actor, req *dto.SubmitBookingRequest) (*dto.BookingResponse, error)
	// Review 管理员改判状态；status 兼容 accepted/approved 两种写法
	Review(ctx context.Context, actor Actor, id string, req *dto.ReviewBookingRequest) (*dto.BookingResponse, error)
	// Remove 管理员删任意记录；住户只能删本人 pending 记录
	Remove(ctx context.Context, actor Actor, id string) error
	// List 先清理过期记录，再按角色返回可见范围
	List(ctx context.Context, actor Actor) ([]dto.BookingResponse, error)
	// Amenities 可预订的设施目录
	Amenities() []string
}

// amenityBookingService AmenityBookingService 实现
type amenityBookingService struct {
	repo   repository.AmenityBookingRepository
	cfg    *config.Config
	logger *zap.Logger
}

// NewAmenityBookingService 创建设施预订服务
func NewAmenityBookingService(repo repository.AmenityBookingRepository, cfg *config.Config, logger *zap.Logger) AmenityBookingService {
	return &amenityBookingService{repo: repo, cfg: cfg, logger: logger}
}

func (s *amenityBookingService) Submit(ctx context.Context, actor Actor, req *dto.SubmitBookingRequest) (*dto.BookingResponse, error) {
	// 预订只对住户开放，管理员走审核入口
	if actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if !s.knownAmenity(req.Amenity) {
		return nil, ErrUnknownAmenity
	}
	if req.DurationHours > s.cfg.Booking.MaxDurationHours {
		return nil, ErrDurationTooLong
	}

	start, err := parseStartInstant(req.BookingDate, req.BookingTime)
	if err != nil {
		return nil, err
	}
	if start.Before(time.Now()) {
		return nil, ErrPastStartTime
	}
	duration := time.Duration(req.DurationHours) * time.Hour

	booking := &model.AmenityBooking{
		ResidentUsername: actor.Username,
		ResidentName:     actor.Name,
		Amenity:          req.Amenity,
		BookingDate:      req.BookingDate,
		BookingTime:      req.BookingTime,
		DurationHours:    req.DurationHours,
		Status:           model.StatusPending,
	}

	err = s.repo.CreateChecked(ctx, booking, func(existing []model.AmenityBooking) bool {
		return hasBookingConflict(start, duration, existing)
	})
	if err != nil {
		// ErrBookingConflict 原样透传给 Handler 映射为 400
		return nil, err
	}

	s.logger.Info("住户提交设施预订",
		zap.String("booking_id", booking.BookingID),
		zap.String("resident", actor.Username),
		zap.String("amenity", booking.Amenity),
		zap.String("date", booking.BookingDate),
	)
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *amenityBookingService) Review(ctx context.Context, actor Actor, id string, req *dto.ReviewBookingRequest) (*dto.BookingResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	status, err := parseReviewStatus(req.Status)
	if err != nil {
		return nil, err
	}

	booking, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	booking.Status = status
	booking.AdminNotes = req.Notes
	if err := s.repo.Update(ctx, booking); err != nil {
		return nil, err
	}

	s.logger.Info("管理员审核设施预订",
		zap.String("booking_id", id),
		zap.String("status", string(status)),
		zap.String("reviewer", actor.Username),
	)
	resp := toBookingResponse(booking)
	return &resp, nil
}

func (s *amenityBookingService) Remove(ctx context.Context, actor Actor, id string) error {
	var (
		rows int64
		err  error
	)
	if actor.IsAdmin() {
		rows, err = s.repo.Delete(ctx, id)
	} else {
		rows, err = s.repo.DeleteOwnedPending(ctx, id, actor.Username)
	}
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrBookingNotFound
	}

	s.logger.Info("删除设施预订", zap.String("booking_id", id), zap.String("operator", actor.Username))
	return nil
}

func (s *amenityBookingService) List(ctx context.Context, actor Actor) ([]dto.BookingResponse, error) {
	before := time.Now().Add(-s.cfg.Booking.Retention)
	if purged, err := s.repo.PurgeExpired(ctx, before); err != nil {
		// 清理失败不阻塞本次查询，过期记录留待下次列表时再清
		s.logger.Error("清理过期设施预订失败", zap.Error(err))
	} else if purged > 0 {
		s.logger.Info("清理过期设施预订", zap.Int64("purged", purged))
	}

	var (
		list []model.AmenityBooking
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

	resps := make([]dto.BookingResponse, 0, len(list))
	for i := range list {
		resps = append(resps, toBookingResponse(&list[i]))
	}
	return resps, nil
}

func (s *amenityBookingService) Amenities() []string {
	return s.cfg.Booking.Amenities
}

func (s *amenityBookingService) knownAmenity(name string) bool {
	for _, a := range s.cfg.Booking.Amenities {
		if a == name {
			return true
		}
	}
	return false
}

// presentBookingStatus 设施预订对外把 approved 呈现为 accepted
func presentBookingStatus(status model.ReviewStatus) string {
	if status == model.StatusApproved {
		return "accepted"
	}
	return string(status)
}

func toBookingResponse(b *model.AmenityBooking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:               b.BookingID,
		ResidentUsername: b.ResidentUsername,
		ResidentName:     b.ResidentName,
		Amenity:          b.Amenity,
		BookingDate:      b.BookingDate,
		BookingTime:      b.BookingTime,
		DurationHours:    b.DurationHours,
		Status:           presentBookingStatus(b.Status),
		AdminNotes:       b.AdminNotes,
		CreatedAt:        formatTimestamp(b.CreatedAt),
		UpdatedAt:        formatTimestamp(b.UpdatedAt),
	}
}
