package service

import (
	"go.uber.org/zap"

	"resihub/backend/config"
	"resihub/backend/internal/repository"
	"resihub/backend/pkg/jwt"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth           AuthService
	VisitorRequest VisitorRequestService
	AmenityBooking AmenityBookingService
	Announcement   AnnouncementService
	ContactInfo    ContactInfoService
	MeetingMinute  MeetingMinuteService
	GatePass       GatePassService
	Export         ExportService
	Calendar       CalendarService
}

// NewService 创建 Service 聚合
// blacklist 可为 nil（未配置 Redis 时登出降级为客户端丢弃 Token）
func NewService(
	repo *repository.Repository,
	jwtManager *jwt.Manager,
	blacklist TokenBlacklist,
	cfg *config.Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:           NewAuthService(repo.User, jwtManager, blacklist, cfg, logger),
		VisitorRequest: NewVisitorRequestService(repo.VisitorRequest, cfg, logger),
		AmenityBooking: NewAmenityBookingService(repo.AmenityBooking, cfg, logger),
		Announcement:   NewAnnouncementService(repo.Announcement, logger),
		ContactInfo:    NewContactInfoService(repo.ContactInfo, logger),
		MeetingMinute:  NewMeetingMinuteService(repo.MeetingMinute, cfg, logger),
		GatePass:       NewGatePassService(repo.GatePass, cfg, logger),
		Export:         NewExportService(repo.VisitorRequest, repo.AmenityBooking, logger),
		Calendar:       NewCalendarService(repo.AmenityBooking, logger),
	}
}
