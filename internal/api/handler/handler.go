package handler

import "resihub/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth           *AuthHandler
	VisitorRequest *VisitorRequestHandler
	AmenityBooking *AmenityBookingHandler
	Announcement   *AnnouncementHandler
	ContactInfo    *ContactInfoHandler
	MeetingMinute  *MeetingMinuteHandler
	GatePass       *GatePassHandler
	Building       *BuildingHandler
	Export         *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:           NewAuthHandler(svc.Auth),
		VisitorRequest: NewVisitorRequestHandler(svc.VisitorRequest),
		AmenityBooking: NewAmenityBookingHandler(svc.AmenityBooking, svc.Calendar),
		Announcement:   NewAnnouncementHandler(svc.Announcement),
		ContactInfo:    NewContactInfoHandler(svc.ContactInfo),
		MeetingMinute:  NewMeetingMinuteHandler(svc.MeetingMinute),
		GatePass:       NewGatePassHandler(svc.GatePass),
		Building:       NewBuildingHandler(),
		Export:         NewExportHandler(svc.Export),
	}
}
