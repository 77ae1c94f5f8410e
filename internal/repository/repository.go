package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User           UserRepository
	VisitorRequest VisitorRequestRepository
	AmenityBooking AmenityBookingRepository
	Announcement   AnnouncementRepository
	ContactInfo    ContactInfoRepository
	MeetingMinute  MeetingMinuteRepository
	GatePass       GatePassRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:           NewUserRepo(db),
		VisitorRequest: NewVisitorRequestRepo(db),
		AmenityBooking: NewAmenityBookingRepo(db),
		Announcement:   NewAnnouncementRepo(db),
		ContactInfo:    NewContactInfoRepo(db),
		MeetingMinute:  NewMeetingMinuteRepo(db),
		GatePass:       NewGatePassRepo(db),
	}
}
