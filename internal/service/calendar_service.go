package service

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"
	"go.uber.org/zap"

	"resihub/backend/internal/repository"
)

// CalendarService 预订日历订阅服务接口
// 把已接受的设施预订生成 iCalendar 订阅源：住户看到自己的预订，
// 管理员看到全部
type CalendarService interface {
	BookingCalendar(ctx context.Context, actor Actor) (string, error)
}

type calendarService struct {
	bookingRepo repository.AmenityBookingRepository
	logger      *zap.Logger
}

// NewCalendarService 创建日历服务
func NewCalendarService(bookingRepo repository.AmenityBookingRepository, logger *zap.Logger) CalendarService {
	return &calendarService{bookingRepo: bookingRepo, logger: logger}
}

func (s *calendarService) BookingCalendar(ctx context.Context, actor Actor) (string, error) {
	filterResident := actor.Username
	if actor.IsAdmin() {
		filterResident = "" // 管理员订阅全量日历
	}

	bookings, err := s.bookingRepo.ListApproved(ctx, filterResident)
	if err != nil {
		return "", err
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//ResiHub//Amenity Bookings//EN")
	cal.SetName("Amenity Bookings")

	for i := range bookings {
		b := &bookings[i]
		start, end, err := bookingInterval(b)
		if err != nil {
			s.logger.Warn("跳过无法解析的预订记录",
				zap.String("booking_id", b.BookingID),
				zap.Error(err),
			)
			continue
		}

		event := cal.AddEvent(fmt.Sprintf("%s@resihub", b.BookingID))
		event.SetCreatedTime(b.CreatedAt)
		event.SetModifiedAt(b.UpdatedAt)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(b.Amenity)
		event.SetLocation(b.Amenity)
		event.SetDescription(fmt.Sprintf("Booked by %s", b.ResidentName))
	}

	return cal.Serialize(), nil
}
