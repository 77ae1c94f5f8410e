package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"resihub/backend/internal/model"
	"resihub/backend/internal/repository"
)

// ExportService 管理报表导出服务接口
// 把访客申请与设施预订汇总为一份 Excel 工作簿，供物业委员会归档
type ExportService interface {
	ExportRequests(ctx context.Context, actor Actor) (*bytes.Buffer, string, error)
}

type exportService struct {
	visitorRepo repository.VisitorRequestRepository
	bookingRepo repository.AmenityBookingRepository
	logger      *zap.Logger
}

// NewExportService 创建导出服务
func NewExportService(
	visitorRepo repository.VisitorRequestRepository,
	bookingRepo repository.AmenityBookingRepository,
	logger *zap.Logger,
) ExportService {
	return &exportService{
		visitorRepo: visitorRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

const (
	sheetVisitors = "Visitor Requests"
	sheetBookings = "Amenity Bookings"
)

func (s *exportService) ExportRequests(ctx context.Context, actor Actor) (*bytes.Buffer, string, error) {
	if !actor.IsAdmin() {
		return nil, "", ErrForbidden
	}

	requests, err := s.visitorRepo.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}
	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.Warn("关闭 Excel 文件失败", zap.Error(err))
		}
	}()

	if err := writeVisitorSheet(f, requests); err != nil {
		return nil, "", err
	}
	if err := writeBookingSheet(f, bookings); err != nil {
		return nil, "", err
	}

	// 删除 excelize 默认创建的 Sheet1
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("building_requests_%s.xlsx", time.Now().Format("20060102"))
	s.logger.Info("导出申请汇总",
		zap.String("filename", filename),
		zap.Int("visitor_requests", len(requests)),
		zap.Int("amenity_bookings", len(bookings)),
	)
	return buf, filename, nil
}

func writeVisitorSheet(f *excelize.File, requests []model.VisitorRequest) error {
	if _, err := f.NewSheet(sheetVisitors); err != nil {
		return err
	}

	headers := []interface{}{
		"ID", "Resident", "Visitor", "Phone", "Visit Date", "Visit Time",
		"Purpose", "Status", "Committee Notes", "Submitted At",
	}
	if err := f.SetSheetRow(sheetVisitors, "A1", &headers); err != nil {
		return err
	}

	for i := range requests {
		r := &requests[i]
		row := []interface{}{
			r.RequestID, r.ResidentName, r.VisitorName, r.VisitorPhone,
			r.VisitDate, r.VisitTime, r.Purpose, string(r.Status),
			r.CommitteeNotes, formatTimestamp(r.CreatedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetVisitors, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeBookingSheet(f *excelize.File, bookings []model.AmenityBooking) error {
	if _, err := f.NewSheet(sheetBookings); err != nil {
		return err
	}

	headers := []interface{}{
		"ID", "Resident", "Amenity", "Date", "Time", "Duration (hours)",
		"Status", "Admin Notes", "Submitted At",
	}
	if err := f.SetSheetRow(sheetBookings, "A1", &headers); err != nil {
		return err
	}

	for i := range bookings {
		b := &bookings[i]
		row := []interface{}{
			b.BookingID, b.ResidentName, b.Amenity, b.BookingDate, b.BookingTime,
			b.DurationHours, presentBookingStatus(b.Status),
			b.AdminNotes, formatTimestamp(b.CreatedAt),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetBookings, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
