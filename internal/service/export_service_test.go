package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"resihub/backend/internal/model"
)

func setupTestExportService() (ExportService, *mockVisitorRequestRepo, *mockAmenityBookingRepo) {
	visitorRepo := newMockVisitorRequestRepo()
	bookingRepo := newMockAmenityBookingRepo()
	svc := NewExportService(visitorRepo, bookingRepo, zap.NewNop())
	return svc, visitorRepo, bookingRepo
}

func TestExportRequests_NonAdminForbidden(t *testing.T) {
	svc, _, _ := setupTestExportService()

	_, _, err := svc.ExportRequests(context.Background(), residentActor())
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("期望 ErrForbidden，实际: %v", err)
	}
}

func TestExportRequests_Workbook(t *testing.T) {
	svc, visitorRepo, bookingRepo := setupTestExportService()

	visitorRepo.requests["vr-1"] = &model.VisitorRequest{
		RequestID:        "vr-1",
		ResidentUsername: "resident",
		ResidentName:     "John Resident",
		VisitorName:      "Alice Visitor",
		VisitorPhone:     "0400000000",
		VisitDate:        "2030-06-15",
		VisitTime:        "14:00",
		Purpose:          "家庭聚会",
		Status:           model.StatusApproved,
	}
	bookingRepo.bookings["bk-1"] = &model.AmenityBooking{
		BookingID:        "bk-1",
		ResidentUsername: "resident",
		ResidentName:     "John Resident",
		Amenity:          "Gym",
		BookingDate:      "2030-06-15",
		BookingTime:      "10:00",
		DurationHours:    2,
		Status:           model.StatusApproved,
	}

	buf, filename, err := svc.ExportRequests(context.Background(), adminActor())
	if err != nil {
		t.Fatalf("ExportRequests 应成功: %v", err)
	}
	if !strings.HasPrefix(filename, "building_requests_") || !strings.HasSuffix(filename, ".xlsx") {
		t.Errorf("文件名格式不符: %s", filename)
	}

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("导出内容应为合法的 Excel 工作簿: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("期望 2 个工作表，实际 %d 个: %v", len(sheets), sheets)
	}

	visitorName, err := f.GetCellValue(sheetVisitors, "C2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if visitorName != "Alice Visitor" {
		t.Errorf("访客表第一行期望 Alice Visitor，实际 %q", visitorName)
	}

	// 设施预订状态导出为对外写法
	status, err := f.GetCellValue(sheetBookings, "G2")
	if err != nil {
		t.Fatalf("读取单元格失败: %v", err)
	}
	if status != "accepted" {
		t.Errorf("预订状态期望 accepted，实际 %q", status)
	}
}
