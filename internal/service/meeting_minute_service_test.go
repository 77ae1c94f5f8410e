package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"resihub/backend/internal/dto"
)

func setupTestMeetingMinuteService() MeetingMinuteService {
	return NewMeetingMinuteService(newMockMeetingMinuteRepo(), testConfig(), zap.NewNop())
}

func uploadTestMinute(t *testing.T, svc MeetingMinuteService, data []byte) *dto.MeetingMinuteResponse {
	t.Helper()
	resp, err := svc.Upload(context.Background(), adminActor(), &dto.UploadMeetingMinuteRequest{
		MeetingDate: "2026-08-01",
		Title:       "八月业委会例会",
		Description: "泳池维护预算讨论",
	}, "minutes-august.pdf", "application/pdf", data)
	if err != nil {
		t.Fatalf("Upload 应成功: %v", err)
	}
	return resp
}

func TestMinuteUpload_Success(t *testing.T) {
	svc := setupTestMeetingMinuteService()
	data := []byte("%PDF-1.4 fake minutes content")

	resp := uploadTestMinute(t, svc, data)

	if resp.FileSize != int64(len(data)) {
		t.Errorf("期望 FileSize=%d，实际=%d", len(data), resp.FileSize)
	}
	if resp.UploadedBy != "admin" {
		t.Errorf("期望 UploadedBy=admin，实际=%s", resp.UploadedBy)
	}
}

func TestMinuteUpload_NonAdminForbidden(t *testing.T) {
	svc := setupTestMeetingMinuteService()

	_, err := svc.Upload(context.Background(), residentActor(), &dto.UploadMeetingMinuteRequest{
		MeetingDate: "2026-08-01",
		Title:       "八月业委会例会",
	}, "minutes.pdf", "application/pdf", []byte("data"))
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("期望 ErrForbidden，实际: %v", err)
	}
}

func TestMinuteUpload_FileTooLarge(t *testing.T) {
	svc := setupTestMeetingMinuteService()

	big := make([]byte, 10*1024*1024+1)
	_, err := svc.Upload(context.Background(), adminActor(), &dto.UploadMeetingMinuteRequest{
		MeetingDate: "2026-08-01",
		Title:       "超大文件",
	}, "big.pdf", "application/pdf", big)
	if !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("期望 ErrFileTooLarge，实际: %v", err)
	}
}

func TestMinuteUpload_InvalidType(t *testing.T) {
	svc := setupTestMeetingMinuteService()

	_, err := svc.Upload(context.Background(), adminActor(), &dto.UploadMeetingMinuteRequest{
		MeetingDate: "2026-08-01",
		Title:       "可执行文件",
	}, "evil.exe", "application/x-msdownload", []byte("MZ"))
	if !errors.Is(err, ErrFileTypeInvalid) {
		t.Errorf("期望 ErrFileTypeInvalid，实际: %v", err)
	}
}

func TestMinuteUpload_InvalidDate(t *testing.T) {
	svc := setupTestMeetingMinuteService()

	_, err := svc.Upload(context.Background(), adminActor(), &dto.UploadMeetingMinuteRequest{
		MeetingDate: "01/08/2026",
		Title:       "日期格式错误",
	}, "minutes.pdf", "application/pdf", []byte("data"))
	if !errors.Is(err, ErrInvalidDateTime) {
		t.Errorf("期望 ErrInvalidDateTime，实际: %v", err)
	}
}

func TestMinuteDownload_RoundTrip(t *testing.T) {
	svc := setupTestMeetingMinuteService()
	data := []byte("%PDF-1.4 fake minutes content")
	created := uploadTestMinute(t, svc, data)

	file, err := svc.Download(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Download 应成功: %v", err)
	}
	if !bytes.Equal(file.Data, data) {
		t.Error("下载内容应与上传内容一致")
	}
	if file.FileName != "minutes-august.pdf" {
		t.Errorf("期望文件名 minutes-august.pdf，实际 %s", file.FileName)
	}
	if file.FileType != "application/pdf" {
		t.Errorf("期望类型 application/pdf，实际 %s", file.FileType)
	}
}

func TestMinuteDownload_NotFound(t *testing.T) {
	svc := setupTestMeetingMinuteService()

	_, err := svc.Download(context.Background(), "no-such-id")
	if !errors.Is(err, ErrMinuteNotFound) {
		t.Errorf("期望 ErrMinuteNotFound，实际: %v", err)
	}
}

func TestMinuteDelete_AdminOnly(t *testing.T) {
	svc := setupTestMeetingMinuteService()
	created := uploadTestMinute(t, svc, []byte("data"))

	if err := svc.Delete(context.Background(), residentActor(), created.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("住户删除期望 ErrForbidden，实际: %v", err)
	}
	if err := svc.Delete(context.Background(), adminActor(), created.ID); err != nil {
		t.Fatalf("管理员删除应成功: %v", err)
	}
	if err := svc.Delete(context.Background(), adminActor(), created.ID); !errors.Is(err, ErrMinuteNotFound) {
		t.Errorf("重复删除期望 ErrMinuteNotFound，实际: %v", err)
	}
}
