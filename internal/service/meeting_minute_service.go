package service

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"resihub/backend/config"
	"resihub/backend/internal/dto"
	"resihub/backend/internal/model"
	"resihub/backend/internal/repository"
)

// 会议纪要模块业务错误
var (
	ErrMinuteNotFound  = errors.New("会议纪要不存在")
	ErrFileTooLarge    = errors.New("文件大小超出限制")
	ErrFileTypeInvalid = errors.New("不支持的文件类型")
	ErrFileCorrupted   = errors.New("文件内容已损坏")
)

// MeetingMinuteService 会议纪要文件服务接口
// 文件内容以 base64 入库；列表不返回文件内容，下载单独取
type MeetingMinuteService interface {
	Upload(ctx context.Context, actor Actor, req *dto.UploadMeetingMinuteRequest, fileName, fileType string, data []byte) (*dto.MeetingMinuteResponse, error)
	Download(ctx context.Context, id string) (*dto.MeetingMinuteFile, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context) ([]dto.MeetingMinuteResponse, error)
}

type meetingMinuteService struct {
	repo   repository.MeetingMinuteRepository
	cfg    *config.Config
	logger *zap.Logger
}

// NewMeetingMinuteService 创建会议纪要服务
func NewMeetingMinuteService(repo repository.MeetingMinuteRepository, cfg *config.Config, logger *zap.Logger) MeetingMinuteService {
	return &meetingMinuteService{repo: repo, cfg: cfg, logger: logger}
}

func (s *meetingMinuteService) Upload(ctx context.Context, actor Actor, req *dto.UploadMeetingMinuteRequest, fileName, fileType string, data []byte) (*dto.MeetingMinuteResponse, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	if _, err := time.Parse(dateLayout, req.MeetingDate); err != nil {
		return nil, ErrInvalidDateTime
	}
	if int64(len(data)) > s.cfg.Upload.MaxFileSize {
		return nil, ErrFileTooLarge
	}
	if !s.allowedType(fileType) {
		return nil, ErrFileTypeInvalid
	}

	m := &model.MeetingMinute{
		MeetingDate: req.MeetingDate,
		Title:       req.Title,
		Description: req.Description,
		FileName:    fileName,
		FileData:    base64.StdEncoding.EncodeToString(data),
		FileType:    fileType,
		FileSize:    int64(len(data)),
		UploadedBy:  actor.Username,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("上传会议纪要",
		zap.String("minute_id", m.MinuteID),
		zap.String("file_name", fileName),
		zap.Int64("size", m.FileSize),
	)
	resp := toMeetingMinuteResponse(m)
	return &resp, nil
}

func (s *meetingMinuteService) Download(ctx context.Context, id string) (*dto.MeetingMinuteFile, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMinuteNotFound
		}
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(m.FileData)
	if err != nil {
		s.logger.Error("会议纪要 base64 解码失败", zap.String("minute_id", id), zap.Error(err))
		return nil, ErrFileCorrupted
	}

	return &dto.MeetingMinuteFile{
		FileName: m.FileName,
		FileType: m.FileType,
		Data:     data,
	}, nil
}

func (s *meetingMinuteService) Delete(ctx context.Context, actor Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrMinuteNotFound
	}

	s.logger.Info("删除会议纪要", zap.String("minute_id", id), zap.String("operator", actor.Username))
	return nil
}

func (s *meetingMinuteService) List(ctx context.Context) ([]dto.MeetingMinuteResponse, error) {
	list, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	resps := make([]dto.MeetingMinuteResponse, 0, len(list))
	for i := range list {
		resps = append(resps, toMeetingMinuteResponse(&list[i]))
	}
	return resps, nil
}

func (s *meetingMinuteService) allowedType(fileType string) bool {
	for _, t := range s.cfg.Upload.AllowedTypes {
		if t == fileType {
			return true
		}
	}
	return false
}

func toMeetingMinuteResponse(m *model.MeetingMinute) dto.MeetingMinuteResponse {
	return dto.MeetingMinuteResponse{
		ID:          m.MinuteID,
		MeetingDate: m.MeetingDate,
		Title:       m.Title,
		Description: m.Description,
		FileName:    m.FileName,
		FileType:    m.FileType,
		FileSize:    m.FileSize,
		UploadedBy:  m.UploadedBy,
		UploadedAt:  formatTimestamp(m.CreatedAt),
		UpdatedAt:   formatTimestamp(m.UpdatedAt),
	}
}
