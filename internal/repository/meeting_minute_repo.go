package repository

import (
	"context"

	"gorm.io/gorm"

	"resihub/backend/internal/model"
)

// MeetingMinuteRepository 会议纪要数据访问接口
type MeetingMinuteRepository interface {
	Create(ctx context.Context, m *model.MeetingMinute) error
	// GetByID 加载完整记录（含 file_data），用于下载
	GetByID(ctx context.Context, id string) (*model.MeetingMinute, error)
	Delete(ctx context.Context, id string) (int64, error)
	// ListAll 列表查询不加载 file_data 列，按会议日期倒序
	ListAll(ctx context.Context) ([]model.MeetingMinute, error)
}

// meetingMinuteRepo MeetingMinuteRepository 的 GORM 实现
type meetingMinuteRepo struct {
	db *gorm.DB
}

// NewMeetingMinuteRepo 创建 MeetingMinuteRepository 实例
func NewMeetingMinuteRepo(db *gorm.DB) MeetingMinuteRepository {
	return &meetingMinuteRepo{db: db}
}

func (r *meetingMinuteRepo) Create(ctx context.Context, m *model.MeetingMinute) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *meetingMinuteRepo) GetByID(ctx context.Context, id string) (*model.MeetingMinute, error) {
	var m model.MeetingMinute
	err := r.db.WithContext(ctx).
		Where("minute_id = ?", id).
		First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *meetingMinuteRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("minute_id = ?", id).
		Delete(&model.MeetingMinute{})
	return res.RowsAffected, res.Error
}

func (r *meetingMinuteRepo) ListAll(ctx context.Context) ([]model.MeetingMinute, error) {
	var list []model.MeetingMinute
	err := r.db.WithContext(ctx).
		Omit("file_data").
		Order("meeting_date DESC, created_at DESC").
		Find(&list).Error
	return list, err
}
