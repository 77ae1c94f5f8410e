package repository

import (
	"context"

	"gorm.io/gorm"

	"resihub/backend/internal/model"
)

// AnnouncementRepository 公告数据访问接口
type AnnouncementRepository interface {
	Create(ctx context.Context, a *model.Announcement) error
	GetByID(ctx context.Context, id string) (*model.Announcement, error)
	Update(ctx context.Context, a *model.Announcement) error
	Delete(ctx context.Context, id string) (int64, error)
	ListAll(ctx context.Context) ([]model.Announcement, error)
}

// announcementRepo AnnouncementRepository 的 GORM 实现
type announcementRepo struct {
	db *gorm.DB
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(db *gorm.DB) AnnouncementRepository {
	return &announcementRepo{db: db}
}

func (r *announcementRepo) Create(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepo) GetByID(ctx context.Context, id string) (*model.Announcement, error) {
	var a model.Announcement
	err := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *announcementRepo) Update(ctx context.Context, a *model.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("announcement_id = ?", id).
		Delete(&model.Announcement{})
	return res.RowsAffected, res.Error
}

func (r *announcementRepo) ListAll(ctx context.Context) ([]model.Announcement, error) {
	var list []model.Announcement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}
