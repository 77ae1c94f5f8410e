package repository

import (
	"context"

	"gorm.io/gorm"

	"resihub/backend/internal/model"
)

// ContactInfoRepository 住户联系方式数据访问接口
type ContactInfoRepository interface {
	Create(ctx context.Context, c *model.ContactInfo) error
	GetByID(ctx context.Context, id string) (*model.ContactInfo, error)
	GetByUsername(ctx context.Context, username string) (*model.ContactInfo, error)
	Update(ctx context.Context, c *model.ContactInfo) error
	Delete(ctx context.Context, id string) (int64, error)
	// ListAll 按单元号升序返回全部记录
	ListAll(ctx context.Context) ([]model.ContactInfo, error)
}

// contactInfoRepo ContactInfoRepository 的 GORM 实现
type contactInfoRepo struct {
	db *gorm.DB
}

// NewContactInfoRepo 创建 ContactInfoRepository 实例
func NewContactInfoRepo(db *gorm.DB) ContactInfoRepository {
	return &contactInfoRepo{db: db}
}

func (r *contactInfoRepo) Create(ctx context.Context, c *model.ContactInfo) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactInfoRepo) GetByID(ctx context.Context, id string) (*model.ContactInfo, error) {
	var c model.ContactInfo
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", id).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactInfoRepo) GetByUsername(ctx context.Context, username string) (*model.ContactInfo, error) {
	var c model.ContactInfo
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactInfoRepo) Update(ctx context.Context, c *model.ContactInfo) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *contactInfoRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("contact_id = ?", id).
		Delete(&model.ContactInfo{})
	return res.RowsAffected, res.Error
}

func (r *contactInfoRepo) ListAll(ctx context.Context) ([]model.ContactInfo, error) {
	var list []model.ContactInfo
	err := r.db.WithContext(ctx).
		Order("unit ASC").
		Find(&list).Error
	return list, err
}
