package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resihub/backend/internal/model"
)

// GatePassRepository 访客通行码数据访问接口
type GatePassRepository interface {
	Create(ctx context.Context, p *model.GatePass) error
	// ListValid 列出尚在有效期内的通行码，按登记时间倒序
	ListValid(ctx context.Context, now time.Time) ([]model.GatePass, error)
	// PurgeExpired 删除 valid_until 早于 before 的通行码，返回删除行数
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// gatePassRepo GatePassRepository 的 GORM 实现
type gatePassRepo struct {
	db *gorm.DB
}

// NewGatePassRepo 创建 GatePassRepository 实例
func NewGatePassRepo(db *gorm.DB) GatePassRepository {
	return &gatePassRepo{db: db}
}

func (r *gatePassRepo) Create(ctx context.Context, p *model.GatePass) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *gatePassRepo) ListValid(ctx context.Context, now time.Time) ([]model.GatePass, error) {
	var list []model.GatePass
	err := r.db.WithContext(ctx).
		Where("valid_until >= ?", now).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *gatePassRepo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("valid_until < ?", before).
		Delete(&model.GatePass{})
	return res.RowsAffected, res.Error
}
