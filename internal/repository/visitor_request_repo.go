package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resihub/backend/internal/model"
)

// VisitorRequestRepository 访客申请数据访问接口
type VisitorRequestRepository interface {
	Create(ctx context.Context, req *model.VisitorRequest) error
	GetByID(ctx context.Context, id string) (*model.VisitorRequest, error)
	Update(ctx context.Context, req *model.VisitorRequest) error
	// Delete 删除任意记录，返回受影响行数（管理员路径）
	Delete(ctx context.Context, id string) (int64, error)
	// DeleteOwnedPending 仅删除本人处于 pending 状态的记录，返回受影响行数（住户路径）
	DeleteOwnedPending(ctx context.Context, id, residentUsername string) (int64, error)
	ListAll(ctx context.Context) ([]model.VisitorRequest, error)
	ListByResident(ctx context.Context, residentUsername string) ([]model.VisitorRequest, error)
	// PurgeExpired 删除 created_at 早于 before 的记录，返回删除行数
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// visitorRequestRepo VisitorRequestRepository 的 GORM 实现
type visitorRequestRepo struct {
	db *gorm.DB
}

// NewVisitorRequestRepo 创建 VisitorRequestRepository 实例
func NewVisitorRequestRepo(db *gorm.DB) VisitorRequestRepository {
	return &visitorRequestRepo{db: db}
}

func (r *visitorRequestRepo) Create(ctx context.Context, req *model.VisitorRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *visitorRequestRepo) GetByID(ctx context.Context, id string) (*model.VisitorRequest, error) {
	var req model.VisitorRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *visitorRequestRepo) Update(ctx context.Context, req *model.VisitorRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

func (r *visitorRequestRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("request_id = ?", id).
		Delete(&model.VisitorRequest{})
	return res.RowsAffected, res.Error
}

func (r *visitorRequestRepo) DeleteOwnedPending(ctx context.Context, id, residentUsername string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("request_id = ? AND resident_username = ? AND status = ?", id, residentUsername, model.StatusPending).
		Delete(&model.VisitorRequest{})
	return res.RowsAffected, res.Error
}

func (r *visitorRequestRepo) ListAll(ctx context.Context) ([]model.VisitorRequest, error) {
	var reqs []model.VisitorRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *visitorRequestRepo) ListByResident(ctx context.Context, residentUsername string) ([]model.VisitorRequest, error) {
	var reqs []model.VisitorRequest
	err := r.db.WithContext(ctx).
		Where("resident_username = ?", residentUsername).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}

func (r *visitorRequestRepo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&model.VisitorRequest{})
	return res.RowsAffected, res.Error
}
