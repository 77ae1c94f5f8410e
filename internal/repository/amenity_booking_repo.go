package repository

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resihub/backend/internal/model"
	pkgerrors "resihub/backend/pkg/errors"
)

// AmenityBookingRepository 设施预订数据访问接口
type AmenityBookingRepository interface {
	// CreateChecked 在单个串行化事务内完成冲突检查与插入：
	// 先对同资源键下已接受的行加锁读取，conflict 返回 true 时
	// 回滚并返回 pkg/errors.ErrBookingConflict
	CreateChecked(ctx context.Context, booking *model.AmenityBooking, conflict func(existing []model.AmenityBooking) bool) error
	GetByID(ctx context.Context, id string) (*model.AmenityBooking, error)
	Update(ctx context.Context, booking *model.AmenityBooking) error
	Delete(ctx context.Context, id string) (int64, error)
	DeleteOwnedPending(ctx context.Context, id, residentUsername string) (int64, error)
	ListAll(ctx context.Context) ([]model.AmenityBooking, error)
	ListByResident(ctx context.Context, residentUsername string) ([]model.AmenityBooking, error)
	// ListApproved 列出已接受的预订；residentUsername 为空时不按住户过滤
	ListApproved(ctx context.Context, residentUsername string) ([]model.AmenityBooking, error)
	PurgeExpired(ctx context.Context, before time.Time) (int64, error)
}

// amenityBookingRepo AmenityBookingRepository 的 GORM 实现
type amenityBookingRepo struct {
	db *gorm.DB
}

// NewAmenityBookingRepo 创建 AmenityBookingRepository 实例
func NewAmenityBookingRepo(db *gorm.DB) AmenityBookingRepository {
	return &amenityBookingRepo{db: db}
}

func (r *amenityBookingRepo) CreateChecked(ctx context.Context, booking *model.AmenityBooking, conflict func(existing []model.AmenityBooking) bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var accepted []model.AmenityBooking
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("amenity = ? AND booking_date = ? AND status = ?",
				booking.Amenity, booking.BookingDate, model.StatusApproved).
			Find(&accepted).Error
		if err != nil {
			return err
		}

		if conflict(accepted) {
			return pkgerrors.ErrBookingConflict
		}

		return tx.Create(booking).Error
	}, &sql.TxOptions{Isolation: sql.LevelSerializable})
}

func (r *amenityBookingRepo) GetByID(ctx context.Context, id string) (*model.AmenityBooking, error) {
	var booking model.AmenityBooking
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *amenityBookingRepo) Update(ctx context.Context, booking *model.AmenityBooking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *amenityBookingRepo) Delete(ctx context.Context, id string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("booking_id = ?", id).
		Delete(&model.AmenityBooking{})
	return res.RowsAffected, res.Error
}

func (r *amenityBookingRepo) DeleteOwnedPending(ctx context.Context, id, residentUsername string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("booking_id = ? AND resident_username = ? AND status = ?", id, residentUsername, model.StatusPending).
		Delete(&model.AmenityBooking{})
	return res.RowsAffected, res.Error
}

func (r *amenityBookingRepo) ListAll(ctx context.Context) ([]model.AmenityBooking, error) {
	var bookings []model.AmenityBooking
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *amenityBookingRepo) ListByResident(ctx context.Context, residentUsername string) ([]model.AmenityBooking, error) {
	var bookings []model.AmenityBooking
	err := r.db.WithContext(ctx).
		Where("resident_username = ?", residentUsername).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *amenityBookingRepo) ListApproved(ctx context.Context, residentUsername string) ([]model.AmenityBooking, error) {
	db := r.db.WithContext(ctx).
		Where("status = ?", model.StatusApproved)
	if residentUsername != "" {
		db = db.Where("resident_username = ?", residentUsername)
	}

	var bookings []model.AmenityBooking
	err := db.Order("booking_date ASC, booking_time ASC").
		Find(&bookings).Error
	return bookings, err
}

func (r *amenityBookingRepo) PurgeExpired(ctx context.Context, before time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", before).
		Delete(&model.AmenityBooking{})
	return res.RowsAffected, res.Error
}
