package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
// CreatedAt 创建后不再变化；UpdatedAt 由 GORM 在每次更新时刷新
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}
