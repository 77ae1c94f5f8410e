package model

// 用户角色
const (
	RoleAdmin    = "admin"
	RoleResident = "resident"
)

// User 住户/管理员账号表 — 对应 users
type User struct {
	UserID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Username     string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	PasswordHash string `gorm:"type:varchar(100);not null"                     json:"-"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Unit         string `gorm:"type:varchar(20);not null;default:''"           json:"unit,omitempty"`
	Role         string `gorm:"type:varchar(20);not null;default:'resident'"   json:"role"` // admin | resident
	BaseModel
}

// TableName 指定表名
func (User) TableName() string { return "users" }
