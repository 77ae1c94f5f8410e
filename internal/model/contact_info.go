package model

// ContactInfo 住户联系方式表 — 对应 contact_info
// username 与 users 表的登录名对应，每户一条
type ContactInfo struct {
	ContactID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"contact_id"`
	Username    string `gorm:"type:varchar(50);not null;uniqueIndex"          json:"username"`
	Unit        string `gorm:"type:varchar(20);not null"                      json:"unit"`
	OwnerName   string `gorm:"type:varchar(100);not null"                     json:"owner_name"`
	PhoneNumber string `gorm:"type:varchar(30);not null"                      json:"phone_number"`
	Email       string `gorm:"type:varchar(100);not null"                     json:"email"`
	BaseModel
}

// TableName 指定表名
func (ContactInfo) TableName() string { return "contact_info" }
