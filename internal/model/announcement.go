package model

// Announcement 楼宇公告表 — 对应 announcements
type Announcement struct {
	AnnouncementID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"announcement_id"`
	Title          string `gorm:"type:varchar(200);not null"                     json:"title"`
	Content        string `gorm:"type:text;not null"                             json:"content"`
	Category       string `gorm:"type:varchar(50);not null"                      json:"category"`
	Important      bool   `gorm:"not null;default:false"                         json:"important"`
	BaseModel
}

// TableName 指定表名
func (Announcement) TableName() string { return "announcements" }
