package model

// MeetingMinute 会议纪要文件表 — 对应 meeting_minutes
// 文件内容以 base64 存于 file_data 列；列表查询不加载该列
type MeetingMinute struct {
	MinuteID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"minute_id"`
	MeetingDate string `gorm:"type:varchar(10);not null;index"                json:"meeting_date"` // 2006-01-02
	Title       string `gorm:"type:varchar(200);not null"                     json:"title"`
	Description string `gorm:"type:varchar(500);not null;default:''"          json:"description"`
	FileName    string `gorm:"type:varchar(255);not null"                     json:"file_name"`
	FileData    string `gorm:"type:text;not null"                             json:"-"` // base64
	FileType    string `gorm:"type:varchar(100);not null"                     json:"file_type"`
	FileSize    int64  `gorm:"not null"                                       json:"file_size"`
	UploadedBy  string `gorm:"type:varchar(50);not null"                      json:"uploaded_by"`
	BaseModel
}

// TableName 指定表名
func (MeetingMinute) TableName() string { return "meeting_minutes" }
