package model

// VisitorRequest 访客来访申请表 — 对应 visitor_requests
// 由住户提交，物业委员会审核；超过保留期后在列表查询时被清理
type VisitorRequest struct {
	RequestID        string       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	ResidentUsername string       `gorm:"type:varchar(50);not null;index"                json:"resident_username"`
	ResidentName     string       `gorm:"type:varchar(100);not null"                     json:"resident_name"`
	VisitorName      string       `gorm:"type:varchar(100);not null"                     json:"visitor_name"`
	VisitorPhone     string       `gorm:"type:varchar(30);not null"                      json:"visitor_phone"`
	VisitDate        string       `gorm:"type:varchar(10);not null"                      json:"visit_date"` // 2006-01-02
	VisitTime        string       `gorm:"type:varchar(5);not null"                       json:"visit_time"` // 15:04
	Purpose          string       `gorm:"type:varchar(500);not null"                     json:"purpose"`
	Status           ReviewStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	CommitteeNotes   string       `gorm:"type:varchar(500);not null;default:''"          json:"committee_notes"`
	BaseModel
}

// TableName 指定表名
func (VisitorRequest) TableName() string { return "visitor_requests" }
