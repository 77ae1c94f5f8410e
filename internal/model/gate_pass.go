package model

import "time"

// GatePass 访客门岗通行码表 — 对应 gate_passes
// 由门岗登记签发，默认 24 小时内有效
type GatePass struct {
	PassID           string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"pass_id"`
	PassCode         string    `gorm:"type:varchar(6);not null"                       json:"pass_code"`
	VisitorName      string    `gorm:"type:varchar(100);not null"                     json:"visitor_name"`
	HostUnit         string    `gorm:"type:varchar(20);not null"                      json:"host_unit"`
	Purpose          string    `gorm:"type:varchar(500);not null"                     json:"purpose"`
	ArrivalTime      string    `gorm:"type:varchar(50);not null;default:''"           json:"arrival_time,omitempty"`
	ExpectedDuration string    `gorm:"type:varchar(50);not null;default:''"           json:"expected_duration,omitempty"`
	ValidUntil       time.Time `gorm:"not null;index"                                 json:"valid_until"`
	BaseModel
}

// TableName 指定表名
func (GatePass) TableName() string { return "gate_passes" }
