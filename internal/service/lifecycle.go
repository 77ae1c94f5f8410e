package service

import (
	"errors"
	"time"

	"resihub/backend/internal/model"
)

// ── 申请/预订生命周期共享定义 ──
//
// 访客申请与设施预订走同一套生命周期：
// 住户提交（pending）→ 管理员审核（approved/rejected，可反复改判）→
// 本人删除 pending 记录或管理员删除任意记录 → 超过保留期后清理。

// Actor 当前操作者身份，由 Handler 层从 JWT 上下文构造
type Actor struct {
	UserID   string
	Username string
	Name     string
	Role     string // model.RoleAdmin | model.RoleResident
}

// IsAdmin 是否为管理员
func (a Actor) IsAdmin() bool { return a.Role == model.RoleAdmin }

// 生命周期共享业务错误
var (
	ErrForbidden       = errors.New("无权限执行该操作")
	ErrPastStartTime   = errors.New("开始时间不能早于当前时间")
	ErrInvalidStatus   = errors.New("无效的状态值")
	ErrInvalidDateTime = errors.New("日期或时间格式无效")
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	dateTimeLayout = "2006-01-02 15:04"
)

// parseStartInstant 将 (日期, 时间) 组合解析为本地时区的起始时刻
func parseStartInstant(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(dateTimeLayout, date+" "+clock, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateTime
	}
	return t, nil
}

// parseReviewStatus 解析审核目标状态
// 兼容设施预订前端的 accepted 写法，统一归一为 approved
func parseReviewStatus(s string) (model.ReviewStatus, error) {
	if s == "accepted" {
		return model.StatusApproved, nil
	}
	status := model.ReviewStatus(s)
	if !status.Valid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// formatTimestamp 时间戳响应格式
func formatTimestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z")
}
