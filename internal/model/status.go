package model

// ReviewStatus 申请/预订的审核状态
// 访客申请与设施预订共用同一枚举；设施预订在展示层把 approved 呈现为 accepted
type ReviewStatus string

const (
	StatusPending  ReviewStatus = "pending"
	StatusApproved ReviewStatus = "approved"
	StatusRejected ReviewStatus = "rejected"
)

// Valid 判断是否为已定义的状态值
func (s ReviewStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}
