package dto

// SubmitVisitorRequestRequest 提交访客来访申请
type SubmitVisitorRequestRequest struct {
	VisitorName  string `json:"visitor_name"  binding:"required,max=100"`
	VisitorPhone string `json:"visitor_phone" binding:"required,max=30"`
	VisitDate    string `json:"visit_date"    binding:"required"` // 2006-01-02
	VisitTime    string `json:"visit_time"    binding:"required"` // 15:04
	Purpose      string `json:"purpose"       binding:"required,max=500"`
}

// ReviewVisitorRequestRequest 审核访客申请（仅管理员）
type ReviewVisitorRequestRequest struct {
	Status string `json:"status" binding:"required"` // pending | approved | rejected
	Notes  string `json:"notes"  binding:"max=500"`
}

// VisitorRequestResponse 访客申请响应
type VisitorRequestResponse struct {
	ID               string `json:"id"`
	ResidentUsername string `json:"resident_username"`
	ResidentName     string `json:"resident_name"`
	VisitorName      string `json:"visitor_name"`
	VisitorPhone     string `json:"visitor_phone"`
	VisitDate        string `json:"visit_date"`
	VisitTime        string `json:"visit_time"`
	Purpose          string `json:"purpose"`
	Status           string `json:"status"`
	CommitteeNotes   string `json:"committee_notes"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
