package dto

// SubmitBookingRequest 提交设施预订申请
type SubmitBookingRequest struct {
	Amenity       string `json:"amenity"        binding:"required,max=50"`
	BookingDate   string `json:"booking_date"   binding:"required"` // 2006-01-02
	BookingTime   string `json:"booking_time"   binding:"required"` // 15:04
	DurationHours int    `json:"duration_hours" binding:"required,min=1"`
}

// ReviewBookingRequest 审核设施预订（仅管理员）
// status 接受 accepted / approved 两种写法（历史前端用 accepted）
type ReviewBookingRequest struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"  binding:"max=500"`
}

// BookingResponse 设施预订响应
// status 对外呈现为 pending | accepted | rejected
type BookingResponse struct {
	ID               string `json:"id"`
	ResidentUsername string `json:"resident_username"`
	ResidentName     string `json:"resident_name"`
	Amenity          string `json:"amenity"`
	BookingDate      string `json:"booking_date"`
	BookingTime      string `json:"booking_time"`
	DurationHours    int    `json:"duration_hours"`
	Status           string `json:"status"`
	AdminNotes       string `json:"admin_notes"`
	CreatedAt        string `json:"created_at"`
	UpdatedAt        string `json:"updated_at"`
}
