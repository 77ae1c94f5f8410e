package dto

// CreateAnnouncementRequest 发布公告（仅管理员）
type CreateAnnouncementRequest struct {
	Title     string `json:"title"    binding:"required,max=200"`
	Content   string `json:"content"  binding:"required"`
	Category  string `json:"category" binding:"required,max=50"`
	Important bool   `json:"important"`
}

// UpdateAnnouncementRequest 更新公告（仅管理员）
type UpdateAnnouncementRequest struct {
	Title     *string `json:"title"     binding:"omitempty,max=200"`
	Content   *string `json:"content"`
	Category  *string `json:"category"  binding:"omitempty,max=50"`
	Important *bool   `json:"important"`
}

// AnnouncementResponse 公告响应
type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Category  string `json:"category"`
	Important bool   `json:"important"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
