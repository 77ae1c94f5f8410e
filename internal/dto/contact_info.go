package dto

// CreateContactInfoRequest 新建住户联系方式（仅管理员）
type CreateContactInfoRequest struct {
	Username    string `json:"username"     binding:"required,max=50"`
	Unit        string `json:"unit"         binding:"required,max=20"`
	OwnerName   string `json:"owner_name"   binding:"required,max=100"`
	PhoneNumber string `json:"phone_number" binding:"required,max=30"`
	Email       string `json:"email"        binding:"required,email,max=100"`
}

// UpdateContactInfoRequest 更新住户联系方式（仅管理员）
type UpdateContactInfoRequest struct {
	Unit        *string `json:"unit"         binding:"omitempty,max=20"`
	OwnerName   *string `json:"owner_name"   binding:"omitempty,max=100"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=30"`
	Email       *string `json:"email"        binding:"omitempty,email,max=100"`
}

// ContactInfoResponse 住户联系方式响应
type ContactInfoResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Unit        string `json:"unit"`
	OwnerName   string `json:"owner_name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}
