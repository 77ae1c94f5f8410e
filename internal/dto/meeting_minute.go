package dto

// UploadMeetingMinuteRequest 上传会议纪要（multipart 表单字段，文件另取）
type UploadMeetingMinuteRequest struct {
	MeetingDate string `form:"meeting_date" binding:"required"` // 2006-01-02
	Title       string `form:"title"        binding:"required,max=200"`
	Description string `form:"description"  binding:"max=500"`
}

// MeetingMinuteResponse 会议纪要响应（不含文件内容）
type MeetingMinuteResponse struct {
	ID          string `json:"id"`
	MeetingDate string `json:"meeting_date"`
	Title       string `json:"title"`
	Description string `json:"description"`
	FileName    string `json:"file_name"`
	FileType    string `json:"file_type"`
	FileSize    int64  `json:"file_size"`
	UploadedBy  string `json:"uploaded_by"`
	UploadedAt  string `json:"uploaded_at"`
	UpdatedAt   string `json:"updated_at"`
}

// MeetingMinuteFile 会议纪要下载内容
type MeetingMinuteFile struct {
	FileName string
	FileType string
	Data     []byte
}
