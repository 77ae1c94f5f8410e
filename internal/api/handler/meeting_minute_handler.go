package handler

import (
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/service"
	"resihub/backend/pkg/response"
)

// MeetingMinuteHandler 会议纪要模块 HTTP 处理器
type MeetingMinuteHandler struct {
	minuteSvc service.MeetingMinuteService
}

// NewMeetingMinuteHandler 创建 MeetingMinuteHandler
func NewMeetingMinuteHandler(minuteSvc service.MeetingMinuteService) *MeetingMinuteHandler {
	return &MeetingMinuteHandler{minuteSvc: minuteSvc}
}

// List 会议纪要列表（不含文件内容）
// GET /api/v1/meeting-minutes
func (h *MeetingMinuteHandler) List(c *gin.Context) {
	list, err := h.minuteSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Upload 上传会议纪要文件（仅管理员，multipart 表单）
// POST /api/v1/meeting-minutes
func (h *MeetingMinuteHandler) Upload(c *gin.Context) {
	var req dto.UploadMeetingMinuteRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 10001, "缺少上传文件")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.InternalError(c)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(c)
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	fileType := fileHeader.Header.Get("Content-Type")
	result, err := h.minuteSvc.Upload(c.Request.Context(), actor, &req, fileHeader.Filename, fileType, data)
	if err != nil {
		h.handleMinuteError(c, err)
		return
	}

	response.Created(c, result)
}

// Download 下载会议纪要文件
// GET /api/v1/meeting-minutes/:id/download
func (h *MeetingMinuteHandler) Download(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "纪要ID不能为空")
		return
	}

	file, err := h.minuteSvc.Download(c.Request.Context(), id)
	if err != nil {
		h.handleMinuteError(c, err)
		return
	}

	encodedFilename := url.QueryEscape(file.FileName)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, file.FileType, file.Data)
}

// Delete 删除会议纪要（仅管理员）
// DELETE /api/v1/meeting-minutes/:id
func (h *MeetingMinuteHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "纪要ID不能为空")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.minuteSvc.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleMinuteError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleMinuteError 统一处理会议纪要模块业务错误
func (h *MeetingMinuteHandler) handleMinuteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMinuteNotFound):
		response.NotFound(c, 16001, "会议纪要不存在")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 16002, "无权限执行该操作")
	case errors.Is(err, service.ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, 16003, "文件大小超出限制")
	case errors.Is(err, service.ErrFileTypeInvalid):
		response.BadRequest(c, 16004, "不支持的文件类型")
	case errors.Is(err, service.ErrInvalidDateTime):
		response.BadRequest(c, 16005, "会议日期格式无效")
	case errors.Is(err, service.ErrFileCorrupted):
		response.InternalError(c)
	default:
		response.InternalError(c)
	}
}
