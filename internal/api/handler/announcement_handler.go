package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/service"
	"resihub/backend/pkg/response"
)

// AnnouncementHandler 公告模块 HTTP 处理器
type AnnouncementHandler struct {
	announcementSvc service.AnnouncementService
}

// NewAnnouncementHandler 创建 AnnouncementHandler
func NewAnnouncementHandler(announcementSvc service.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{announcementSvc: announcementSvc}
}

// List 公告列表
// GET /api/v1/announcements
func (h *AnnouncementHandler) List(c *gin.Context) {
	list, err := h.announcementSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Create 发布公告（仅管理员）
// POST /api/v1/announcements
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.announcementSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.Created(c, result)
}

// Update 更新公告（仅管理员）
// PUT /api/v1/announcements/:id
func (h *AnnouncementHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公告ID不能为空")
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.announcementSvc.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除公告（仅管理员）
// DELETE /api/v1/announcements/:id
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "公告ID不能为空")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.announcementSvc.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleAnnouncementError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleAnnouncementError 统一处理公告模块业务错误
func (h *AnnouncementHandler) handleAnnouncementError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrAnnouncementNotFound):
		response.NotFound(c, 14001, "公告不存在")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 14002, "无权限执行该操作")
	default:
		response.InternalError(c)
	}
}
