package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/service"
	"resihub/backend/pkg/response"
)

// ContactInfoHandler 住户联系方式模块 HTTP 处理器
type ContactInfoHandler struct {
	contactSvc service.ContactInfoService
}

// NewContactInfoHandler 创建 ContactInfoHandler
func NewContactInfoHandler(contactSvc service.ContactInfoService) *ContactInfoHandler {
	return &ContactInfoHandler{contactSvc: contactSvc}
}

// List 联系方式目录（管理员看全部，住户看本人）
// GET /api/v1/contacts
func (h *ContactInfoHandler) List(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	list, err := h.contactSvc.List(c.Request.Context(), actor)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Create 新建联系方式（仅管理员）
// POST /api/v1/contacts
func (h *ContactInfoHandler) Create(c *gin.Context) {
	var req dto.CreateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.contactSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleContactError(c, err)
		return
	}

	response.Created(c, result)
}

// Update 更新联系方式（仅管理员）
// PUT /api/v1/contacts/:id
func (h *ContactInfoHandler) Update(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "联系方式ID不能为空")
		return
	}

	var req dto.UpdateContactInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.contactSvc.Update(c.Request.Context(), actor, id, &req)
	if err != nil {
		h.handleContactError(c, err)
		return
	}

	response.OK(c, result)
}

// Delete 删除联系方式（仅管理员）
// DELETE /api/v1/contacts/:id
func (h *ContactInfoHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "联系方式ID不能为空")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.contactSvc.Delete(c.Request.Context(), actor, id); err != nil {
		h.handleContactError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleContactError 统一处理联系方式模块业务错误
func (h *ContactInfoHandler) handleContactError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrContactNotFound):
		response.NotFound(c, 15001, "联系方式记录不存在")
	case errors.Is(err, service.ErrContactExists):
		response.Conflict(c, 15002, "该用户名已有联系方式记录")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 15003, "无权限执行该操作")
	default:
		response.InternalError(c)
	}
}
