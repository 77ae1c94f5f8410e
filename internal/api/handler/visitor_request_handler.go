package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/service"
	"resihub/backend/pkg/response"
)

// VisitorRequestHandler 访客申请模块 HTTP 处理器
type VisitorRequestHandler struct {
	visitorSvc service.VisitorRequestService
}

// NewVisitorRequestHandler 创建 VisitorRequestHandler
func NewVisitorRequestHandler(visitorSvc service.VisitorRequestService) *VisitorRequestHandler {
	return &VisitorRequestHandler{visitorSvc: visitorSvc}
}

// Submit 提交访客来访申请
// POST /api/v1/visitor-requests
func (h *VisitorRequestHandler) Submit(c *gin.Context) {
	var req dto.SubmitVisitorRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.visitorSvc.Submit(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleVisitorRequestError(c, err)
		return
	}

	response.Created(c, result)
}

// List 查询访客申请列表（住户看本人，管理员看全部）
// GET /api/v1/visitor-requests
func (h *VisitorRequestHandler) List(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	list, err := h.visitorSvc.List(c.Request.Context(), actor)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Review 审核访客申请（仅管理员）
// PUT /api/v1/visitor-requests/:id/review
func (h *VisitorRequestHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	var req dto.ReviewVisitorRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.visitorSvc.Review(c.Request.Context(), actor, id, &req)
	if err != nil {
		h.handleVisitorRequestError(c, err)
		return
	}

	response.OK(c, result)
}

// Remove 删除访客申请
// DELETE /api/v1/visitor-requests/:id
func (h *VisitorRequestHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "申请ID不能为空")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.visitorSvc.Remove(c.Request.Context(), actor, id); err != nil {
		h.handleVisitorRequestError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleVisitorRequestError 统一处理访客申请模块业务错误
func (h *VisitorRequestHandler) handleVisitorRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, 12001, "访客申请不存在")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 12002, "无权限执行该操作")
	case errors.Is(err, service.ErrPastStartTime):
		response.BadRequest(c, 12003, "来访时间不能早于当前时间")
	case errors.Is(err, service.ErrInvalidDateTime):
		response.BadRequest(c, 12004, "日期或时间格式无效")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 12005, "无效的状态值")
	default:
		response.InternalError(c)
	}
}
