package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/service"
	"resihub/backend/pkg/response"
)

// GatePassHandler 门岗访客登记模块 HTTP 处理器
type GatePassHandler struct {
	gatePassSvc service.GatePassService
}

// NewGatePassHandler 创建 GatePassHandler
func NewGatePassHandler(gatePassSvc service.GatePassService) *GatePassHandler {
	return &GatePassHandler{gatePassSvc: gatePassSvc}
}

// Register 门岗登记访客并签发通行码（仅管理员）
// POST /api/v1/gate-passes
func (h *GatePassHandler) Register(c *gin.Context) {
	var req dto.RegisterGatePassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.gatePassSvc.Register(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleGatePassError(c, err)
		return
	}

	response.Created(c, result)
}

// ListValid 当前有效的通行码（仅管理员）
// GET /api/v1/gate-passes
func (h *GatePassHandler) ListValid(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	list, err := h.gatePassSvc.ListValid(c.Request.Context(), actor)
	if err != nil {
		h.handleGatePassError(c, err)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// handleGatePassError 统一处理通行码模块业务错误
func (h *GatePassHandler) handleGatePassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 17001, "无权限执行该操作")
	default:
		response.InternalError(c)
	}
}
