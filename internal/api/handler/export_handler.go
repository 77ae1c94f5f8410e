package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/service"
	"resihub/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportRequests 导出访客申请与设施预订汇总（仅管理员）
// GET /api/v1/export/requests
func (h *ExportHandler) ExportRequests(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	buf, filename, err := h.exportSvc.ExportRequests(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			response.Forbidden(c, 18001, "无权限执行该操作")
			return
		}
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
