package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resihub/backend/internal/dto"
	"resihub/backend/internal/service"
	pkgerrors "resihub/backend/pkg/errors"
	"resihub/backend/pkg/response"
)

// AmenityBookingHandler 设施预订模块 HTTP 处理器
type AmenityBookingHandler struct {
	bookingSvc  service.AmenityBookingService
	calendarSvc service.CalendarService
}

// NewAmenityBookingHandler 创建 AmenityBookingHandler
func NewAmenityBookingHandler(bookingSvc service.AmenityBookingService, calendarSvc service.CalendarService) *AmenityBookingHandler {
	return &AmenityBookingHandler{bookingSvc: bookingSvc, calendarSvc: calendarSvc}
}

// Amenities 可预订的设施目录
// GET /api/v1/amenities
func (h *AmenityBookingHandler) Amenities(c *gin.Context) {
	response.OK(c, gin.H{"list": h.bookingSvc.Amenities()})
}

// Submit 提交设施预订（仅住户）
// POST /api/v1/amenity-bookings
func (h *AmenityBookingHandler) Submit(c *gin.Context) {
	var req dto.SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.Submit(c.Request.Context(), actor, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, result)
}

// List 查询预订列表（住户看本人，管理员看全部）
// GET /api/v1/amenity-bookings
func (h *AmenityBookingHandler) List(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	list, err := h.bookingSvc.List(c.Request.Context(), actor)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// Review 审核预订（仅管理员）
// PUT /api/v1/amenity-bookings/:id/review
func (h *AmenityBookingHandler) Review(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	var req dto.ReviewBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	result, err := h.bookingSvc.Review(c.Request.Context(), actor, id, &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, result)
}

// Remove 删除预订
// DELETE /api/v1/amenity-bookings/:id
func (h *AmenityBookingHandler) Remove(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "预订ID不能为空")
		return
	}

	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	if err := h.bookingSvc.Remove(c.Request.Context(), actor, id); err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, nil)
}

// Calendar 已接受预订的 iCalendar 订阅源
// GET /api/v1/amenity-bookings/calendar.ics
func (h *AmenityBookingHandler) Calendar(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	cal, err := h.calendarSvc.BookingCalendar(c.Request.Context(), actor)
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="amenity-bookings.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(cal))
}

// handleBookingError 统一处理设施预订模块业务错误
func (h *AmenityBookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pkgerrors.ErrBookingConflict):
		response.BadRequest(c, 13001, "该设施在所选时段已被预订")
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, 13002, "预订记录不存在")
	case errors.Is(err, service.ErrForbidden):
		response.Forbidden(c, 13003, "无权限执行该操作")
	case errors.Is(err, service.ErrUnknownAmenity):
		response.BadRequest(c, 13004, "未知的设施")
	case errors.Is(err, service.ErrDurationTooLong):
		response.BadRequest(c, 13005, "预订时长超出限制")
	case errors.Is(err, service.ErrPastStartTime):
		response.BadRequest(c, 13006, "预订时间不能早于当前时间")
	case errors.Is(err, service.ErrInvalidDateTime):
		response.BadRequest(c, 13007, "日期或时间格式无效")
	case errors.Is(err, service.ErrInvalidStatus):
		response.BadRequest(c, 13008, "无效的状态值")
	default:
		response.InternalError(c)
	}
}
