package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"resihub/backend/pkg/response"
)

// BuildingHandler 楼宇信息 HTTP 处理器
// 天气与应急信息目前为静态数据，后续接入市政开放数据源
type BuildingHandler struct{}

// NewBuildingHandler 创建 BuildingHandler
func NewBuildingHandler() *BuildingHandler {
	return &BuildingHandler{}
}

// Weather 楼宇所在地天气
// GET /api/v1/building/weather
func (h *BuildingHandler) Weather(c *gin.Context) {
	response.OK(c, gin.H{
		"location":    "Sydney, NSW",
		"temperature": 22,
		"unit":        "celsius",
		"condition":   "Partly Cloudy",
		"humidity":    65,
		"updated_at":  time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	})
}

// Emergency 应急联系信息
// GET /api/v1/building/emergency
func (h *BuildingHandler) Emergency(c *gin.Context) {
	response.OK(c, gin.H{
		"emergency_services": "000",
		"building_security":  "02 9000 0001",
		"building_manager":   "02 9000 0002",
		"after_hours":        "02 9000 0003",
		"assembly_point":     "Front courtyard, ground level",
		"updated_at":         time.Now().UTC().Format("2006-01-02T15:04:05Z"),
	})
}
