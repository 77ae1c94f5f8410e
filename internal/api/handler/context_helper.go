package handler

import (
	"github.com/gin-gonic/gin"

	"resihub/backend/internal/service"
	"resihub/backend/pkg/jwt"
	"resihub/backend/pkg/response"
)

// MustGetActor 从 Gin 上下文提取当前操作者身份。
// 如果 JWT 中间件未正确注入，返回 false 并写入 401 响应，
// 调用方应在 ok=false 时直接 return。
func MustGetActor(c *gin.Context) (service.Actor, bool) {
	userID := c.GetString("user_id")
	username := c.GetString("username")
	role := c.GetString("role")
	if userID == "" || username == "" || role == "" {
		response.Unauthorized(c, 10002, "未认证")
		return service.Actor{}, false
	}

	return service.Actor{
		UserID:   userID,
		Username: username,
		Name:     c.GetString("name"),
		Role:     role,
	}, true
}

// MustGetClaims 从 Gin 上下文提取完整 JWT Claims（登出时需要 jti 与过期时间）。
func MustGetClaims(c *gin.Context) (*jwt.Claims, bool) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "未认证")
		return nil, false
	}
	return claims, true
}
