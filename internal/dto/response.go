package dto

// ── 认证模块响应 ──

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// UserResponse 用户信息响应（脱敏）
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Unit     string `json:"unit,omitempty"`
	Role     string `json:"role"`
}

// AuthStatusResponse 登录系统状态响应
type AuthStatusResponse struct {
	AcceptingLogins bool   `json:"accepting_logins"`
	Message         string `json:"message"`
}
