package dto

// RegisterGatePassRequest 门岗访客登记
type RegisterGatePassRequest struct {
	VisitorName      string `json:"visitor_name"      binding:"required,max=100"`
	HostUnit         string `json:"host_unit"         binding:"required,max=20"`
	Purpose          string `json:"purpose"           binding:"required,max=500"`
	ArrivalTime      string `json:"arrival_time"      binding:"max=50"`
	ExpectedDuration string `json:"expected_duration" binding:"max=50"`
}

// GatePassResponse 访客通行码响应
type GatePassResponse struct {
	PassCode     string `json:"pass_code"`
	VisitorName  string `json:"visitor_name"`
	HostUnit     string `json:"host_unit"`
	RegisteredAt string `json:"registered_at"`
	ValidUntil   string `json:"valid_until"`
}
