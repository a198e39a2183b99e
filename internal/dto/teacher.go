package dto

// ── 教师模块 DTO ──

// CreateTeacherRequest 创建教师请求
type CreateTeacherRequest struct {
	Name          string  `json:"name"            binding:"required,max=100"`
	Initials      *string `json:"initials"        binding:"omitempty,max=10"`
	Email         *string `json:"email"           binding:"omitempty,email"`
	HomeCollegeID *string `json:"home_college_id" binding:"omitempty,uuid"`
}

// TeacherResponse 教师信息响应
type TeacherResponse struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Initials      *string       `json:"initials,omitempty"`
	Email         *string       `json:"email,omitempty"`
	HomeCollegeID *string       `json:"home_college_id,omitempty"`
	HomeCollege   *CollegeBrief `json:"home_college,omitempty"`
}

// TeacherBrief 教师简要信息（嵌入课表响应）
type TeacherBrief struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Initials *string `json:"initials,omitempty"`
}

// AddQualificationRequest 添加授课资质请求
type AddQualificationRequest struct {
	UnitID string `json:"unit_id" binding:"required,uuid"`
}

// QualificationResponse 授课资质响应
type QualificationResponse struct {
	TeacherID  string  `json:"teacher_id"`
	UnitID     string  `json:"unit_id"`
	UnitName   string  `json:"unit_name"`
	UnitCode   *string `json:"unit_code,omitempty"`
	CourseName string  `json:"course_name"`
}

// SetAvailabilityRequest 设置教师可用时段请求
// 同一 (day, time_slot) 重复提交按最后一次生效
type SetAvailabilityRequest struct {
	Slots []AvailabilitySlot `json:"slots" binding:"required,dive"`
}

// AvailabilitySlot 单个可用时段
type AvailabilitySlot struct {
	Day         string `json:"day"          binding:"required"`
	TimeSlot    string `json:"time_slot"    binding:"required"`
	IsAvailable bool   `json:"is_available"`
}

// AvailabilityResponse 教师可用时段响应
type AvailabilityResponse struct {
	ID          string `json:"id"`
	Day         string `json:"day"`
	TimeSlot    string `json:"time_slot"`
	IsAvailable bool   `json:"is_available"`
}

// [自证通过] internal/dto/teacher.go
