package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/mbelik07/Timetable-App/config"
	"github.com/mbelik07/Timetable-App/internal/dto"
	"github.com/mbelik07/Timetable-App/internal/model"
	"github.com/mbelik07/Timetable-App/internal/repository"
	pkgerrors "github.com/mbelik07/Timetable-App/pkg/errors"
	"github.com/mbelik07/Timetable-App/pkg/timegrid"
)

// ── 测试公共脚手架 ──

func singleCampusConfig() *config.ScheduleConfig {
	return &config.ScheduleConfig{
		MultiCampus:    false,
		DefaultCollege: "Moss Vale",
		SlotMode:       "clock",
		DayStart:       "08:00",
		DayEnd:         "22:00",
		SlotMinutes:    30,
	}
}

func newTestGrid(t *testing.T, cfg *config.ScheduleConfig) *timegrid.Grid {
	t.Helper()
	grid, err := timegrid.New(cfg)
	if err != nil {
		t.Fatalf("构建网格应成功: %v", err)
	}
	return grid
}

func newScheduleFixture(t *testing.T, cfg *config.ScheduleConfig) (ScheduleService, *repository.Repository, *fixtureStore) {
	t.Helper()
	repo, store := newMockRepository()
	grid := newTestGrid(t, cfg)
	svc := NewScheduleService(cfg, repo, grid, zap.NewNop())
	return svc, repo, store
}

func seedCollege(t *testing.T, repo *repository.Repository, name string) *model.College {
	t.Helper()
	college := &model.College{Name: name}
	if err := repo.College.Create(context.Background(), college); err != nil {
		t.Fatalf("预置学院应成功: %v", err)
	}
	return college
}

func seedUnit(t *testing.T, repo *repository.Repository, courseName, unitName string, requiredHours float64) *model.Unit {
	t.Helper()
	ctx := context.Background()
	course := &model.Course{Name: courseName}
	if err := repo.Course.Create(ctx, course); err != nil {
		t.Fatalf("预置课程应成功: %v", err)
	}
	unit := &model.Unit{CourseID: course.CourseID, Name: unitName, RequiredHours: requiredHours}
	if err := repo.Unit.Create(ctx, unit); err != nil {
		t.Fatalf("预置单元应成功: %v", err)
	}
	return unit
}

// ── UpsertCell ──

func TestUpsertCell_CreatesThenReplaces(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")
	unit := seedUnit(t, repo, "Cert III IT", "Networking Basics", 20)
	teacher := &model.Teacher{Name: "A. Smith"}
	if err := repo.Teacher.Create(ctx, teacher); err != nil {
		t.Fatalf("预置教师应成功: %v", err)
	}

	first, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{
		Day:       "Monday",
		StartTime: "09:00",
		UnitID:    &unit.UnitID,
		TeacherID: &teacher.TeacherID,
	})
	if err != nil {
		t.Fatalf("首次 UpsertCell 应成功: %v", err)
	}
	if first.Unit == nil || first.Unit.ID != unit.UnitID {
		t.Fatalf("响应应包含单元信息, got %+v", first.Unit)
	}
	if first.Teacher == nil {
		t.Fatal("响应应包含教师信息")
	}

	// 第二次写同一格子：整格替换，teacher 缺省 → 置空；id 保持不变
	second, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{
		Day:       "Monday",
		StartTime: "09:00",
		UnitID:    &unit.UnitID,
	})
	if err != nil {
		t.Fatalf("二次 UpsertCell 应成功: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("同一格子重写应保留原 id: first=%s second=%s", first.ID, second.ID)
	}
	if second.Teacher != nil {
		t.Fatalf("缺省引用字段应被置空, got teacher=%+v", second.Teacher)
	}

	// 全部格子仍只有一条记录
	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll 应成功: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("同一格子键至多一条记录, got %d", len(all))
	}
}

func TestUpsertCell_IdempotentSameInput(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, store := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")
	unit := seedUnit(t, repo, "Cert III IT", "Networking Basics", 20)

	req := &dto.UpsertCellRequest{Day: "Tuesday", StartTime: "10:30", UnitID: &unit.UnitID}
	first, err := svc.UpsertCell(ctx, req)
	if err != nil {
		t.Fatalf("UpsertCell 应成功: %v", err)
	}
	second, err := svc.UpsertCell(ctx, req)
	if err != nil {
		t.Fatalf("相同入参重复 UpsertCell 应成功: %v", err)
	}
	if first.ID != second.ID || first.DurationMinutes != second.DurationMinutes {
		t.Fatalf("幂等性被破坏: first=%+v second=%+v", first, second)
	}
	if len(store.schedule) != 1 {
		t.Fatalf("存储中应只有一条记录, got %d", len(store.schedule))
	}
}

func TestUpsertCell_EmptyPlaceholderAllowed(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")

	// teacher/unit/room 全缺省是合法输入（空占位格）
	resp, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: "Friday", StartTime: "08:00"})
	if err != nil {
		t.Fatalf("空占位格应被接受: %v", err)
	}
	if resp.Unit != nil || resp.Teacher != nil || resp.Room != nil {
		t.Fatalf("空占位格不应带任何引用: %+v", resp)
	}
	if resp.DurationMinutes != 30 {
		t.Fatalf("缺省时长应为一格宽度 30, got %d", resp.DurationMinutes)
	}
}

func TestUpsertCell_InvalidDayAndSlotRejected(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")

	cases := []struct {
		name string
		req  *dto.UpsertCellRequest
	}{
		{"周末", &dto.UpsertCellRequest{Day: "Saturday", StartTime: "09:00"}},
		{"小写星期", &dto.UpsertCellRequest{Day: "monday", StartTime: "09:00"}},
		{"越界时段", &dto.UpsertCellRequest{Day: "Monday", StartTime: "22:00"}},
		{"非对齐时段", &dto.UpsertCellRequest{Day: "Monday", StartTime: "08:15"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.UpsertCell(ctx, tc.req)
			if !errors.Is(err, pkgerrors.ErrValidation) {
				t.Fatalf("应返回校验错误, got %v", err)
			}
		})
	}
}

func TestUpsertCell_DurationPolicy(t *testing.T) {
	ctx := context.Background()

	t.Run("负时长拒绝", func(t *testing.T) {
		cfg := singleCampusConfig()
		svc, repo, _ := newScheduleFixture(t, cfg)
		seedCollege(t, repo, "Moss Vale")

		bad := -30
		_, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{
			Day: "Monday", StartTime: "09:00", DurationMinutes: &bad,
		})
		if !errors.Is(err, pkgerrors.ErrValidation) {
			t.Fatalf("负时长应返回校验错误, got %v", err)
		}
	})

	t.Run("richer 变体要求显式时长", func(t *testing.T) {
		cfg := singleCampusConfig()
		cfg.RequireDuration = true
		svc, repo, _ := newScheduleFixture(t, cfg)
		seedCollege(t, repo, "Moss Vale")

		_, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: "Monday", StartTime: "09:00"})
		if !errors.Is(err, pkgerrors.ErrValidation) {
			t.Fatalf("缺省时长应返回校验错误, got %v", err)
		}

		d := 90
		resp, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{
			Day: "Monday", StartTime: "09:00", DurationMinutes: &d,
		})
		if err != nil {
			t.Fatalf("显式时长应成功: %v", err)
		}
		if resp.DurationMinutes != 90 {
			t.Fatalf("时长应为 90, got %d", resp.DurationMinutes)
		}
	})
}

func TestUpsertCell_RaceLoserGetsConstraintViolation(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, store := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")

	// 模拟极端竞争：本次插入撞上唯一索引
	store.forceCellConflict = true
	_, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: "Wednesday", StartTime: "14:00"})
	if !errors.Is(err, pkgerrors.ErrConstraintViolation) {
		t.Fatalf("落败方应收到唯一冲突错误, got %v", err)
	}

	// 调用方显式重试（此时对方的行已在）：应以更新成功
	if _, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: "Wednesday", StartTime: "14:00"}); err != nil {
		t.Fatalf("重试应成功: %v", err)
	}
}

func TestUpsertCell_MultiCampusRequiresCollege(t *testing.T) {
	cfg := singleCampusConfig()
	cfg.MultiCampus = true
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	college := seedCollege(t, repo, "Goulburn")

	_, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: "Monday", StartTime: "09:00"})
	if !errors.Is(err, pkgerrors.ErrValidation) {
		t.Fatalf("多校区缺省 college_id 应返回校验错误, got %v", err)
	}

	resp, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{
		CollegeID: college.CollegeID, Day: "Monday", StartTime: "09:00",
	})
	if err != nil {
		t.Fatalf("显式 college_id 应成功: %v", err)
	}
	if resp.College == nil || resp.College.ID != college.CollegeID {
		t.Fatalf("响应应归属指定学院, got %+v", resp.College)
	}
}

func TestUpsertCell_SameSlotDifferentCollegesCoexist(t *testing.T) {
	cfg := singleCampusConfig()
	cfg.MultiCampus = true
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	a := seedCollege(t, repo, "Moss Vale")
	b := seedCollege(t, repo, "Goulburn")

	for _, college := range []*model.College{a, b} {
		if _, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{
			CollegeID: college.CollegeID, Day: "Thursday", StartTime: "11:00",
		}); err != nil {
			t.Fatalf("不同学院同一时段应互不冲突: %v", err)
		}
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll 应成功: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("应有 2 条记录, got %d", len(all))
	}
}

// ── GetCell / ClearCell ──

func TestGetCell_EmptyCellIsNotFound(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")

	_, err := svc.GetCell(ctx, &dto.CellKeyRequest{Day: "Monday", StartTime: "09:00"})
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("空格子应返回未找到, got %v", err)
	}
}

func TestClearCell_IdempotentOnEmptyCell(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")

	key := &dto.CellKeyRequest{Day: "Monday", StartTime: "09:00"}

	// 格子本就为空：清除是幂等无操作
	if err := svc.ClearCell(ctx, key); err != nil {
		t.Fatalf("清除空格子应视为成功: %v", err)
	}

	if _, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: "Monday", StartTime: "09:00"}); err != nil {
		t.Fatalf("UpsertCell 应成功: %v", err)
	}
	if err := svc.ClearCell(ctx, key); err != nil {
		t.Fatalf("清除应成功: %v", err)
	}
	if _, err := svc.GetCell(ctx, key); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Fatalf("清除后格子应为空, got %v", err)
	}
	if err := svc.ClearCell(ctx, key); err != nil {
		t.Fatalf("重复清除应仍然成功: %v", err)
	}
}

// ── 列表排序 ──

func TestListAll_OrdersByDayThenSlot(t *testing.T) {
	cfg := singleCampusConfig()
	svc, repo, _ := newScheduleFixture(t, cfg)
	ctx := context.Background()

	seedCollege(t, repo, "Moss Vale")

	// 乱序写入
	for _, key := range [][2]string{
		{"Friday", "08:00"}, {"Monday", "14:00"}, {"Monday", "08:30"}, {"Wednesday", "10:00"},
	} {
		if _, err := svc.UpsertCell(ctx, &dto.UpsertCellRequest{Day: key[0], StartTime: key[1]}); err != nil {
			t.Fatalf("UpsertCell(%s %s) 应成功: %v", key[0], key[1], err)
		}
	}

	all, err := svc.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll 应成功: %v", err)
	}
	want := [][2]string{
		{"Monday", "08:30"}, {"Monday", "14:00"}, {"Wednesday", "10:00"}, {"Friday", "08:00"},
	}
	if len(all) != len(want) {
		t.Fatalf("记录数不符: got %d want %d", len(all), len(want))
	}
	for i, w := range want {
		if all[i].Day != w[0] || all[i].StartTime != w[1] {
			t.Fatalf("第 %d 行应为 %s %s, got %s %s", i, w[0], w[1], all[i].Day, all[i].StartTime)
		}
	}
}

// [自证通过] internal/service/schedule_service_test.go
