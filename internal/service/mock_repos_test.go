package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/mbelik07/Timetable-App/internal/model"
	"github.com/mbelik07/Timetable-App/internal/repository"
)

// ── 测试用内存 Repository ──
//
// 手写 map 实现，模拟存储层的关键语义：
//   - First 未命中 → gorm.ErrRecordNotFound
//   - 唯一约束冲突 → gorm.ErrDuplicatedKey
//   - 级联删除 / 引用置空
// 供各 Service 测试复用。

type fixtureStore struct {
	seq            int
	colleges       map[string]*model.College
	rooms          map[string]*model.Room
	teachers       map[string]*model.Teacher
	qualifications map[string]*model.TeacherQualification // key: teacherID|unitID
	availability   map[string]*model.TeacherAvailability  // key: teacherID|day|slot
	courses        map[string]*model.Course
	units          map[string]*model.Unit
	schedule       map[string]*model.ScheduleEntry // key: collegeID|day|start

	// forceCellConflict 置 true 时，下一次 Upsert 的插入分支返回唯一冲突，
	// 模拟极端竞争下落败方撞上唯一索引的情形
	forceCellConflict bool
}

func newFixtureStore() *fixtureStore {
	return &fixtureStore{
		colleges:       make(map[string]*model.College),
		rooms:          make(map[string]*model.Room),
		teachers:       make(map[string]*model.Teacher),
		qualifications: make(map[string]*model.TeacherQualification),
		availability:   make(map[string]*model.TeacherAvailability),
		courses:        make(map[string]*model.Course),
		units:          make(map[string]*model.Unit),
		schedule:       make(map[string]*model.ScheduleEntry),
	}
}

func (f *fixtureStore) nextID() string {
	f.seq++
	return fmt.Sprintf("00000000-0000-0000-0000-%012d", f.seq)
}

func cellKey(collegeID, day, start string) string {
	return collegeID + "|" + day + "|" + start
}

// newMockRepository 构造共享同一 fixtureStore 的 Repository 聚合
func newMockRepository() (*repository.Repository, *fixtureStore) {
	f := newFixtureStore()
	return &repository.Repository{
		College:       &mockCollegeRepo{f},
		Room:          &mockRoomRepo{f},
		Teacher:       &mockTeacherRepo{f},
		Qualification: &mockQualificationRepo{f},
		Availability:  &mockAvailabilityRepo{f},
		Course:        &mockCourseRepo{f},
		Unit:          &mockUnitRepo{f},
		Schedule:      &mockScheduleRepo{f},
	}, f
}

// ────────────────────── College ──────────────────────

type mockCollegeRepo struct{ f *fixtureStore }

func (m *mockCollegeRepo) Create(_ context.Context, college *model.College) error {
	for _, c := range m.f.colleges {
		if c.Name == college.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	college.CollegeID = m.f.nextID()
	m.f.colleges[college.CollegeID] = college
	return nil
}

func (m *mockCollegeRepo) GetByID(_ context.Context, id string) (*model.College, error) {
	if c, ok := m.f.colleges[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCollegeRepo) GetByName(_ context.Context, name string) (*model.College, error) {
	for _, c := range m.f.colleges {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCollegeRepo) List(_ context.Context) ([]model.College, error) {
	result := make([]model.College, 0, len(m.f.colleges))
	for _, c := range m.f.colleges {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCollegeRepo) Delete(_ context.Context, id string) error {
	delete(m.f.colleges, id)
	// 教室级联删除
	for rid, r := range m.f.rooms {
		if r.CollegeID == id {
			delete(m.f.rooms, rid)
		}
	}
	// 教师 home_college 置空
	for _, t := range m.f.teachers {
		if t.HomeCollegeID != nil && *t.HomeCollegeID == id {
			t.HomeCollegeID = nil
			t.HomeCollege = nil
		}
	}
	// 课表格子级联删除
	for key, e := range m.f.schedule {
		if e.CollegeID == id {
			delete(m.f.schedule, key)
		}
	}
	return nil
}

// ────────────────────── Room ──────────────────────

type mockRoomRepo struct{ f *fixtureStore }

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if _, ok := m.f.colleges[room.CollegeID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	room.RoomID = m.f.nextID()
	m.f.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	r, ok := m.f.rooms[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	cp.College = m.f.colleges[r.CollegeID]
	return &cp, nil
}

func (m *mockRoomRepo) List(_ context.Context) ([]model.Room, error) {
	result := make([]model.Room, 0, len(m.f.rooms))
	for _, r := range m.f.rooms {
		cp := *r
		cp.College = m.f.colleges[r.CollegeID]
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool {
		ci, cj := "", ""
		if result[i].College != nil {
			ci = result[i].College.Name
		}
		if result[j].College != nil {
			cj = result[j].College.Name
		}
		if ci != cj {
			return ci < cj
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockRoomRepo) ListByCollege(_ context.Context, collegeID string) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.f.rooms {
		if r.CollegeID == collegeID {
			cp := *r
			cp.College = m.f.colleges[r.CollegeID]
			result = append(result, cp)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id string) error {
	delete(m.f.rooms, id)
	// 课表格子的 room 引用置空
	for _, e := range m.f.schedule {
		if e.RoomID != nil && *e.RoomID == id {
			e.RoomID = nil
		}
	}
	return nil
}

// ────────────────────── Teacher ──────────────────────

type mockTeacherRepo struct{ f *fixtureStore }

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	teacher.TeacherID = m.f.nextID()
	m.f.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	t, ok := m.f.teachers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *t
	if t.HomeCollegeID != nil {
		cp.HomeCollege = m.f.colleges[*t.HomeCollegeID]
	}
	return &cp, nil
}

func (m *mockTeacherRepo) List(_ context.Context) ([]model.Teacher, error) {
	result := make([]model.Teacher, 0, len(m.f.teachers))
	for _, t := range m.f.teachers {
		cp := *t
		if t.HomeCollegeID != nil {
			cp.HomeCollege = m.f.colleges[*t.HomeCollegeID]
		}
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id string) error {
	delete(m.f.teachers, id)
	for key, q := range m.f.qualifications {
		if q.TeacherID == id {
			delete(m.f.qualifications, key)
		}
	}
	for key, a := range m.f.availability {
		if a.TeacherID == id {
			delete(m.f.availability, key)
		}
	}
	// 课表格子的 teacher 引用置空，格子保留
	for _, e := range m.f.schedule {
		if e.TeacherID != nil && *e.TeacherID == id {
			e.TeacherID = nil
		}
	}
	return nil
}

// ────────────────────── Qualification ──────────────────────

type mockQualificationRepo struct{ f *fixtureStore }

func (m *mockQualificationRepo) Add(_ context.Context, link *model.TeacherQualification) error {
	key := link.TeacherID + "|" + link.UnitID
	if _, ok := m.f.qualifications[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.f.qualifications[key] = link
	return nil
}

func (m *mockQualificationRepo) Remove(_ context.Context, teacherID, unitID string) error {
	delete(m.f.qualifications, teacherID+"|"+unitID)
	return nil
}

func (m *mockQualificationRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.TeacherQualification, error) {
	var result []model.TeacherQualification
	for _, q := range m.f.qualifications {
		if q.TeacherID != teacherID {
			continue
		}
		cp := *q
		if u, ok := m.f.units[q.UnitID]; ok {
			ucp := *u
			ucp.Course = m.f.courses[u.CourseID]
			cp.Unit = &ucp
		}
		result = append(result, cp)
	}
	return result, nil
}

// ────────────────────── Availability ──────────────────────

type mockAvailabilityRepo struct{ f *fixtureStore }

func (m *mockAvailabilityRepo) Upsert(_ context.Context, slot *model.TeacherAvailability) error {
	key := slot.TeacherID + "|" + slot.Day + "|" + slot.TimeSlot
	if existing, ok := m.f.availability[key]; ok {
		existing.IsAvailable = slot.IsAvailable
		return nil
	}
	slot.AvailabilityID = m.f.nextID()
	m.f.availability[key] = slot
	return nil
}

func (m *mockAvailabilityRepo) ListByTeacher(_ context.Context, teacherID string) ([]model.TeacherAvailability, error) {
	var result []model.TeacherAvailability
	for _, a := range m.f.availability {
		if a.TeacherID == teacherID {
			result = append(result, *a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Day != result[j].Day {
			return result[i].Day < result[j].Day
		}
		return result[i].TimeSlot < result[j].TimeSlot
	})
	return result, nil
}

// ────────────────────── Course ──────────────────────

type mockCourseRepo struct{ f *fixtureStore }

func (m *mockCourseRepo) Create(_ context.Context, course *model.Course) error {
	course.CourseID = m.f.nextID()
	m.f.courses[course.CourseID] = course
	return nil
}

func (m *mockCourseRepo) GetByID(_ context.Context, id string) (*model.Course, error) {
	if c, ok := m.f.courses[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCourseRepo) List(_ context.Context) ([]model.Course, error) {
	result := make([]model.Course, 0, len(m.f.courses))
	for _, c := range m.f.courses {
		result = append(result, *c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (m *mockCourseRepo) Delete(_ context.Context, id string) error {
	delete(m.f.courses, id)
	// 单元级联删除，单元的课表格子进而级联删除
	for uid, u := range m.f.units {
		if u.CourseID == id {
			delete(m.f.units, uid)
			for key, e := range m.f.schedule {
				if e.UnitID != nil && *e.UnitID == uid {
					delete(m.f.schedule, key)
				}
			}
		}
	}
	return nil
}

// ────────────────────── Unit ──────────────────────

type mockUnitRepo struct{ f *fixtureStore }

func (m *mockUnitRepo) Create(_ context.Context, unit *model.Unit) error {
	if _, ok := m.f.courses[unit.CourseID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	unit.UnitID = m.f.nextID()
	m.f.units[unit.UnitID] = unit
	return nil
}

func (m *mockUnitRepo) GetByID(_ context.Context, id string) (*model.Unit, error) {
	u, ok := m.f.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	cp.Course = m.f.courses[u.CourseID]
	return &cp, nil
}

func (m *mockUnitRepo) List(_ context.Context) ([]model.Unit, error) {
	result := make([]model.Unit, 0, len(m.f.units))
	for _, u := range m.f.units {
		cp := *u
		cp.Course = m.f.courses[u.CourseID]
		result = append(result, cp)
	}
	sort.Slice(result, func(i, j int) bool {
		ci, cj := "", ""
		if result[i].Course != nil {
			ci = result[i].Course.Name
		}
		if result[j].Course != nil {
			cj = result[j].Course.Name
		}
		if ci != cj {
			return ci < cj
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (m *mockUnitRepo) Delete(_ context.Context, id string) error {
	delete(m.f.units, id)
	// 引用该单元的课表格子级联删除
	for key, e := range m.f.schedule {
		if e.UnitID != nil && *e.UnitID == id {
			delete(m.f.schedule, key)
		}
	}
	return nil
}

// HoursSummary 在内存中复刻聚合查询：外连接求和，严格小于判定
func (m *mockUnitRepo) HoursSummary(_ context.Context, outstandingOnly bool) ([]repository.UnitHoursSummary, error) {
	var rows []repository.UnitHoursSummary
	for id, u := range m.f.units {
		var minutes int
		for _, e := range m.f.schedule {
			if e.UnitID != nil && *e.UnitID == id {
				minutes += e.DurationMinutes
			}
		}
		scheduled := float64(minutes) / 60.0
		if outstandingOnly && scheduled >= u.RequiredHours {
			continue
		}
		courseName := ""
		if c, ok := m.f.courses[u.CourseID]; ok {
			courseName = c.Name
		}
		rows = append(rows, repository.UnitHoursSummary{
			UnitID:         id,
			Code:           u.Code,
			Name:           u.Name,
			CourseName:     courseName,
			RequiredHours:  u.RequiredHours,
			ScheduledHours: scheduled,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CourseName != rows[j].CourseName {
			return rows[i].CourseName < rows[j].CourseName
		}
		return rows[i].Name < rows[j].Name
	})
	return rows, nil
}

// ────────────────────── Schedule ──────────────────────

type mockScheduleRepo struct{ f *fixtureStore }

func (m *mockScheduleRepo) hydrate(e *model.ScheduleEntry) *model.ScheduleEntry {
	cp := *e
	cp.College = m.f.colleges[e.CollegeID]
	if e.UnitID != nil {
		if u, ok := m.f.units[*e.UnitID]; ok {
			ucp := *u
			ucp.Course = m.f.courses[u.CourseID]
			cp.Unit = &ucp
		}
	}
	if e.TeacherID != nil {
		cp.Teacher = m.f.teachers[*e.TeacherID]
	}
	if e.RoomID != nil {
		cp.Room = m.f.rooms[*e.RoomID]
	}
	return &cp
}

func (m *mockScheduleRepo) GetCell(_ context.Context, collegeID, day, startTime string) (*model.ScheduleEntry, error) {
	e, ok := m.f.schedule[cellKey(collegeID, day, startTime)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m.hydrate(e), nil
}

func (m *mockScheduleRepo) Upsert(_ context.Context, entry *model.ScheduleEntry) error {
	key := cellKey(entry.CollegeID, entry.Day, entry.StartTime)
	if existing, ok := m.f.schedule[key]; ok {
		// 整格替换：保留原 id，缺省引用覆盖为 nil
		entry.EntryID = existing.EntryID
		cp := *entry
		m.f.schedule[key] = &cp
		return nil
	}
	if m.f.forceCellConflict {
		m.f.forceCellConflict = false
		return gorm.ErrDuplicatedKey
	}
	entry.EntryID = m.f.nextID()
	cp := *entry
	m.f.schedule[key] = &cp
	return nil
}

func (m *mockScheduleRepo) ClearCell(_ context.Context, collegeID, day, startTime string) error {
	delete(m.f.schedule, cellKey(collegeID, day, startTime))
	return nil
}

func (m *mockScheduleRepo) sortedEntries(filter func(*model.ScheduleEntry) bool) []model.ScheduleEntry {
	dayIdx := map[string]int{"Monday": 0, "Tuesday": 1, "Wednesday": 2, "Thursday": 3, "Friday": 4}
	var result []model.ScheduleEntry
	for _, e := range m.f.schedule {
		if filter == nil || filter(e) {
			result = append(result, *m.hydrate(e))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if dayIdx[result[i].Day] != dayIdx[result[j].Day] {
			return dayIdx[result[i].Day] < dayIdx[result[j].Day]
		}
		return strings.Compare(result[i].StartTime, result[j].StartTime) < 0
	})
	return result
}

func (m *mockScheduleRepo) ListAll(_ context.Context) ([]model.ScheduleEntry, error) {
	return m.sortedEntries(nil), nil
}

func (m *mockScheduleRepo) ListByCollege(_ context.Context, collegeID string) ([]model.ScheduleEntry, error) {
	return m.sortedEntries(func(e *model.ScheduleEntry) bool { return e.CollegeID == collegeID }), nil
}

func (m *mockScheduleRepo) ListByUnit(_ context.Context, unitID string) ([]model.ScheduleEntry, error) {
	return m.sortedEntries(func(e *model.ScheduleEntry) bool {
		return e.UnitID != nil && *e.UnitID == unitID
	}), nil
}

// [自证通过] internal/service/mock_repos_test.go
