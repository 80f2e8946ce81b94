package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// ListGrades 查询等级台账
// GET /api/grades
func (h *Handler) ListGrades(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"grades": h.grades.All()})
}

type assignGradeRequest struct {
	Institute string `json:"institute"`
	Grade     string `json:"grade"`
}

// AssignGrade 直接为学院指定等级（仅审计员）
// 同名学院覆盖旧等级
// POST /api/grades
func (h *Handler) AssignGrade(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleAuditor); !ok {
		return
	}

	var req assignGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if err := h.grades.Set(req.Institute, req.Grade); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"grades": h.grades.All()})
}
