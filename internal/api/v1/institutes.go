package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/session"
)

// ListInstitutes 查询学院名录
// GET /api/institutes
func (h *Handler) ListInstitutes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"institutes": h.institutes.All()})
}

type instituteRequest struct {
	Name string `json:"name"`
}

// AddInstitute 登记学院（仅管理员）
// 重复登记不报错，名录保持不变
// POST /api/institutes
func (h *Handler) AddInstitute(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}

	var req instituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if err := h.institutes.Add(req.Name); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"institutes": h.institutes.All()})
}

// RemoveInstitute 移除学院（仅管理员）
// 各会话中指向该学院的选择会被清除；等级台账与历史报告不受影响
// POST /api/institutes/remove
func (h *Handler) RemoveInstitute(c *gin.Context) {
	if _, ok := h.requireAdmin(c); !ok {
		return
	}

	var req instituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	if err := h.institutes.Remove(req.Name); err != nil {
		writeError(c, err)
		return
	}
	h.sessions.ClearSelectedInstitute(req.Name)
	c.JSON(http.StatusOK, gin.H{"institutes": h.institutes.All()})
}

// SelectInstitute 在当前会话中选定工作学院
// POST /api/institutes/select
func (h *Handler) SelectInstitute(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}

	var req instituteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}
	if !h.institutes.Contains(req.Name) {
		c.JSON(http.StatusNotFound, gin.H{"error": "学院未登记"})
		return
	}

	token, _ := currentSession(c)
	h.sessions.Update(token, func(s *session.Session) {
		s.SelectedInstitute = req.Name
	})
	c.JSON(http.StatusOK, gin.H{"selectedInstitute": req.Name})
}
