package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

type listReportsResponse struct {
	Items             []model.Report    `json:"items"`
	RequiredApprovers []string          `json:"requiredApprovers"`
	RoleDisplay       map[string]string `json:"roleDisplay"`
}

// ListReports 查询报告列表
// GET /api/reports
func (h *Handler) ListReports(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}

	c.JSON(http.StatusOK, listReportsResponse{
		Items:             h.reports.List(),
		RequiredApprovers: model.RequiredApprovers,
		RoleDisplay:       model.RoleDisplay,
	})
}

type createReportRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreateReport 创建报告（仅教师角色）
// POST /api/reports
func (h *Handler) CreateReport(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleFaculty); !ok {
		return
	}

	var req createReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	index, err := h.reports.Create(req.Title, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"index": index})
}

type decisionRequest struct {
	Action string `json:"action"` // approve / reject
	Notes  string `json:"notes"`
}

// SubmitDecision 提交审批意见（仅必须审批集合中的角色）
// 同角色重复提交整体覆盖旧意见；提交后立即重算整体状态
// POST /api/reports/:index/decision
func (h *Handler) SubmitDecision(c *gin.Context) {
	sess, ok := h.requireRole(c, model.RequiredApprovers...)
	if !ok {
		return
	}

	index, err := parseReportIndex(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req decisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	var verdict string
	switch req.Action {
	case "approve":
		verdict = model.DecisionApproved
	case "reject":
		verdict = model.DecisionRejected
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "非法的审批动作"})
		return
	}

	report, err := h.reports.RecordDecision(index, sess.Role, verdict, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": report.Status})
}
