package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/service/audit"
)

type auditReviewRequest struct {
	Status string `json:"status"` // approved / rejected
	Notes  string `json:"notes"`
}

// SubmitAuditReview 审计员提交独立审查结论
// 结论写入与普通审批共用的 approvals 集合（auditor 键），聚合只看这一份数据
// POST /api/audit/reports/:index/review
func (h *Handler) SubmitAuditReview(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleAuditor); !ok {
		return
	}

	index, err := parseReportIndex(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req auditReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	report, err := h.reports.RecordAuditReview(index, req.Status, req.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": report.Status})
}

// GetQuestionnaire 获取某报告的审计问卷
// 基础问卷之后附带该报告历史答卷中的自定义问题；
// 历史答案与审计字段一并返回，供重复审计时回填
// GET /api/audit/reports/:index/questionnaire
func (h *Handler) GetQuestionnaire(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleAuditor); !ok {
		return
	}

	index, err := parseReportIndex(c)
	if err != nil {
		writeError(c, err)
		return
	}

	report, err := h.reports.Get(index)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"questions":        audit.Questions(&report),
		"answers":          report.AuditAnswers,
		"auditorNotes":     report.AuditorNotes,
		"auditGrade":       report.AuditGrade,
		"auditedInstitute": report.AuditedInstitute,
		"institutes":       h.institutes.All(),
		"grades":           h.grades.All(),
	})
}

type questionnaireRequest struct {
	TotalQuestions int      `json:"totalQuestions"`
	QuestionTexts  []string `json:"questionTexts"` // 按下标对应的自定义题目文本
	Answers        []string `json:"answers"`       // 按下标对应的 Y/N 答案
	Notes          string   `json:"notes"`
	Grade          string   `json:"grade"`
	Institute      string   `json:"institute"`
}

// SubmitQuestionnaire 提交审计问卷
// 提交是原子的：全部审计字段一次写入报告；同时选择了学院与等级时，
// 顺带更新等级台账
// POST /api/audit/reports/:index/questionnaire
func (h *Handler) SubmitQuestionnaire(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleAuditor); !ok {
		return
	}

	index, err := parseReportIndex(c)
	if err != nil {
		writeError(c, err)
		return
	}

	var req questionnaireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	sub := audit.Submission{
		Total:     req.TotalQuestions,
		Texts:     map[int]string{},
		Answers:   map[int]string{},
		Notes:     req.Notes,
		Grade:     req.Grade,
		Institute: req.Institute,
	}
	for i, text := range req.QuestionTexts {
		sub.Texts[i] = text
	}
	for i, answer := range req.Answers {
		sub.Answers[i] = answer
	}

	report, outcome, err := h.reports.SubmitAudit(index, sub)
	if err != nil {
		writeError(c, err)
		return
	}

	// 学院与等级齐备时更新等级台账
	if outcome.Institute != "" && outcome.Grade != "" {
		if err := h.grades.Set(outcome.Institute, outcome.Grade); err != nil {
			writeError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       report.Status,
		"auditGrade":   report.AuditGrade,
		"auditAnswers": report.AuditAnswers,
	})
}
