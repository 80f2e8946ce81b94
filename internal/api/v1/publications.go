package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// 教师学术成果提交记录，落在 SQLite 中，独立于报告审批流

// SubmitFacultyDetails 登记教师基本信息
// 教师、校内协调员、主任或管理员均可登记
// POST /api/faculty/details
func (h *Handler) SubmitFacultyDetails(c *gin.Context) {
	_, sess := currentSession(c)
	allowed := sess.IsAdmin ||
		sess.Role == model.RoleFaculty ||
		sess.Role == model.RoleIQACCoordinators ||
		sess.Role == model.RoleDirector
	if !allowed {
		writeError(c, model.NewAuthorizationError("当前身份无权执行该操作"))
		return
	}

	var detail model.FacultyDetail
	if err := c.ShouldBindJSON(&detail); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	id, err := h.records.InsertFacultyDetail(&detail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListFacultyDetails 查询教师基本信息记录
// GET /api/faculty/details
func (h *Handler) ListFacultyDetails(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}
	items, err := h.records.ListFacultyDetails()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SubmitResearchPaper 提交期刊论文记录（仅教师）
// POST /api/faculty/research-papers
func (h *Handler) SubmitResearchPaper(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleFaculty); !ok {
		return
	}

	var paper model.ResearchPaper
	if err := c.ShouldBindJSON(&paper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	id, err := h.records.InsertResearchPaper(&paper)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListResearchPapers 查询期刊论文记录
// GET /api/faculty/research-papers
func (h *Handler) ListResearchPapers(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}
	items, err := h.records.ListResearchPapers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SubmitConferencePaper 提交会议论文记录（仅教师）
// POST /api/faculty/conference-papers
func (h *Handler) SubmitConferencePaper(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleFaculty); !ok {
		return
	}

	var paper model.ConferencePaper
	if err := c.ShouldBindJSON(&paper); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	id, err := h.records.InsertConferencePaper(&paper)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListConferencePapers 查询会议论文记录
// GET /api/faculty/conference-papers
func (h *Handler) ListConferencePapers(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}
	items, err := h.records.ListConferencePapers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SubmitBookPublication 提交专著出版记录（仅教师）
// POST /api/faculty/book-publications
func (h *Handler) SubmitBookPublication(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleFaculty); !ok {
		return
	}

	var pub model.BookPublication
	if err := c.ShouldBindJSON(&pub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	id, err := h.records.InsertBookPublication(&pub)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListBookPublications 查询专著出版记录
// GET /api/faculty/book-publications
func (h *Handler) ListBookPublications(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}
	items, err := h.records.ListBookPublications()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// SubmitBookChapter 提交专著章节记录（仅教师）
// POST /api/faculty/book-chapters
func (h *Handler) SubmitBookChapter(c *gin.Context) {
	if _, ok := h.requireRole(c, model.RoleFaculty); !ok {
		return
	}

	var chapter model.BookChapter
	if err := c.ShouldBindJSON(&chapter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	id, err := h.records.InsertBookChapter(&chapter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "保存失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// ListBookChapters 查询专著章节记录
// GET /api/faculty/book-chapters
func (h *Handler) ListBookChapters(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}
	items, err := h.records.ListBookChapters()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "查询失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
