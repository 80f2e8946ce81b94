package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/session"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/store"

	jsonstore "github.com/hrushikeshnair/MGMU-IQAC/internal/service/store"
)

// Handler IQAC API 处理器
type Handler struct {
	reports    *jsonstore.ReportStore
	institutes *jsonstore.InstituteRegistry
	grades     *jsonstore.GradeLedger
	records    *store.Store
	sessions   *session.Manager
	creds      map[string]string
	exportDir  string
	downloads  *exportDownloadStore
}

// NewHandler 创建 API 处理器
func NewHandler(
	reports *jsonstore.ReportStore,
	institutes *jsonstore.InstituteRegistry,
	grades *jsonstore.GradeLedger,
	records *store.Store,
	sessions *session.Manager,
	creds map[string]string,
	exportDir string,
) *Handler {
	return &Handler{
		reports:    reports,
		institutes: institutes,
		grades:     grades,
		records:    records,
		sessions:   sessions,
		creds:      creds,
		exportDir:  exportDir,
		downloads:  newExportDownloadStore(),
	}
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 登录与会话
	router.GET("/captcha", h.GetCaptcha)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)
	router.GET("/session", h.GetSession)

	// 报告与审批
	router.GET("/reports", h.ListReports)
	router.POST("/reports", h.CreateReport)
	router.POST("/reports/:index/decision", h.SubmitDecision)

	// 审计
	router.POST("/audit/reports/:index/review", h.SubmitAuditReview)
	router.GET("/audit/reports/:index/questionnaire", h.GetQuestionnaire)
	router.POST("/audit/reports/:index/questionnaire", h.SubmitQuestionnaire)

	// 等级
	router.GET("/grades", h.ListGrades)
	router.POST("/grades", h.AssignGrade)

	// 学院
	router.GET("/institutes", h.ListInstitutes)
	router.POST("/institutes", h.AddInstitute)
	router.POST("/institutes/remove", h.RemoveInstitute)
	router.POST("/institutes/select", h.SelectInstitute)

	// 教师提交记录
	router.GET("/faculty/details", h.ListFacultyDetails)
	router.POST("/faculty/details", h.SubmitFacultyDetails)
	router.GET("/faculty/research-papers", h.ListResearchPapers)
	router.POST("/faculty/research-papers", h.SubmitResearchPaper)
	router.GET("/faculty/conference-papers", h.ListConferencePapers)
	router.POST("/faculty/conference-papers", h.SubmitConferencePaper)
	router.GET("/faculty/book-publications", h.ListBookPublications)
	router.POST("/faculty/book-publications", h.SubmitBookPublication)
	router.GET("/faculty/book-chapters", h.ListBookChapters)
	router.POST("/faculty/book-chapters", h.SubmitBookChapter)

	// 报告台账导出
	router.POST("/export", h.Export)
	router.GET("/export/download/:token", h.DownloadExport)
}
