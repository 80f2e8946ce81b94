package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/session"
)

// GetCaptcha 签发新的数字验证码
// 每次请求都会轮换当前会话的验证码
// GET /api/captcha
func (h *Handler) GetCaptcha(c *gin.Context) {
	token, _ := currentSession(c)

	captcha := session.NewCaptcha()
	h.sessions.Update(token, func(s *session.Session) {
		s.Captcha = captcha
	})

	c.JSON(http.StatusOK, gin.H{"captcha": captcha})
}

type loginRequest struct {
	Role     string `json:"role"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

// Login 角色登录
// 校验角色口令与验证码；管理员角色登录后获得管理员身份而非普通审批角色。
// 失败后轮换验证码，防止重放
// POST /api/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求格式错误"})
		return
	}

	token, sess := currentSession(c)

	expected, known := h.creds[req.Role]
	if !known || req.Password != expected || req.Captcha == "" || req.Captcha != sess.Captcha {
		// 失败后轮换验证码
		captcha := session.NewCaptcha()
		h.sessions.Update(token, func(s *session.Session) {
			s.Captcha = captcha
		})
		c.JSON(http.StatusUnauthorized, gin.H{"error": "凭据或验证码错误"})
		return
	}

	isAdmin := model.IsAdminRole(req.Role)
	h.sessions.Update(token, func(s *session.Session) {
		s.Captcha = ""
		s.SelectedInstitute = ""
		if isAdmin {
			s.IsAdmin = true
			s.Role = ""
		} else {
			s.IsAdmin = false
			s.Role = req.Role
		}
	})

	resp := gin.H{"isAdmin": isAdmin}
	if !isAdmin {
		resp["role"] = req.Role
		resp["display"] = model.RoleDisplay[req.Role]
	}
	c.JSON(http.StatusOK, resp)
}

// Logout 注销当前会话
// POST /api/logout
func (h *Handler) Logout(c *gin.Context) {
	token, _ := currentSession(c)
	h.sessions.Delete(token)
	c.SetCookie(sessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetSession 查询当前会话状态
// GET /api/session
func (h *Handler) GetSession(c *gin.Context) {
	_, sess := currentSession(c)
	c.JSON(http.StatusOK, gin.H{
		"role":              sess.Role,
		"isAdmin":           sess.IsAdmin,
		"selectedInstitute": sess.SelectedInstitute,
	})
}
