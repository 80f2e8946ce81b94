package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/session"
)

const (
	sessionCookie = "iqac_session"

	ctxKeyToken   = "sessionToken"
	ctxKeySession = "session"
)

// Middleware 解析会话 Cookie 并挂载到请求上下文
// 无 Cookie 或会话已过期时签发匿名会话
func (h *Handler) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(sessionCookie)
		token, sess := h.sessions.Ensure(token)

		c.SetCookie(sessionCookie, token, 0, "/", "", false, true)
		c.Set(ctxKeyToken, token)
		c.Set(ctxKeySession, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) (string, session.Session) {
	token := c.GetString(ctxKeyToken)
	if v, ok := c.Get(ctxKeySession); ok {
		if sess, ok := v.(session.Session); ok {
			return token, sess
		}
	}
	return token, session.Session{}
}

// writeError 按错误类型映射 HTTP 状态码
// ValidationError→400 AuthorizationError→401 NotFoundError→404 PersistenceError→500
func writeError(c *gin.Context, err error) {
	var (
		ve *model.ValidationError
		ae *model.AuthorizationError
		ne *model.NotFoundError
	)
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &ae):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &ne):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// requireLogin 要求任意已登录身份（普通角色或管理员）
func (h *Handler) requireLogin(c *gin.Context) (session.Session, bool) {
	_, sess := currentSession(c)
	if sess.Role == "" && !sess.IsAdmin {
		writeError(c, model.NewAuthorizationError("请先登录"))
		return session.Session{}, false
	}
	return sess, true
}

// requireRole 要求当前会话持有指定角色之一
// 管理员不持有普通审批角色，因此不能通过该检查
func (h *Handler) requireRole(c *gin.Context, roles ...string) (session.Session, bool) {
	_, sess := currentSession(c)
	for _, role := range roles {
		if sess.Role == role {
			return sess, true
		}
	}
	writeError(c, model.NewAuthorizationError("当前身份无权执行该操作"))
	return session.Session{}, false
}

// requireAdmin 要求管理员身份
func (h *Handler) requireAdmin(c *gin.Context) (session.Session, bool) {
	_, sess := currentSession(c)
	if !sess.IsAdmin {
		writeError(c, model.NewAuthorizationError("仅管理员可执行该操作"))
		return session.Session{}, false
	}
	return sess, true
}

// parseReportIndex 解析路径中的报告下标
func parseReportIndex(c *gin.Context) (int, error) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return 0, model.NewValidationError("非法的报告下标: %s", c.Param("index"))
	}
	return index, nil
}
