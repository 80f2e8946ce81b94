package v1

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/service/excel"
)

// Export 导出报告台账 Excel，返回一次性下载地址
// POST /api/export
func (h *Handler) Export(c *gin.Context) {
	if _, ok := h.requireLogin(c); !ok {
		return
	}

	exp := excel.NewRegisterExporter()
	file, err := exp.Export(h.reports.List(), h.grades.All())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}
	defer file.Close()

	tempPath := filepath.Join(h.exportDir, fmt.Sprintf("iqac_register_%d_%d.xlsx", time.Now().UnixNano(), os.Getpid()))
	if err := file.SaveAs(tempPath); err != nil {
		_ = os.Remove(tempPath)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "写入导出文件失败: " + err.Error()})
		return
	}

	fileName := fmt.Sprintf("IQAC报告台账_%s.xlsx", time.Now().Format("20060102"))
	token := h.downloads.put(tempPath, fileName, 10*time.Minute)
	c.JSON(http.StatusOK, gin.H{
		"downloadUrl": fmt.Sprintf("/api/export/download/%s", token),
	})
}

// DownloadExport 下载导出的 Excel 文件（一次性）
// GET /api/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.get(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		h.downloads.delete(token)
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件不存在"})
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(item.fileName)))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.File(item.filePath)

	h.downloads.delete(token)
	_ = os.Remove(item.filePath)
}
