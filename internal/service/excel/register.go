package excel

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// RegisterExporter 报告台账 Excel 导出器
type RegisterExporter struct{}

// NewRegisterExporter 创建台账导出器
func NewRegisterExporter() *RegisterExporter {
	return &RegisterExporter{}
}

// Export 导出报告台账到 Excel
// 每行一份报告：基本信息、整体状态、各必须角色的意见以及审计结论
func (e *RegisterExporter) Export(reports []model.Report, grades map[string]string) (*excelize.File, error) {
	f := excelize.NewFile()

	sheetName := "报告台账"
	f.SetSheetName("Sheet1", sheetName)

	// 设置表头
	headers := []string{"序号", "标题", "提交日期", "整体状态"}
	for _, role := range model.RequiredApprovers {
		headers = append(headers, model.RoleDisplay[role])
	}
	headers = append(headers, "审计备注", "审计等级", "被审学院")

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, h)
	}

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(sheetName, 1, 1, headerStyle)

	// 写入数据
	for i, r := range reports {
		row := i + 2
		col := 1
		set := func(v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			f.SetCellValue(sheetName, cell, v)
			col++
		}

		set(i)
		set(r.Title)
		set(r.Date.Format("2006-01-02"))
		set(statusLabel(r.Status))
		for _, role := range model.RequiredApprovers {
			set(decisionLabel(r.Approvals[role]))
		}
		set(r.AuditorNotes)
		set(r.AuditGrade)
		set(r.AuditedInstitute)
	}

	// 创建等级汇总表
	if len(grades) > 0 {
		gradeSheet := "等级汇总"
		f.NewSheet(gradeSheet)
		f.SetCellValue(gradeSheet, "A1", "学院")
		f.SetCellValue(gradeSheet, "B1", "等级")
		f.SetRowStyle(gradeSheet, 1, 1, headerStyle)

		// 按学院名排序，保证多次导出的行序一致
		names := make([]string, 0, len(grades))
		for institute := range grades {
			names = append(names, institute)
		}
		sort.Strings(names)

		for i, institute := range names {
			row := i + 2
			f.SetCellValue(gradeSheet, fmt.Sprintf("A%d", row), institute)
			f.SetCellValue(gradeSheet, fmt.Sprintf("B%d", row), grades[institute])
		}
	}

	return f, nil
}

func statusLabel(status string) string {
	switch status {
	case model.StatusApproved:
		return "已通过"
	case model.StatusRejected:
		return "已驳回"
	default:
		return "待审批"
	}
}

func decisionLabel(d model.Decision) string {
	switch d.Decision {
	case model.DecisionApproved:
		return "通过"
	case model.DecisionRejected:
		return "驳回"
	default:
		return ""
	}
}
