package model

import "time"

// 报告整体状态
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// 审批意见
const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// Decision 单个角色的审批意见
// 同一角色再次提交时整体覆盖旧记录（不保留历史）
type Decision struct {
	Decision string    `json:"decision"`
	Notes    string    `json:"notes"`
	Time     time.Time `json:"time"`
}

// Report 质量保障报告
// title/content/date 创建后不可修改；status 由 approvals 推导，
// 审计相关字段仅由问卷提交写入
type Report struct {
	Title            string              `json:"title"`
	Content          string              `json:"content"`
	Date             time.Time           `json:"date"`
	Status           string              `json:"status"`
	AuditorNotes     string              `json:"auditor_notes"`
	Approvals        map[string]Decision `json:"approvals"`
	AuditAnswers     map[string]string   `json:"audit_answers,omitempty"`
	AuditGrade       string              `json:"audit_grade,omitempty"`
	AuditedInstitute string              `json:"audited_institute,omitempty"`
}

// Clone 深拷贝报告（持久化失败时用于回滚内存状态）
func (r *Report) Clone() *Report {
	out := *r
	out.Approvals = make(map[string]Decision, len(r.Approvals))
	for k, v := range r.Approvals {
		out.Approvals[k] = v
	}
	if r.AuditAnswers != nil {
		out.AuditAnswers = make(map[string]string, len(r.AuditAnswers))
		for k, v := range r.AuditAnswers {
			out.AuditAnswers[k] = v
		}
	}
	return &out
}
