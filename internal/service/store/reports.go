package store

import (
	"strings"
	"sync"
	"time"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/service/approval"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/service/audit"
)

// ReportStore 报告存储
// 持有报告集合并负责 JSON 文件持久化；报告按创建顺序追加，以下标索引，
// 单个报告的读-改-写在锁内完成
type ReportStore struct {
	mu      sync.RWMutex
	path    string
	reports []*model.Report
}

// NewReportStore 从 JSON 文件加载报告集合
// 文件不存在或内容损坏时从空集合开始
func NewReportStore(path string) *ReportStore {
	s := &ReportStore{path: path}
	var items []*model.Report
	if err := readJSON(path, &items); err == nil {
		s.reports = items
	}
	for _, r := range s.reports {
		if r.Approvals == nil {
			r.Approvals = map[string]model.Decision{}
		}
	}
	return s
}

func (s *ReportStore) saveLocked() error {
	if s.reports == nil {
		return writeJSONAtomic(s.path, []*model.Report{})
	}
	return writeJSONAtomic(s.path, s.reports)
}

// Count 报告数量
func (s *ReportStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}

// List 返回全部报告的拷贝
func (s *ReportStore) List() []model.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Report, 0, len(s.reports))
	for _, r := range s.reports {
		out = append(out, *r.Clone())
	}
	return out
}

// Get 按下标获取报告
func (s *ReportStore) Get(index int) (model.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if index < 0 || index >= len(s.reports) {
		return model.Report{}, model.NewNotFoundError("报告不存在: %d", index)
	}
	return *s.reports[index].Clone(), nil
}

// Create 创建报告，返回新报告的下标
// 标题与正文去除首尾空白后不得为空；初始状态为 pending，无任何审批意见
func (s *ReportStore) Create(title, content string) (int, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return 0, model.NewValidationError("报告标题与内容不能为空")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	report := &model.Report{
		Title:     title,
		Content:   content,
		Date:      time.Now(),
		Status:    model.StatusPending,
		Approvals: map[string]model.Decision{},
	}
	s.reports = append(s.reports, report)

	if err := s.saveLocked(); err != nil {
		s.reports = s.reports[:len(s.reports)-1]
		return 0, &model.PersistenceError{Op: "保存报告数据", Err: err}
	}
	return len(s.reports) - 1, nil
}

// RecordDecision 记录某角色对某报告的审批意见并重算整体状态
// 下标越界在任何变更之前拒绝；同角色重复提交整体覆盖旧意见（不保留历史，
// 这是刻意保留的既有策略）
func (s *ReportStore) RecordDecision(index int, role, verdict, notes string) (model.Report, error) {
	if verdict != model.DecisionApproved && verdict != model.DecisionRejected {
		return model.Report{}, model.NewValidationError("非法的审批意见: %s", verdict)
	}
	if !model.IsRequiredApprover(role) {
		return model.Report{}, model.NewAuthorizationError("角色 %s 不在必须审批集合中", role)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.reports) {
		return model.Report{}, model.NewNotFoundError("报告不存在: %d", index)
	}

	report := s.reports[index]
	prev := report.Clone()

	report.Approvals[role] = model.Decision{
		Decision: verdict,
		Notes:    strings.TrimSpace(notes),
		Time:     time.Now(),
	}
	report.Status = approval.Recompute(report.Approvals)

	if err := s.saveLocked(); err != nil {
		s.reports[index] = prev
		return model.Report{}, &model.PersistenceError{Op: "保存报告数据", Err: err}
	}
	return *report.Clone(), nil
}

// RecordAuditReview 记录审计员的独立审查结论
// 与普通审批共用同一 approvals 集合（auditor 键），同时更新报告的审计备注，
// 状态聚合只看这一份数据
func (s *ReportStore) RecordAuditReview(index int, verdict, notes string) (model.Report, error) {
	if verdict != model.DecisionApproved && verdict != model.DecisionRejected {
		return model.Report{}, model.NewValidationError("非法的审查结论: %s", verdict)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.reports) {
		return model.Report{}, model.NewNotFoundError("报告不存在: %d", index)
	}

	report := s.reports[index]
	prev := report.Clone()

	notes = strings.TrimSpace(notes)
	report.AuditorNotes = notes
	report.Approvals[model.RoleAuditor] = model.Decision{
		Decision: verdict,
		Notes:    notes,
		Time:     time.Now(),
	}
	report.Status = approval.Recompute(report.Approvals)

	if err := s.saveLocked(); err != nil {
		s.reports[index] = prev
		return model.Report{}, &model.PersistenceError{Op: "保存报告数据", Err: err}
	}
	return *report.Clone(), nil
}

// SubmitAudit 提交审计问卷
// 在锁内完成问卷求值与四个审计字段的写入，提交是原子的：
// 校验失败或持久化失败时报告保持原样
func (s *ReportStore) SubmitAudit(index int, sub audit.Submission) (model.Report, audit.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.reports) {
		return model.Report{}, audit.Outcome{}, model.NewNotFoundError("报告不存在: %d", index)
	}

	report := s.reports[index]
	prev := report.Clone()

	outcome := audit.Evaluate(report, sub)
	report.AuditAnswers = outcome.Answers
	report.AuditorNotes = outcome.Notes
	report.AuditGrade = outcome.Grade
	report.AuditedInstitute = outcome.Institute

	if err := s.saveLocked(); err != nil {
		s.reports[index] = prev
		return model.Report{}, audit.Outcome{}, &model.PersistenceError{Op: "保存报告数据", Err: err}
	}
	return *report.Clone(), outcome, nil
}
