package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
	"github.com/hrushikeshnair/MGMU-IQAC/internal/service/audit"
)

func asError(err error, target interface{}) bool {
	return errors.As(err, target)
}

func newTestReportStore(t *testing.T) *ReportStore {
	t.Helper()
	return NewReportStore(filepath.Join(t.TempDir(), "faculty_reports.json"))
}

// TestCreateReport 测试创建报告
func TestCreateReport(t *testing.T) {
	s := newTestReportStore(t)

	index, err := s.Create("  T  ", "C")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if index != 0 {
		t.Errorf("index = %d, want 0", index)
	}

	report, err := s.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if report.Title != "T" {
		t.Errorf("Title = %q, want T", report.Title)
	}
	if report.Status != model.StatusPending {
		t.Errorf("Status = %s, want pending", report.Status)
	}
	if len(report.Approvals) != 0 {
		t.Errorf("new report should have no approvals, got %d", len(report.Approvals))
	}
}

// TestCreateReportValidation 标题或内容为空时拒绝创建
func TestCreateReportValidation(t *testing.T) {
	s := newTestReportStore(t)

	if _, err := s.Create("   ", "C"); err == nil {
		t.Error("Create with blank title should fail")
	}
	if _, err := s.Create("T", ""); err == nil {
		t.Error("Create with empty content should fail")
	}
	if s.Count() != 0 {
		t.Errorf("failed creates should not change state, count = %d", s.Count())
	}
}

// TestRecordDecisionOutOfRange 下标越界在任何变更之前拒绝
func TestRecordDecisionOutOfRange(t *testing.T) {
	s := newTestReportStore(t)
	s.Create("T", "C")

	for _, index := range []int{-1, 1, 100} {
		_, err := s.RecordDecision(index, model.RoleHOD, model.DecisionApproved, "")
		var nf *model.NotFoundError
		if !asError(err, &nf) {
			t.Errorf("RecordDecision(%d) error = %v, want NotFoundError", index, err)
		}
	}
}

// TestRecordDecisionUnknownRole 非必须审批角色不能提交意见
func TestRecordDecisionUnknownRole(t *testing.T) {
	s := newTestReportStore(t)
	s.Create("T", "C")

	_, err := s.RecordDecision(0, model.RoleFaculty, model.DecisionApproved, "")
	var ae *model.AuthorizationError
	if !asError(err, &ae) {
		t.Errorf("error = %v, want AuthorizationError", err)
	}
}

// TestApprovalScenario 审批场景：单个同意保持 pending，七个角色全部同意后 approved
func TestApprovalScenario(t *testing.T) {
	s := newTestReportStore(t)
	s.Create("T", "C")

	report, err := s.RecordDecision(0, model.RoleHOD, model.DecisionApproved, "ok")
	if err != nil {
		t.Fatalf("RecordDecision failed: %v", err)
	}
	if report.Status != model.StatusPending {
		t.Errorf("after one approval status = %s, want pending", report.Status)
	}

	for _, role := range model.RequiredApprovers {
		report, err = s.RecordDecision(0, role, model.DecisionApproved, "")
		if err != nil {
			t.Fatalf("RecordDecision(%s) failed: %v", role, err)
		}
	}
	if report.Status != model.StatusApproved {
		t.Errorf("after all approvals status = %s, want approved", report.Status)
	}
}

// TestDecisionOverwrite 同角色重复提交整体覆盖，意见翻转时状态随之翻转
func TestDecisionOverwrite(t *testing.T) {
	s := newTestReportStore(t)
	s.Create("T", "C")

	for _, role := range model.RequiredApprovers {
		if _, err := s.RecordDecision(0, role, model.DecisionApproved, ""); err != nil {
			t.Fatalf("RecordDecision(%s) failed: %v", role, err)
		}
	}

	report, err := s.RecordDecision(0, model.RoleDirector, model.DecisionRejected, "问题较多")
	if err != nil {
		t.Fatalf("RecordDecision failed: %v", err)
	}
	if report.Status != model.StatusRejected {
		t.Errorf("after flip status = %s, want rejected", report.Status)
	}
	if len(report.Approvals) != len(model.RequiredApprovers) {
		t.Errorf("approvals count = %d, want %d (overwrite, not append)",
			len(report.Approvals), len(model.RequiredApprovers))
	}
}

// TestRecordAuditReview 审计员审查写入共用的 approvals 集合并更新审计备注
func TestRecordAuditReview(t *testing.T) {
	s := newTestReportStore(t)
	s.Create("T", "C")

	report, err := s.RecordAuditReview(0, model.DecisionRejected, " 资料不全 ")
	if err != nil {
		t.Fatalf("RecordAuditReview failed: %v", err)
	}
	if report.Status != model.StatusRejected {
		t.Errorf("status = %s, want rejected", report.Status)
	}
	d, ok := report.Approvals[model.RoleAuditor]
	if !ok {
		t.Fatal("auditor decision missing from approvals")
	}
	if d.Decision != model.DecisionRejected {
		t.Errorf("auditor decision = %s, want rejected", d.Decision)
	}
	if report.AuditorNotes != "资料不全" {
		t.Errorf("AuditorNotes = %q", report.AuditorNotes)
	}
}

// TestSubmitAudit 问卷提交原子写入四个审计字段
func TestSubmitAudit(t *testing.T) {
	s := newTestReportStore(t)
	s.Create("T", "C")

	report, outcome, err := s.SubmitAudit(0, audit.Submission{
		Total:     len(audit.BaseQuestions),
		Answers:   map[int]string{0: "y", 1: "N"},
		Notes:     "audit notes",
		Grade:     "A++",
		Institute: "Inst1",
	})
	if err != nil {
		t.Fatalf("SubmitAudit failed: %v", err)
	}

	if len(report.AuditAnswers) != len(audit.BaseQuestions) {
		t.Errorf("audit answers = %d, want %d", len(report.AuditAnswers), len(audit.BaseQuestions))
	}
	if report.AuditAnswers[audit.BaseQuestions[0]] != "Y" {
		t.Errorf("answer[0] = %q, want Y", report.AuditAnswers[audit.BaseQuestions[0]])
	}
	// 未作答题目归一化为 N
	if report.AuditAnswers[audit.BaseQuestions[2]] != "N" {
		t.Errorf("unanswered = %q, want N", report.AuditAnswers[audit.BaseQuestions[2]])
	}
	if report.AuditGrade != "A++" || report.AuditedInstitute != "Inst1" || report.AuditorNotes != "audit notes" {
		t.Errorf("audit fields not written: %+v", report)
	}
	if outcome.Grade != "A++" || outcome.Institute != "Inst1" {
		t.Errorf("outcome = %+v", outcome)
	}
}

// blockSavePath 用同名目录占住存储路径，使后续保存必然失败
func blockSavePath(t *testing.T, path string) {
	t.Helper()
	_ = os.Remove(path)
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatalf("block save path: %v", err)
	}
}

// TestRecordDecisionRollbackOnSaveFailure 持久化失败返回 PersistenceError 并回滚内存变更
func TestRecordDecisionRollbackOnSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty_reports.json")
	s := NewReportStore(path)
	if _, err := s.Create("T", "C"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	blockSavePath(t, path)

	_, err := s.RecordDecision(0, model.RoleHOD, model.DecisionApproved, "ok")
	var pe *model.PersistenceError
	if !asError(err, &pe) {
		t.Fatalf("error = %v, want PersistenceError", err)
	}

	report, err := s.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if report.Status != model.StatusPending {
		t.Errorf("status after failed save = %s, want pending", report.Status)
	}
	if len(report.Approvals) != 0 {
		t.Errorf("approvals after failed save = %d, want 0", len(report.Approvals))
	}
}

// TestCreateRollbackOnSaveFailure 保存失败的创建不进入集合
func TestCreateRollbackOnSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty_reports.json")
	s := NewReportStore(path)
	if _, err := s.Create("T", "C"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	blockSavePath(t, path)

	_, err := s.Create("T2", "C2")
	var pe *model.PersistenceError
	if !asError(err, &pe) {
		t.Fatalf("error = %v, want PersistenceError", err)
	}
	if s.Count() != 1 {
		t.Errorf("count after failed create = %d, want 1", s.Count())
	}
}

// TestSubmitAuditRollbackOnSaveFailure 保存失败时审计字段保持原样
func TestSubmitAuditRollbackOnSaveFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty_reports.json")
	s := NewReportStore(path)
	if _, err := s.Create("T", "C"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	blockSavePath(t, path)

	_, _, err := s.SubmitAudit(0, audit.Submission{
		Total:     len(audit.BaseQuestions),
		Answers:   map[int]string{0: "Y"},
		Grade:     "A",
		Institute: "Inst1",
	})
	var pe *model.PersistenceError
	if !asError(err, &pe) {
		t.Fatalf("error = %v, want PersistenceError", err)
	}

	report, _ := s.Get(0)
	if report.AuditGrade != "" || report.AuditedInstitute != "" || len(report.AuditAnswers) != 0 {
		t.Errorf("audit fields written despite failed save: %+v", report)
	}
}

// TestReportStoreReload 重启后从 JSON 文件恢复全部状态
func TestReportStoreReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "faculty_reports.json")

	s := NewReportStore(path)
	s.Create("T", "C")
	s.RecordDecision(0, model.RoleHOD, model.DecisionApproved, "ok")

	reloaded := NewReportStore(path)
	if reloaded.Count() != 1 {
		t.Fatalf("reloaded count = %d, want 1", reloaded.Count())
	}
	report, err := reloaded.Get(0)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if report.Title != "T" || report.Status != model.StatusPending {
		t.Errorf("reloaded report = %+v", report)
	}
	if report.Approvals[model.RoleHOD].Decision != model.DecisionApproved {
		t.Errorf("reloaded approvals missing hod decision")
	}
}
