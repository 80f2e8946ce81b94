package audit

import (
	"testing"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// TestQuestionsBase 无历史答卷时只返回基础问卷
func TestQuestionsBase(t *testing.T) {
	report := &model.Report{}

	questions := Questions(report)
	if len(questions) != len(BaseQuestions) {
		t.Fatalf("Questions returned %d items, want %d", len(questions), len(BaseQuestions))
	}
	for i, q := range BaseQuestions {
		if questions[i] != q {
			t.Errorf("questions[%d] = %q, want %q", i, questions[i], q)
		}
	}
}

// TestQuestionsReloadCustom 历史答卷中的自定义问题应在基础问卷之后重新出现
func TestQuestionsReloadCustom(t *testing.T) {
	report := &model.Report{
		AuditAnswers: map[string]string{
			BaseQuestions[0]:                 "Y",
			"Is the library well stocked?":   "N",
			"Are labs maintained regularly?": "Y",
		},
	}

	questions := Questions(report)
	if len(questions) != len(BaseQuestions)+2 {
		t.Fatalf("Questions returned %d items, want %d", len(questions), len(BaseQuestions)+2)
	}
	// 自定义问题按字典序追加
	if questions[len(BaseQuestions)] != "Are labs maintained regularly?" {
		t.Errorf("first extra = %q", questions[len(BaseQuestions)])
	}
	if questions[len(BaseQuestions)+1] != "Is the library well stocked?" {
		t.Errorf("second extra = %q", questions[len(BaseQuestions)+1])
	}
}

// TestNormalizeAnswer 答案归一化：非 Y/N 一律按 N 处理
func TestNormalizeAnswer(t *testing.T) {
	cases := map[string]string{
		"Y":     "Y",
		"y":     "Y",
		" n ":   "N",
		"N":     "N",
		"":      "N",
		"yes":   "N",
		"maybe": "N",
		"1":     "N",
	}
	for in, want := range cases {
		if got := NormalizeAnswer(in); got != want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestEvaluateAppendsCustomQuestions 超出已知题数且文本非空的下标视为新增问题
func TestEvaluateAppendsCustomQuestions(t *testing.T) {
	report := &model.Report{}
	base := len(BaseQuestions)

	sub := Submission{
		Total: base + 2,
		Texts: map[int]string{
			base:     "Is the campus safe?",
			base + 1: "   ", // 空文本不产生新问题
		},
		Answers: map[int]string{
			0:    "Y",
			base: "y",
		},
	}

	out := Evaluate(report, sub)
	if len(out.Answers) != base+1 {
		t.Fatalf("answers has %d entries, want %d", len(out.Answers), base+1)
	}
	if out.Answers["Is the campus safe?"] != "Y" {
		t.Errorf("custom answer = %q, want Y", out.Answers["Is the campus safe?"])
	}
}

// TestEvaluateUnansweredDefaultsToNo 未作答的题目归一化为 N，且不报错
func TestEvaluateUnansweredDefaultsToNo(t *testing.T) {
	report := &model.Report{}

	out := Evaluate(report, Submission{
		Total:   len(BaseQuestions),
		Answers: map[int]string{0: "Y"},
	})

	if len(out.Answers) != len(BaseQuestions) {
		t.Fatalf("answers has %d entries, want %d", len(out.Answers), len(BaseQuestions))
	}
	if out.Answers[BaseQuestions[0]] != "Y" {
		t.Errorf("answered question = %q, want Y", out.Answers[BaseQuestions[0]])
	}
	for _, q := range BaseQuestions[1:] {
		if out.Answers[q] != "N" {
			t.Errorf("unanswered %q = %q, want N", q, out.Answers[q])
		}
	}
}

// TestEvaluateDuplicateCustomText 与已有问题重名的自定义文本不重复添加
func TestEvaluateDuplicateCustomText(t *testing.T) {
	report := &model.Report{}
	base := len(BaseQuestions)

	out := Evaluate(report, Submission{
		Total: base + 1,
		Texts: map[int]string{base: BaseQuestions[0]},
		Answers: map[int]string{
			0: "N",
		},
	})

	if len(out.Answers) != base {
		t.Errorf("answers has %d entries, want %d", len(out.Answers), base)
	}
}

// TestEvaluateClampsDeclaredTotal 声明的总数受实际提交的题目文本数约束
func TestEvaluateClampsDeclaredTotal(t *testing.T) {
	report := &model.Report{}
	base := len(BaseQuestions)

	out := Evaluate(report, Submission{
		Total: 1 << 31,
		Texts: map[int]string{base: "Is the campus safe?"},
		Answers: map[int]string{
			0:    "Y",
			base: "Y",
		},
	})

	if len(out.Answers) != base+1 {
		t.Fatalf("answers has %d entries, want %d", len(out.Answers), base+1)
	}
	if out.Answers["Is the campus safe?"] != "Y" {
		t.Errorf("custom answer = %q, want Y", out.Answers["Is the campus safe?"])
	}
}

// TestEvaluateTrimsMetadata 备注/等级/学院名去除首尾空白
func TestEvaluateTrimsMetadata(t *testing.T) {
	out := Evaluate(&model.Report{}, Submission{
		Total:     len(BaseQuestions),
		Notes:     "  looks fine  ",
		Grade:     " A++ ",
		Institute: " Inst1 ",
	})

	if out.Notes != "looks fine" || out.Grade != "A++" || out.Institute != "Inst1" {
		t.Errorf("metadata not trimmed: %+v", out)
	}
}
