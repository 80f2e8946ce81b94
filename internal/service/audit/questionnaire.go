package audit

import (
	"sort"
	"strings"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// BaseQuestions 基础审计问卷（固定 5 题）
// 问题以原文作为唯一标识：改写题目文本等同于新建一道题
var BaseQuestions = []string{
	"Are teaching-learning processes satisfactory?",
	"Is documentation complete and up-to-date?",
	"Are learning outcomes assessed regularly?",
	"Is faculty development activity documented?",
	"Is student feedback handled appropriately?",
}

// Questions 返回某报告的完整问卷：基础问题 + 历史自定义问题
// 自定义问题保存在 map 中，原始插入顺序不可恢复，按字典序追加以保证结果稳定
func Questions(report *model.Report) []string {
	questions := make([]string, len(BaseQuestions))
	copy(questions, BaseQuestions)

	if len(report.AuditAnswers) == 0 {
		return questions
	}

	base := make(map[string]bool, len(BaseQuestions))
	for _, q := range BaseQuestions {
		base[q] = true
	}

	var extras []string
	for q := range report.AuditAnswers {
		if !base[q] {
			extras = append(extras, q)
		}
	}
	sort.Strings(extras)

	return append(questions, extras...)
}

// Submission 一次问卷提交
// Total 为客户端声明的题目总数；超出已知题目数的下标若附带非空题目文本，
// 视为新增自定义问题
type Submission struct {
	Total     int
	Texts     map[int]string
	Answers   map[int]string
	Notes     string
	Grade     string
	Institute string
}

// Outcome 问卷处理结果，即写入报告的全部审计字段
type Outcome struct {
	Answers   map[string]string
	Notes     string
	Grade     string
	Institute string
}

// NormalizeAnswer 答案归一化
// 只接受 Y/N（忽略大小写与首尾空白）；空值或其它输入一律按 N 处理，
// 这是刻意保留的业务规则：未作答即视为否
func NormalizeAnswer(v string) string {
	v = strings.ToUpper(strings.TrimSpace(v))
	if v != "Y" && v != "N" {
		return "N"
	}
	return v
}

// Evaluate 处理一次问卷提交：追加新增自定义问题并归一化全部答案
// 纯函数，不修改报告本身；每道题都会得到一个 Y/N 答案
func Evaluate(report *model.Report, sub Submission) Outcome {
	questions := Questions(report)

	known := make(map[string]bool, len(questions))
	for _, q := range questions {
		known[q] = true
	}

	// 客户端声明的题目总数以已知题目数加实际提交的文本数为上限
	total := sub.Total
	if limit := len(questions) + len(sub.Texts); total > limit {
		total = limit
	}

	// 新增自定义问题：按下标顺序追加，已存在的题目文本不重复添加
	for i := len(questions); i < total; i++ {
		text := strings.TrimSpace(sub.Texts[i])
		if text == "" || known[text] {
			continue
		}
		questions = append(questions, text)
		known[text] = true
	}

	answers := make(map[string]string, len(questions))
	for i, q := range questions {
		answers[q] = NormalizeAnswer(sub.Answers[i])
	}

	return Outcome{
		Answers:   answers,
		Notes:     strings.TrimSpace(sub.Notes),
		Grade:     strings.TrimSpace(sub.Grade),
		Institute: strings.TrimSpace(sub.Institute),
	}
}
