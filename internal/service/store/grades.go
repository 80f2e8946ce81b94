package store

import (
	"strings"
	"sync"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// GradeLedger 学院等级台账
// 每个学院只保留最新一次评定结果，赋值即覆盖；等级为自由文本，不做格式校验
type GradeLedger struct {
	mu     sync.RWMutex
	path   string
	grades map[string]string
}

// NewGradeLedger 从 JSON 文件加载等级台账
func NewGradeLedger(path string) *GradeLedger {
	l := &GradeLedger{path: path, grades: map[string]string{}}
	var grades map[string]string
	if err := readJSON(path, &grades); err == nil && grades != nil {
		l.grades = grades
	}
	return l
}

func (l *GradeLedger) saveLocked() error {
	return writeJSONAtomic(l.path, l.grades)
}

// Get 查询学院当前等级
func (l *GradeLedger) Get(institute string) (string, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	grade, ok := l.grades[institute]
	return grade, ok
}

// All 返回全部等级记录的拷贝
func (l *GradeLedger) All() map[string]string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[string]string, len(l.grades))
	for k, v := range l.grades {
		out[k] = v
	}
	return out
}

// Set 评定学院等级（无条件覆盖）
func (l *GradeLedger) Set(institute, grade string) error {
	institute = strings.TrimSpace(institute)
	grade = strings.TrimSpace(grade)
	if institute == "" || grade == "" {
		return model.NewValidationError("学院与等级不能为空")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	prevGrade, existed := l.grades[institute]
	l.grades[institute] = grade

	if err := l.saveLocked(); err != nil {
		if existed {
			l.grades[institute] = prevGrade
		} else {
			delete(l.grades, institute)
		}
		return &model.PersistenceError{Op: "保存等级台账", Err: err}
	}
	return nil
}
