package store

import (
	"strings"
	"sync"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// InstituteRegistry 学院名录
// 有序列表 + 集合语义：按首次加入顺序保存，名称大小写敏感且唯一
type InstituteRegistry struct {
	mu    sync.RWMutex
	path  string
	names []string
}

// NewInstituteRegistry 从 JSON 文件加载学院名录
func NewInstituteRegistry(path string) *InstituteRegistry {
	r := &InstituteRegistry{path: path}
	var names []string
	if err := readJSON(path, &names); err == nil {
		r.names = names
	}
	return r
}

func (r *InstituteRegistry) saveLocked() error {
	if r.names == nil {
		return writeJSONAtomic(r.path, []string{})
	}
	return writeJSONAtomic(r.path, r.names)
}

// All 返回全部学院名称的拷贝（保持加入顺序）
func (r *InstituteRegistry) All() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Contains 判断学院是否存在
func (r *InstituteRegistry) Contains(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.names {
		if n == name {
			return true
		}
	}
	return false
}

// Add 加入学院
// 名称去除首尾空白后不得为空；已存在时不做任何事
func (r *InstituteRegistry) Add(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.NewValidationError("学院名称不能为空")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, n := range r.names {
		if n == name {
			return nil
		}
	}

	r.names = append(r.names, name)
	if err := r.saveLocked(); err != nil {
		r.names = r.names[:len(r.names)-1]
		return &model.PersistenceError{Op: "保存学院名录", Err: err}
	}
	return nil
}

// Remove 移除学院
// 不存在时不做任何事；不级联清理历史报告与等级记录
func (r *InstituteRegistry) Remove(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, n := range r.names {
		if n == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	prev := make([]string, len(r.names))
	copy(prev, r.names)

	r.names = append(r.names[:idx], r.names[idx+1:]...)
	if err := r.saveLocked(); err != nil {
		r.names = prev
		return &model.PersistenceError{Op: "保存学院名录", Err: err}
	}
	return nil
}
