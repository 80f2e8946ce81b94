package session

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session 一次登录会话
// 核心逻辑只读取该视图，不自行持久化会话状态
type Session struct {
	Role              string
	IsAdmin           bool
	SelectedInstitute string
	Captcha           string
}

type entry struct {
	session   Session
	expiresAt time.Time
}

// Manager 内存会话管理器
// token 为 uuid，通过 Cookie 下发；过期会话在每次访问时顺带清理
type Manager struct {
	mu    sync.Mutex
	ttl   time.Duration
	items map[string]*entry
}

// NewManager 创建会话管理器
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		ttl:   ttl,
		items: make(map[string]*entry),
	}
}

// Ensure 返回 token 对应的会话
// token 为空或已失效时新建匿名会话并返回新 token；有效会话顺带续期
func (m *Manager) Ensure(token string) (string, Session) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.purgeExpiredLocked(now)

	if token != "" {
		if e, ok := m.items[token]; ok {
			e.expiresAt = now.Add(m.ttl)
			return token, e.session
		}
	}

	token = uuid.New().String()
	m.items[token] = &entry{expiresAt: now.Add(m.ttl)}
	return token, Session{}
}

// Get 查询会话
func (m *Manager) Get(token string) (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[token]
	if !ok || time.Now().After(e.expiresAt) {
		return Session{}, false
	}
	return e.session, true
}

// Update 在锁内修改会话
func (m *Manager) Update(token string, fn func(*Session)) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.items[token]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}
	fn(&e.session)
	return true
}

// Delete 注销会话
func (m *Manager) Delete(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, token)
}

// ClearSelectedInstitute 清空所有指向该学院的“当前选中学院”
// 学院被移除时调用，避免会话残留悬空指针
func (m *Manager) ClearSelectedInstitute(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, e := range m.items {
		if e.session.SelectedInstitute == name {
			e.session.SelectedInstitute = ""
		}
	}
}

func (m *Manager) purgeExpiredLocked(now time.Time) {
	for k, e := range m.items {
		if now.After(e.expiresAt) {
			delete(m.items, k)
		}
	}
}

// NewCaptcha 生成 5 位数字验证码
func NewCaptcha() string {
	const digits = "0123456789"
	b := make([]byte, 5)
	_, _ = rand.Read(b)
	for i := range b {
		b[i] = digits[int(b[i])%len(digits)]
	}
	return string(b)
}
