package session

import (
	"testing"
	"time"
)

// TestEnsureNewSession 无效 token 时新建匿名会话
func TestEnsureNewSession(t *testing.T) {
	m := NewManager(time.Hour)

	token, sess := m.Ensure("")
	if token == "" {
		t.Fatal("Ensure should issue a token")
	}
	if sess.Role != "" || sess.IsAdmin {
		t.Errorf("new session should be anonymous: %+v", sess)
	}

	// 同一 token 再次访问返回同一会话
	token2, _ := m.Ensure(token)
	if token2 != token {
		t.Errorf("Ensure reissued token: %s vs %s", token2, token)
	}
}

// TestUpdateSession 登录信息写入后可读回
func TestUpdateSession(t *testing.T) {
	m := NewManager(time.Hour)
	token, _ := m.Ensure("")

	ok := m.Update(token, func(s *Session) {
		s.Role = "hod"
		s.SelectedInstitute = "Inst1"
	})
	if !ok {
		t.Fatal("Update failed")
	}

	sess, ok := m.Get(token)
	if !ok {
		t.Fatal("Get failed")
	}
	if sess.Role != "hod" || sess.SelectedInstitute != "Inst1" {
		t.Errorf("session = %+v", sess)
	}
}

// TestDeleteSession 注销后会话不可用
func TestDeleteSession(t *testing.T) {
	m := NewManager(time.Hour)
	token, _ := m.Ensure("")

	m.Delete(token)
	if _, ok := m.Get(token); ok {
		t.Error("deleted session should be gone")
	}
}

// TestExpiry 过期会话不可用且被清理
func TestExpiry(t *testing.T) {
	m := NewManager(10 * time.Millisecond)
	token, _ := m.Ensure("")

	time.Sleep(20 * time.Millisecond)

	if _, ok := m.Get(token); ok {
		t.Error("expired session should be gone")
	}
	token2, _ := m.Ensure(token)
	if token2 == token {
		t.Error("expired token should not be reused")
	}
}

// TestClearSelectedInstitute 学院移除后所有会话的选中指针被清空
func TestClearSelectedInstitute(t *testing.T) {
	m := NewManager(time.Hour)

	t1, _ := m.Ensure("")
	t2, _ := m.Ensure("")
	m.Update(t1, func(s *Session) { s.SelectedInstitute = "Inst1" })
	m.Update(t2, func(s *Session) { s.SelectedInstitute = "Inst2" })

	m.ClearSelectedInstitute("Inst1")

	s1, _ := m.Get(t1)
	s2, _ := m.Get(t2)
	if s1.SelectedInstitute != "" {
		t.Errorf("t1 selected = %q, want cleared", s1.SelectedInstitute)
	}
	if s2.SelectedInstitute != "Inst2" {
		t.Errorf("t2 selected = %q, want Inst2", s2.SelectedInstitute)
	}
}

// TestNewCaptcha 验证码为 5 位数字
func TestNewCaptcha(t *testing.T) {
	for i := 0; i < 20; i++ {
		captcha := NewCaptcha()
		if len(captcha) != 5 {
			t.Fatalf("captcha length = %d, want 5", len(captcha))
		}
		for _, ch := range captcha {
			if ch < '0' || ch > '9' {
				t.Fatalf("captcha %q contains non-digit", captcha)
			}
		}
	}
}
