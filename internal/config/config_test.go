package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hrushikeshnair/MGMU-IQAC/internal/model"
)

// TestDefaultConfig 默认配置覆盖全部角色口令
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Server.Port != 20280 {
		t.Errorf("Port = %d, want 20280", cfg.Server.Port)
	}
	for _, role := range model.RequiredApprovers {
		if cfg.Auth.Credentials[role] == "" {
			t.Errorf("missing default credential for %s", role)
		}
	}
	if cfg.Auth.Credentials[model.RoleFaculty] == "" {
		t.Error("missing default credential for faculty")
	}
}

// TestSaveLoadRoundTrip 保存后重新加载得到同样的配置
func TestSaveLoadRoundTrip(t *testing.T) {
	exeDir, err := GetExeDir()
	if err != nil {
		t.Skipf("exe dir unavailable: %v", err)
	}
	configPath := filepath.Join(exeDir, "config.toml")
	if _, err := os.Stat(configPath); err == nil {
		t.Skip("config.toml already present next to the test binary")
	}
	t.Cleanup(func() { _ = os.Remove(configPath) })
	t.Setenv("IQAC_DATA_DIR", "")

	cfg := DefaultConfig()
	cfg.Server.Port = 23456
	cfg.Data.DataDir = "iqac-data"
	cfg.Auth.Credentials[model.RoleAuditor] = "secret"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.Server.Port != 23456 {
		t.Errorf("Port = %d, want 23456", loaded.Server.Port)
	}
	if loaded.Data.DataDir != "iqac-data" {
		t.Errorf("DataDir = %q, want iqac-data", loaded.Data.DataDir)
	}
	if loaded.Auth.Credentials[model.RoleAuditor] != "secret" {
		t.Errorf("auditor credential = %q, want secret", loaded.Auth.Credentials[model.RoleAuditor])
	}
}

// TestEnsureDataDirAbsolute 绝对路径数据目录原样使用并创建导出子目录
func TestEnsureDataDirAbsolute(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Data.DataDir = filepath.Join(t.TempDir(), "data")

	dir, err := EnsureDataDir(cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir failed: %v", err)
	}
	if dir != cfg.Data.DataDir {
		t.Errorf("dir = %q, want %q", dir, cfg.Data.DataDir)
	}
	if _, err := os.Stat(filepath.Join(dir, "exports")); err != nil {
		t.Errorf("exports subdir missing: %v", err)
	}
}
