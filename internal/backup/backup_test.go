package backup

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCreateBackup_CopiesJSONStore(t *testing.T) {
	dir := t.TempDir()
	storePath := filepath.Join(dir, "stint.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1}`), 0600); err != nil {
		t.Fatal(err)
	}

	mgr := NewManager(storePath)
	path, err := mgr.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("backup not readable: %v", err)
	}
	if string(content) != `{"version":1}` {
		t.Errorf("backup content mismatch: %q", content)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestCreateBackup_MissingStore(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := mgr.CreateBackup(); err == nil {
		t.Error("expected error backing up a missing store")
	}
}

func TestListBackups_EmptyWithoutDir(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "stint.json"))
	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}
}
