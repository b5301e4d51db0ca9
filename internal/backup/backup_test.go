package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/untwistapp/untwist/internal/models"
	"github.com/untwistapp/untwist/internal/snapshot"
)

func testDoc() snapshot.Document {
	return snapshot.Document{
		ThoughtRecords: []models.ThoughtRecord{
			{ID: "t1", Date: "2024-03-01", Situation: "test"},
		},
	}
}

func TestCreateBackup(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "untwist.db")
	mgr := NewManager(dbPath)

	path, err := mgr.CreateBackup(testDoc())
	if err != nil {
		t.Fatalf("CreateBackup() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read backup file: %v", err)
	}
	doc, err := snapshot.Parse(data)
	if err != nil {
		t.Fatalf("backup is not a valid snapshot: %v", err)
	}
	if len(doc.ThoughtRecords) != 1 || doc.ThoughtRecords[0].ID != "t1" {
		t.Errorf("backup contents = %+v", doc.ThoughtRecords)
	}
}

func TestCreateBackupUniqueNames(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "untwist.db")
	mgr := NewManager(dbPath)

	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		path, err := mgr.CreateBackup(testDoc())
		if err != nil {
			t.Fatalf("CreateBackup() #%d error: %v", i, err)
		}
		if seen[path] {
			t.Errorf("CreateBackup() reused path %s", path)
		}
		seen[path] = true
	}
}

func TestListBackups(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "untwist.db"))
		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() error: %v", err)
		}
		if len(backups) != 0 {
			t.Errorf("got %d backups, want 0", len(backups))
		}
	})

	t.Run("ignores foreign files", func(t *testing.T) {
		mgr := NewManager(filepath.Join(t.TempDir(), "untwist.db"))
		if _, err := mgr.CreateBackup(testDoc()); err != nil {
			t.Fatal(err)
		}
		// Drop unrelated files into the backup dir
		for _, name := range []string{"notes.txt", "untwist-garbage.json", "other.json"} {
			if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), []byte("x"), 0600); err != nil {
				t.Fatal(err)
			}
		}

		backups, err := mgr.ListBackups()
		if err != nil {
			t.Fatalf("ListBackups() error: %v", err)
		}
		if len(backups) != 1 {
			t.Errorf("got %d backups, want 1", len(backups))
		}
	})
}

func TestRotation(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "untwist.db"))
	if err := mgr.ensureBackupDir(); err != nil {
		t.Fatal(err)
	}

	// Seed more than MaxBackups files with distinct old timestamps
	data, _ := testDoc().Marshal()
	for day := 1; day <= MaxBackups+3; day++ {
		name := BackupFilePrefix + "202401" + twoDigits(day) + "-1200" + BackupFileSuffix
		if err := os.WriteFile(filepath.Join(mgr.GetBackupDir(), name), data, 0600); err != nil {
			t.Fatal(err)
		}
	}

	if err := mgr.rotateBackups(); err != nil {
		t.Fatalf("rotateBackups() error: %v", err)
	}

	backups, err := mgr.ListBackups()
	if err != nil {
		t.Fatal(err)
	}
	if len(backups) != MaxBackups {
		t.Errorf("got %d backups after rotation, want %d", len(backups), MaxBackups)
	}
	// Newest-first ordering, newest retained
	if backups[0].Timestamp.Before(backups[len(backups)-1].Timestamp) {
		t.Error("backups not sorted newest first")
	}
}

func twoDigits(n int) string {
	return string([]byte{byte('0' + n/10), byte('0' + n%10)})
}

func TestReadBackup(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "untwist.db"))
	path, err := mgr.CreateBackup(testDoc())
	if err != nil {
		t.Fatal(err)
	}

	doc, err := mgr.ReadBackup(path)
	if err != nil {
		t.Fatalf("ReadBackup() error: %v", err)
	}
	if len(doc.ThoughtRecords) != 1 {
		t.Errorf("doc has %d thought records, want 1", len(doc.ThoughtRecords))
	}

	t.Run("corrupt file rejected", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(bad, []byte("{not json"), 0600); err != nil {
			t.Fatal(err)
		}
		if _, err := mgr.ReadBackup(bad); err == nil {
			t.Error("ReadBackup() on corrupt file succeeded, want error")
		}
	})
}

func TestTrimCounterSuffix(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"20240301-1200", "20240301-1200"},
		{"20240301-120059", "20240301-120059"},
		{"20240301-120059-1", "20240301-120059"},
		{"20240301-120059-12", "20240301-120059"},
		{"20240301-1200-extra", "20240301-1200-extra"},
	}
	for _, tt := range tests {
		if got := trimCounterSuffix(tt.in); got != tt.want {
			t.Errorf("trimCounterSuffix(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
