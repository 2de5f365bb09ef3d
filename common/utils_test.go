package common

import (
	"os"
	"strings"
	"testing"
)

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if dir == "" {
		t.Error("GetConfigDir() returned empty string")
	}

	if !strings.HasSuffix(dir, ConfigDirName) {
		t.Errorf("GetConfigDir() = %v, should end with %v", dir, ConfigDirName)
	}
}

func TestFileExists(t *testing.T) {
	tempFile, err := os.CreateTemp(t.TempDir(), "test")
	if err != nil {
		t.Fatal(err)
	}
	tempFile.Close()

	if !FileExists(tempFile.Name()) {
		t.Error("FileExists() should return true for existing file")
	}

	if FileExists("/nonexistent/path/to/file") {
		t.Error("FileExists() should return false for non-existing file")
	}
}
