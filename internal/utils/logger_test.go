package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriterLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf)
	defer l.Close()

	l.Info("resolved")
	l.Warn("using fallback")
	l.Error("fetch failed")

	out := buf.String()
	for _, want := range []string{"INFO: ", "WARN: ", "ERROR: ", "resolved", "using fallback", "fetch failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("log output %q missing %q", out, want)
		}
	}
}

func TestFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brandkit.log")
	l, err := NewLogger(path)
	if err != nil {
		t.Fatal(err)
	}
	l.Info("hello")
	l.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Fatalf("log file=%q", data)
	}
}

func TestFileLogger_BadPath(t *testing.T) {
	if _, err := NewLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.log")); err == nil {
		t.Fatal("expected error")
	}
}
