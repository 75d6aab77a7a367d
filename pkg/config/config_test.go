package config

import (
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	o := Default()
	if o.BoardSize != 10 {
		t.Errorf("Expected board size 10, got %d", o.BoardSize)
	}
	if o.TickInterval != 500*time.Millisecond {
		t.Errorf("Expected 500ms tick, got %v", o.TickInterval)
	}
	if o.StaticDir != "" || o.RecordDir != "" {
		t.Errorf("Expected embedded page and no recording by default, got %+v", o)
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GRIDSNAKE_DB", "/tmp/x.db")
	t.Setenv("GRIDSNAKE_ADDR", ":9000")
	t.Setenv("GRIDSNAKE_STATIC_DIR", "")

	o := FromEnv(Default())
	if o.DBPath != "/tmp/x.db" {
		t.Errorf("Expected DB override, got %q", o.DBPath)
	}
	if o.Addr != ":9000" {
		t.Errorf("Expected addr override, got %q", o.Addr)
	}
	if o.StaticDir != "" {
		t.Errorf("Empty env value should not override, got %q", o.StaticDir)
	}
	if o.BoardSize != BoardSize {
		t.Errorf("Board size is not env-configurable, got %d", o.BoardSize)
	}
}
