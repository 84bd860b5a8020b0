package version

import "testing"

func TestGet(t *testing.T) {
	info := Get()
	if info.Version == "" {
		t.Fatalf("expected non-empty version")
	}
}

func TestString(t *testing.T) {
	if got := (Info{Version: "1.0.0"}).String(); got != "1.0.0" {
		t.Fatalf("string mismatch: %s", got)
	}
	if got := (Info{Version: "1.0.0", Commit: "abc123"}).String(); got != "1.0.0 (abc123)" {
		t.Fatalf("string mismatch: %s", got)
	}
}
