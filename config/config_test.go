package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q, want 9090", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q, want fallback", got)
	}
	if got := GetString(nil, "PORT", "fallback"); got != "fallback" {
		t.Errorf("GetString on nil map = %q, want fallback", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "BAD": "thirty"}

	if got := GetInt(c, "TIMEOUT", 10); got != 30 {
		t.Errorf("GetInt(TIMEOUT) = %d, want 30", got)
	}
	if got := GetInt(c, "BAD", 10); got != 10 {
		t.Errorf("GetInt(BAD) = %d, want fallback 10", got)
	}
	if got := GetInt(c, "MISSING", 10); got != 10 {
		t.Errorf("GetInt(MISSING) = %d, want fallback 10", got)
	}
}

func TestGetStrings(t *testing.T) {
	c := map[string]string{
		"ORIGINS": "https://a.example, https://b.example,,https://c.example",
	}

	got := GetStrings(c, "ORIGINS")
	want := []string{"https://a.example", "https://b.example", "https://c.example"}
	if len(got) != len(want) {
		t.Fatalf("GetStrings returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}

	if got := GetStrings(c, "MISSING"); got != nil {
		t.Errorf("GetStrings(MISSING) = %v, want nil", got)
	}
}
