package log

import "testing"

func TestLevelString(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
	}
	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Fatalf("String(%d) = %q, want %q", c.level, got, c.want)
		}
	}
}

func TestLevelCodes(t *testing.T) {
	codes := map[Level]uint32{
		DebugLevel: 0,
		InfoLevel:  1,
		WarnLevel:  2,
		ErrorLevel: 3,
	}
	for level, want := range codes {
		if got := level.Code(); got != want {
			t.Fatalf("Code(%s) = %d, want %d", level, got, want)
		}
		// stable across repeated calls
		if got := level.Code(); got != want {
			t.Fatalf("Code(%s) changed on second call: %d", level, got)
		}
	}
}

func TestLevelOrdering(t *testing.T) {
	if !(DebugLevel < InfoLevel && InfoLevel < WarnLevel && WarnLevel < ErrorLevel) {
		t.Fatalf("levels are not totally ordered by severity")
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want Level
	}{
		{"debug", DebugLevel},
		{"INFO", InfoLevel},
		{" warn ", WarnLevel},
		{"warning", WarnLevel},
		{"Error", ErrorLevel},
	}
	for _, c := range cases {
		got, err := ParseLevel(c.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", c.in, got, c.want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestLevelColorsDistinct(t *testing.T) {
	seen := map[string]Level{}
	for _, level := range []Level{DebugLevel, InfoLevel, WarnLevel, ErrorLevel} {
		c := level.color()
		if c == "" {
			t.Fatalf("no color for %s", level)
		}
		if prev, ok := seen[c]; ok {
			t.Fatalf("%s and %s share color %q", prev, level, c)
		}
		seen[c] = level
	}
}
