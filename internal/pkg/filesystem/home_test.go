package filesystem

import (
	"path/filepath"
	"testing"
)

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	t.Setenv("USERPROFILE", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "/etc/shells", want: "/etc/shells"},
		{in: "~/x/config.yaml", want: filepath.Join("/home/tester", "x", "config.yaml")},
		{in: "a/../b", want: "b"},
	}
	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestMapEnv(t *testing.T) {
	env := MapEnv{"PATH": "/bin"}
	if env.Getenv("PATH") != "/bin" || env.Getenv("MISSING") != "" {
		t.Fatalf("unexpected MapEnv lookups")
	}
}
