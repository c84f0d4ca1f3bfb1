package greet

import "testing"

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Ada", want: "Hello, Ada! You've been greeted from Go!"},
		{name: "trimmed", in: "  Linus \n", want: "Hello, Linus! You've been greeted from Go!"},
		{name: "blank", in: " ", want: "Hello, there! You've been greeted from Go!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in); got != tt.want {
				t.Errorf("Format(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
