// Package greet formats the greeting returned to front ends checking that the backend is alive.
package greet

import (
	"fmt"
	"strings"
)

// Format returns the greeting for name. A blank name greets "there".
func Format(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", name)
}
