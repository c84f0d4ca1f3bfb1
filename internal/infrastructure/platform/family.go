// Package platform reports which host family this binary targets and collects
// operating system details for display.
package platform

// CurrentFamily returns the discovery family fixed at build time:
// "windows", "posix" or "none".
func CurrentFamily() string {
	return currentFamily
}
