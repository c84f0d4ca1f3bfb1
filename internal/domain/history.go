package domain

import "time"

// ScanRecord captures one enumeration run.
type ScanRecord struct {
	ID        string      `json:"id"`
	Timestamp time.Time   `json:"timestamp"`
	Strategy  string      `json:"strategy"`
	Shells    []ShellName `json:"shells"`
	Count     int         `json:"count"`
}
