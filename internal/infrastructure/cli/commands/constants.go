package commands

import "github.com/doeshing/shellpick/internal/domain"

const (
	// DefaultHistoryLimit is the default number of history records shown
	DefaultHistoryLimit = domain.DefaultHistoryLimit
	// DefaultHistoryRetainDays is the default retention for history retain
	DefaultHistoryRetainDays = domain.DefaultHistoryRetainDays
)

// Error messages
const (
	ErrConfigLoaderUnavailable  = "config loader unavailable"
	ErrDoctorServiceUnavailable = "doctor service unavailable"
	ErrHistoryStoreUnavailable  = "history store unavailable (history.enabled is false)"
	ErrClipboardUnavailable     = "clipboard unavailable"
	ErrInvalidRetainDays        = "--days must be > 0"
)

// Success messages
const (
	MsgConfigurationValid       = "Configuration valid"
	MsgNoDifferencesFromDefault = "No differences from default configuration."
	MsgNoHistoryRecorded        = "No history recorded yet."
	MsgCopiedToClipboard        = "Copied to clipboard."
)
