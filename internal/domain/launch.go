package domain

// OpenFolderEvent is the event name carrying the launch folder to a front end.
const OpenFolderEvent = "open-folder"

// NoFolderPayload is sent when no launch argument was given.
const NoFolderPayload = "none"

// LaunchRequest is the folder passed as the first command-line argument.
type LaunchRequest struct {
	Folder  string
	Present bool
}

// Payload returns the folder, or NoFolderPayload when none was given.
func (r LaunchRequest) Payload() string {
	if !r.Present {
		return NoFolderPayload
	}
	return r.Folder
}

// Event returns the event name used to forward the request.
func (r LaunchRequest) Event() string {
	return OpenFolderEvent
}

// LaunchEvent is the wire form of a forwarded launch argument.
type LaunchEvent struct {
	Event   string `json:"event"`
	Payload string `json:"payload"`
}
