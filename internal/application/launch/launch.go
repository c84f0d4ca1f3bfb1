// Package launch forwards the folder given at start-up to the front end.
package launch

import (
	"encoding/json"
	"io"

	"github.com/doeshing/shellpick/internal/domain"
)

// Resolve takes the first positional argument as the folder to open.
func Resolve(args []string) domain.LaunchRequest {
	if len(args) == 0 {
		return domain.LaunchRequest{}
	}
	return domain.LaunchRequest{Folder: args[0], Present: true}
}

// Emit writes the open-folder event as one JSON line.
func Emit(w io.Writer, req domain.LaunchRequest) error {
	return json.NewEncoder(w).Encode(domain.LaunchEvent{
		Event:   req.Event(),
		Payload: req.Payload(),
	})
}
