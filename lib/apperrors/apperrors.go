// Package apperrors provides error logging helpers shared by hashcat-gui commands.
package apperrors

import (
	"fmt"

	"github.com/unclesp1d3r/hashcatgui/appstate"
)

// LogAndWrap logs err with message through the error logger and returns err
// wrapped with the same message, ready to be returned from a command.
func LogAndWrap(message string, err error) error {
	if err == nil {
		return nil
	}

	appstate.ErrorLogger.Error(message, "error", err)

	return fmt.Errorf("%s: %w", message, err)
}
