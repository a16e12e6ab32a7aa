package output

import (
	"fmt"

	"github.com/arthur-debert/pathvar/pkg/errors"
	"github.com/pterm/pterm"
)

// RenderError renders an error as a single diagnostic line
func RenderError(err error, color bool) string {
	if err == nil {
		return ""
	}

	code := errors.GetErrorCode(err)
	msg := describe(err)

	if !color {
		if code == errors.ErrUnknown {
			return fmt.Sprintf("Error: %s", msg)
		}
		return fmt.Sprintf("Error [%s]: %s", code, msg)
	}

	if code == errors.ErrUnknown {
		return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, pterm.Error.MessageStyle.Sprint(msg))
	}
	return fmt.Sprintf("%s [%s]: %s",
		pterm.Error.Prefix.Text,
		pterm.Error.MessageStyle.Sprint(code),
		msg)
}

// describe returns the message of err without the code prefix that
// PathvarError.Error adds
func describe(err error) string {
	pvErr, ok := err.(*errors.PathvarError)
	if !ok {
		return err.Error()
	}
	if pvErr.Wrapped != nil {
		return fmt.Sprintf("%s: %s", pvErr.Message, describe(pvErr.Wrapped))
	}
	return pvErr.Message
}
