package identifier

import (
	"context"
	"errors"
)

// ConfirmationPrefix starts the message shown after a successful copy.
const ConfirmationPrefix = "UUID copied to clipboard: "

// DenialPrefix starts the message shown when the clipboard refuses a write.
const DenialPrefix = "Could not copy UUID to clipboard: "

// ErrNoClipboard is returned when no clipboard is available.
var ErrNoClipboard = errors.New("clipboard is not available")

// Clipboard is the host clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// CopyError reports a clipboard write that failed for ID.
type CopyError struct {
	ID  Identifier
	Err error
}

func (e *CopyError) Error() string {
	return DenialMessage(e.ID) + ": " + e.Err.Error()
}

func (e *CopyError) Unwrap() error {
	return e.Err
}

// Confirmation returns the message shown after id was copied.
func Confirmation(id Identifier) string {
	return ConfirmationPrefix + string(id)
}

// DenialMessage returns the message shown when copying id failed.
func DenialMessage(id Identifier) string {
	return DenialPrefix + string(id)
}

// Copy writes the exact identifier text to clip and returns the confirmation.
// Failures are not retried.
func Copy(ctx context.Context, clip Clipboard, id Identifier) (string, error) {
	if clip == nil {
		return "", &CopyError{ID: id, Err: ErrNoClipboard}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := clip.WriteText(ctx, string(id)); err != nil {
		return "", &CopyError{ID: id, Err: err}
	}
	return Confirmation(id), nil
}
