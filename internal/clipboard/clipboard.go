package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard utility is available
// (e.g. a headless Linux box without xclip/xsel/wl-copy).
var ErrUnsupported = errors.New("clipboard: not supported on this system")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	Write(text string) error
}

// System is the OS clipboard.
type System struct{}

func (System) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard: write: %w", err)
	}
	return nil
}
