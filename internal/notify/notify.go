package notify

import (
	"fmt"
	"io"
	"sync"
	"time"

	"coldreach/internal/theme"
)

// Status is the severity of a toast.
type Status string

const (
	StatusSuccess Status = "success"
	StatusError   Status = "error"
	StatusInfo    Status = "info"
)

// DefaultDuration is how long a toast is meant to stay visible.
const DefaultDuration = 3 * time.Second

// Toast is a fire-and-forget user notification.
type Toast struct {
	Title       string
	Description string
	Status      Status
	Duration    time.Duration
}

// Notifier shows toasts. Implementations must not block on the user.
type Notifier interface {
	Notify(Toast)
}

// Success builds the standard success toast.
func Success(description string) Toast {
	return Toast{Title: "Success", Description: description, Status: StatusSuccess, Duration: DefaultDuration}
}

// Error builds the standard error toast.
func Error(description string) Toast {
	return Toast{Title: "Error", Description: description, Status: StatusError, Duration: DefaultDuration}
}

// Terminal prints toasts as single styled lines.
type Terminal struct {
	mu    sync.Mutex
	out   io.Writer
	theme theme.Theme
}

func NewTerminal(out io.Writer, th theme.Theme) *Terminal {
	return &Terminal{out: out, theme: th}
}

func (n *Terminal) Notify(t Toast) {
	prefix, style := n.theme.InfoPrefix, "cyan"
	switch t.Status {
	case StatusSuccess:
		prefix, style = "✓", "green"
	case StatusError:
		prefix, style = n.theme.ErrorPrefix, "red"
	}
	line := fmt.Sprintf("%s %s: %s", prefix, t.Title, t.Description)

	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintln(n.out, n.theme.Paint(line, style))
}
