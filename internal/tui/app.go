package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"coldreach/internal/logger"
	"coldreach/internal/orchestrator"
	"coldreach/internal/theme"
	"coldreach/internal/types"
	"coldreach/internal/utils"
	"coldreach/internal/wallet"
)

type action int

const (
	actionTemplate action = iota
	actionEditPerson
	actionEditReason
	actionGenerate
	actionConnect
	actionCopy
	actionQuit
)

var actionLabels = map[action]string{
	actionTemplate:   "Use a common prompt",
	actionEditPerson: "Edit person's description",
	actionEditReason: "Edit prompt",
	actionGenerate:   "Generate message",
	actionConnect:    "Connect wallet",
	actionCopy:       "Copy to clipboard",
	actionQuit:       "Quit",
}

// App is the terminal landing page.
type App struct {
	driver    PromptDriver
	orch      *orchestrator.Orchestrator
	wallet    wallet.WalletClient
	templates []types.PromptTemplate
	theme     theme.Theme
	out       io.Writer
	log       *logger.Logger

	// tick paces the progress indicator while a request is in flight.
	tick time.Duration
}

type Options struct {
	Driver    PromptDriver
	Wallet    wallet.WalletClient
	Templates []types.PromptTemplate
	Theme     theme.Theme
	Out       io.Writer
	Logger    *logger.Logger
}

func NewApp(orch *orchestrator.Orchestrator, opts Options) *App {
	return &App{
		driver:    opts.Driver,
		orch:      orch,
		wallet:    opts.Wallet,
		templates: opts.Templates,
		theme:     opts.Theme,
		out:       opts.Out,
		log:       opts.Logger,
		tick:      400 * time.Millisecond,
	}
}

// Run drives the landing page until the user quits, aborts, or ctx is
// cancelled. Quitting and aborting are not errors.
func (a *App) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		a.render()

		actions := a.availableActions()
		labels := make([]string, len(actions))
		for i, act := range actions {
			labels[i] = actionLabels[act]
		}
		idx, err := a.driver.Select(ctx, SelectConfig{Message: "What next?", Options: labels, PageSize: len(labels)})
		if err != nil {
			if errors.Is(err, ErrAborted) || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("tui: menu: %w", err)
		}
		if idx < 0 || idx >= len(actions) {
			continue
		}

		quit, err := a.dispatch(ctx, actions[idx])
		if err != nil {
			if errors.Is(err, ErrAborted) {
				// Ctrl+C inside a sub-prompt returns to the menu.
				continue
			}
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		if quit {
			return nil
		}
	}
}

// availableActions mirrors the page: templates show only while there is
// no result, and generating needs a connected wallet plus both inputs.
func (a *App) availableActions() []action {
	state := a.orch.Snapshot()
	var out []action
	if state.APIOutput == "" && len(a.templates) > 0 {
		out = append(out, actionTemplate)
	}
	out = append(out, actionEditPerson, actionEditReason)
	if a.wallet.IsConnected() {
		if a.orch.CanSubmit() {
			out = append(out, actionGenerate)
		}
	} else {
		out = append(out, actionConnect)
	}
	if state.APIOutput != "" {
		out = append(out, actionCopy)
	}
	return append(out, actionQuit)
}

func (a *App) dispatch(ctx context.Context, act action) (bool, error) {
	switch act {
	case actionTemplate:
		return false, a.pickTemplate(ctx)
	case actionEditPerson:
		v, err := a.driver.Input(ctx, InputConfig{
			Message: "Input person's description",
			Default: a.orch.Snapshot().PersonInput,
		})
		if err != nil {
			return false, err
		}
		a.orch.UpdateField(orchestrator.FieldPerson, v)
	case actionEditReason:
		v, err := a.driver.TextArea(ctx, TextAreaConfig{
			Message: "Write a prompt here...",
			Default: a.orch.Snapshot().ReasonInput,
		})
		if err != nil {
			return false, err
		}
		a.orch.UpdateField(orchestrator.FieldReason, v)
	case actionConnect:
		if err := a.wallet.Open(ctx, wallet.ViewConnect); err != nil {
			if errors.Is(err, ErrAborted) {
				return false, err
			}
			a.log.Warn("Wallet connection failed", "error", err)
			return false, a.driver.Info(ctx, a.theme.Paint(a.theme.ErrorPrefix+" "+err.Error(), "red"))
		}
	case actionGenerate:
		a.generate(ctx)
	case actionCopy:
		a.orch.CopyResult()
	case actionQuit:
		return true, nil
	}
	return false, nil
}

func (a *App) pickTemplate(ctx context.Context) error {
	options := make([]string, 0, len(a.templates)+1)
	for _, t := range a.templates {
		options = append(options, fmt.Sprintf("%s: %s", t.Person, t.Prompt))
	}
	options = append(options, "Back")

	idx, err := a.driver.Select(ctx, SelectConfig{
		Message:  "Pick a common prompt",
		Options:  options,
		PageSize: len(options),
	})
	if err != nil {
		return err
	}
	if idx >= 0 && idx < len(a.templates) {
		a.orch.ApplyTemplate(a.templates[idx])
	}
	return nil
}

// generate runs Submit while printing a progress indicator. The menu is not
// shown again until the request settles.
func (a *App) generate(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		// Failures are already surfaced as a toast and logged.
		_ = a.orch.Submit(ctx)
	}()

	fmt.Fprint(a.out, a.theme.Muted("Generating"))
	ticker := time.NewTicker(a.tick)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			fmt.Fprintln(a.out)
			return
		case <-ticker.C:
			fmt.Fprint(a.out, a.theme.Muted("."))
		}
	}
}

func (a *App) render() {
	state := a.orch.Snapshot()

	name := "New User"
	if addr := a.wallet.Address(); addr != "" {
		name = utils.TruncateText(addr, 6)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "\nHi there, %s\n", a.theme.Emphasis(name))
	fmt.Fprintln(&b, a.theme.Muted("You're finally here, use one of our common prompts below or use your own to begin"))

	if state.APIOutput != "" {
		fmt.Fprintln(&b)
		fmt.Fprintln(&b, a.theme.Paint(state.APIOutput, a.theme.ColorModeStyle("black", "white")))
	}

	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "%s %s\n", a.theme.Muted("Person:"), placeholder(state.PersonInput, "Input person's description"))
	fmt.Fprintf(&b, "%s %s\n", a.theme.Muted("Prompt:"), placeholder(state.ReasonInput, "Write a prompt here..."))

	_, _ = io.WriteString(a.out, b.String())
}

func placeholder(v, empty string) string {
	if v == "" {
		return "(" + empty + ")"
	}
	return v
}

// AddressReader adapts a PromptDriver for wallet connection prompts.
type AddressReader struct {
	Driver PromptDriver
}

func (r AddressReader) ReadAddress(ctx context.Context, message string, validate func(string) error) (string, error) {
	v, err := r.Driver.Input(ctx, InputConfig{Message: message, Validator: validate})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(v), nil
}
