// Package orchestrator owns the landing page state: the two form fields,
// whether a generation request is in flight, and the last generated
// message. It issues exactly one request per Submit.
package orchestrator

import (
	"context"
	"errors"
	"sync"

	"coldreach/internal/client"
	"coldreach/internal/clipboard"
	"coldreach/internal/logger"
	"coldreach/internal/notify"
	"coldreach/internal/types"
)

// Field names an editable form input.
type Field string

const (
	FieldPerson Field = "person"
	FieldReason Field = "reason"
)

const (
	generateFailedText = "Failed to generate response"
	copiedText         = "Copied to clipboard"
	copyFailedText     = "Failed to copy to clipboard"
)

// Generator performs one generation request. *client.PromptClient
// satisfies it.
type Generator interface {
	Generate(ctx context.Context, req types.PromptRequest) (string, error)
}

// State is a read-only snapshot for rendering.
type State struct {
	PersonInput  string
	ReasonInput  string
	IsGenerating bool
	APIOutput    string
}

type Orchestrator struct {
	generator Generator
	notifier  notify.Notifier
	clipboard clipboard.Clipboard
	log       *logger.Logger

	mu    sync.Mutex
	state State
}

func New(gen Generator, n notify.Notifier, cb clipboard.Clipboard, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		generator: gen,
		notifier:  n,
		clipboard: cb,
		log:       log,
	}
}

// UpdateField overwrites one form input. Unknown fields are ignored.
func (o *Orchestrator) UpdateField(name Field, value string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	switch name {
	case FieldPerson:
		o.state.PersonInput = value
	case FieldReason:
		o.state.ReasonInput = value
	}
}

// ApplyTemplate pre-fills both inputs. The current result is kept.
func (o *Orchestrator) ApplyTemplate(t types.PromptTemplate) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state.PersonInput = t.Person
	o.state.ReasonInput = t.Prompt
}

// CanSubmit reports whether the submit action should be enabled: both
// inputs are non-empty and no request is in flight.
func (o *Orchestrator) CanSubmit() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return !o.state.IsGenerating && o.state.PersonInput != "" && o.state.ReasonInput != ""
}

// Snapshot returns a copy of the current state.
func (o *Orchestrator) Snapshot() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// IsGenerating reports whether a request is in flight.
func (o *Orchestrator) IsGenerating() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state.IsGenerating
}

// Submit sends the current form to the generation API and blocks until the
// request settles. Callers gate it with CanSubmit; Submit itself does not
// reject concurrent calls. On failure APIOutput is left as is, one error
// toast is emitted and the error is returned.
func (o *Orchestrator) Submit(ctx context.Context) (err error) {
	o.mu.Lock()
	o.state.IsGenerating = true
	req := types.PromptRequest{
		PersonInput: o.state.PersonInput,
		ReasonInput: o.state.ReasonInput,
	}
	o.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			o.log.Error("Generation panicked", "panic", r)
			o.notifier.Notify(notify.Error(generateFailedText))
			err = errors.New("orchestrator: generation panicked")
		}
		o.mu.Lock()
		o.state.IsGenerating = false
		o.mu.Unlock()
	}()

	text, err := o.generator.Generate(ctx, req)
	if err != nil {
		kind := "unknown"
		var reqErr *client.RequestError
		if errors.As(err, &reqErr) {
			kind = reqErr.Kind.String()
		}
		o.log.Error("Error in generate request", "kind", kind, "error", err)
		o.notifier.Notify(notify.Error(generateFailedText))
		return err
	}

	o.mu.Lock()
	o.state.APIOutput = text
	o.mu.Unlock()
	o.log.Debug("Generation settled", "text_len", len(text))
	return nil
}

// CopyResult writes the current result to the clipboard and emits a
// success toast. With no result it does nothing.
func (o *Orchestrator) CopyResult() {
	out := o.Snapshot().APIOutput
	if out == "" {
		return
	}
	if err := o.clipboard.Write(out); err != nil {
		o.log.Warn("Clipboard write failed", "error", err)
		o.notifier.Notify(notify.Error(copyFailedText))
		return
	}
	o.notifier.Notify(notify.Success(copiedText))
}
