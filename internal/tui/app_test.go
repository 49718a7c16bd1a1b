package tui

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"coldreach/internal/logger"
	"coldreach/internal/notify"
	"coldreach/internal/orchestrator"
	"coldreach/internal/theme"
	"coldreach/internal/types"
	"coldreach/internal/wallet"
)

// stubDriver answers prompts from scripted queues. Select answers are
// given by option label so tests do not depend on menu positions.
type stubDriver struct {
	selects   []string
	inputs    []string
	textAreas []string

	menus [][]string
	infos []string
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	if len(s.inputs) == 0 {
		return "", errors.New("no input scripted")
	}
	v := s.inputs[0]
	s.inputs = s.inputs[1:]
	if cfg.Validator != nil {
		if err := cfg.Validator(strings.TrimSpace(v)); err != nil {
			return "", err
		}
	}
	return v, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.menus = append(s.menus, cfg.Options)
	if len(s.selects) == 0 {
		return -1, ErrAborted
	}
	v := s.selects[0]
	s.selects = s.selects[1:]
	if i := indexOf(cfg.Options, v); i >= 0 {
		return i, nil
	}
	return -1, errors.New("option not offered: " + v)
}

func (s *stubDriver) TextArea(_ context.Context, _ TextAreaConfig) (string, error) {
	if len(s.textAreas) == 0 {
		return "", errors.New("no textarea scripted")
	}
	v := s.textAreas[0]
	s.textAreas = s.textAreas[1:]
	return v, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infos = append(s.infos, msg)
	return nil
}

type fakeGenerator struct {
	mu   sync.Mutex
	reqs []types.PromptRequest
	text string
	err  error
}

func (f *fakeGenerator) Generate(_ context.Context, req types.PromptRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reqs = append(f.reqs, req)
	return f.text, f.err
}

type toastSink struct {
	mu     sync.Mutex
	toasts []notify.Toast
}

func (t *toastSink) Notify(n notify.Toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.toasts = append(t.toasts, n)
}

type memClipboard struct{ writes []string }

func (m *memClipboard) Write(s string) error {
	m.writes = append(m.writes, s)
	return nil
}

const testAddress = "0x52908400098527886E0F7030069857D2E4169EE7"

type harness struct {
	app    *App
	driver *stubDriver
	orch   *orchestrator.Orchestrator
	gen    *fakeGenerator
	cb     *memClipboard
	out    *bytes.Buffer
}

func newHarness(driver *stubDriver, gen *fakeGenerator) *harness {
	th := theme.Default("light")
	th.Plain = true
	cb := &memClipboard{}
	orch := orchestrator.New(gen, &toastSink{}, cb, logger.NewNop())
	out := &bytes.Buffer{}
	app := NewApp(orch, Options{
		Driver:    driver,
		Wallet:    wallet.NewManual(wallet.Config{}, AddressReader{Driver: driver}),
		Templates: []types.PromptTemplate{{Person: "CEO", Prompt: "Write a cold email"}},
		Theme:     th,
		Out:       out,
		Logger:    logger.NewNop(),
	})
	app.tick = 1
	return &harness{app: app, driver: driver, orch: orch, gen: gen, cb: cb, out: out}
}

func TestAppTemplateConnectGenerateCopy(t *testing.T) {
	driver := &stubDriver{
		selects: []string{
			"Use a common prompt",
			"CEO: Write a cold email",
			"Connect wallet",
			"Generate message",
			"Copy to clipboard",
			"Quit",
		},
		inputs: []string{testAddress},
	}
	h := newHarness(driver, &fakeGenerator{text: "Hello Bob"})

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []types.PromptRequest{{PersonInput: "CEO", ReasonInput: "Write a cold email"}}
	if diff := cmp.Diff(want, h.gen.reqs); diff != "" {
		t.Fatalf("requests mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Hello Bob"}, h.cb.writes); diff != "" {
		t.Fatalf("clipboard mismatch (-want +got):\n%s", diff)
	}
	out := h.out.String()
	if !strings.Contains(out, "Hi there, New User") {
		t.Errorf("greeting before connect missing:\n%s", out)
	}
	if !strings.Contains(out, "Hi there, 0x5290...9EE7") {
		t.Errorf("greeting after connect missing:\n%s", out)
	}
	if !strings.Contains(out, "Hello Bob") {
		t.Errorf("result not rendered:\n%s", out)
	}
}

func TestAppHidesTemplatesOnceResultShown(t *testing.T) {
	driver := &stubDriver{
		selects: []string{"Connect wallet", "Use a common prompt", "CEO: Write a cold email", "Generate message", "Quit"},
		inputs:  []string{testAddress},
	}
	h := newHarness(driver, &fakeGenerator{text: "done"})

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	last := driver.menus[len(driver.menus)-1]
	if indexOf(last, "Use a common prompt") >= 0 {
		t.Fatalf("templates offered after a result: %v", last)
	}
	if indexOf(last, "Copy to clipboard") < 0 {
		t.Fatalf("copy not offered after a result: %v", last)
	}
}

func TestAppGatesGenerate(t *testing.T) {
	driver := &stubDriver{
		selects:   []string{"Edit person's description", "Connect wallet", "Edit prompt", "Quit"},
		inputs:    []string{"CTO", testAddress},
		textAreas: []string{"Ask for a demo"},
	}
	h := newHarness(driver, &fakeGenerator{text: "unused"})

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// disconnected, then connected with one empty field, then ready
	for i, menu := range driver.menus[:3] {
		if indexOf(menu, "Generate message") >= 0 {
			t.Errorf("menu %d offered generate too early: %v", i, menu)
		}
	}
	if indexOf(driver.menus[3], "Generate message") < 0 {
		t.Errorf("generate not offered once ready: %v", driver.menus[3])
	}
	if indexOf(driver.menus[0], "Connect wallet") < 0 || indexOf(driver.menus[2], "Connect wallet") >= 0 {
		t.Errorf("connect offered incorrectly: %v / %v", driver.menus[0], driver.menus[2])
	}
	if len(h.gen.reqs) != 0 {
		t.Fatalf("unexpected requests: %v", h.gen.reqs)
	}
	state := h.orch.Snapshot()
	if state.PersonInput != "CTO" || state.ReasonInput != "Ask for a demo" {
		t.Fatalf("unexpected form state: %+v", state)
	}
}

func TestAppInvalidAddressStaysDisconnected(t *testing.T) {
	driver := &stubDriver{
		selects: []string{"Connect wallet", "Quit"},
		inputs:  []string{"not-an-address"},
	}
	h := newHarness(driver, &fakeGenerator{})

	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(driver.infos) != 1 || !strings.Contains(driver.infos[0], "invalid address") {
		t.Fatalf("expected one invalid address message, got %v", driver.infos)
	}
	if indexOf(driver.menus[1], "Connect wallet") < 0 {
		t.Fatalf("connect should still be offered: %v", driver.menus[1])
	}
}

func TestAppAbortEndsRun(t *testing.T) {
	h := newHarness(&stubDriver{}, &fakeGenerator{})
	if err := h.app.Run(context.Background()); err != nil {
		t.Fatalf("abort should end Run cleanly, got %v", err)
	}
}

func TestAddressReaderTrims(t *testing.T) {
	r := AddressReader{Driver: &stubDriver{inputs: []string{"  " + testAddress + " "}}}
	got, err := r.ReadAddress(context.Background(), "addr?", wallet.ValidateAddress)
	if err != nil || got != testAddress {
		t.Fatalf("ReadAddress = %q, %v", got, err)
	}
}
