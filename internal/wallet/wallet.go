package wallet

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// View names a wallet modal screen.
type View string

const (
	ViewConnect View = "Connect"
	ViewAccount View = "Account"
)

var (
	ErrInvalidAddress = errors.New("wallet: invalid address, expected 0x followed by 40 hex characters")
	ErrUnknownView    = errors.New("wallet: unknown view")
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// WalletClient is the wallet capability the landing page depends on.
type WalletClient interface {
	Open(ctx context.Context, view View) error
	Address() string
	IsConnected() bool
}

// Chain describes the network the modal connects to.
type Chain struct {
	ChainID     int
	Name        string
	Currency    string
	ExplorerURL string
	RPCURL      string
}

// BaseMainnet is the only chain ColdReach offers.
var BaseMainnet = Chain{
	ChainID:     8453,
	Name:        "Base",
	Currency:    "ETH",
	ExplorerURL: "https://basescan.org",
	RPCURL:      "https://mainnet.base.org",
}

// Metadata is shown by wallets during the connection request.
type Metadata struct {
	Name        string
	Description string
	URL         string
}

var DefaultMetadata = Metadata{
	Name:        "ColdReach",
	Description: "ColdReach is a decentralized platform for user to generate neat DMs for their clients.",
	URL:         "https://coldreach.xyz",
}

// AddressReader asks the user for an address, re-prompting until validate
// accepts the answer or the user aborts.
type AddressReader interface {
	ReadAddress(ctx context.Context, message string, validate func(string) error) (string, error)
}

type Config struct {
	ProjectID string
	Chain     Chain
	Metadata  Metadata
}

// Manual is a WalletClient that connects by having the user paste their
// account address. It performs no signing.
type Manual struct {
	cfg    Config
	reader AddressReader

	mu      sync.RWMutex
	address string
}

func NewManual(cfg Config, reader AddressReader) *Manual {
	if cfg.Chain.ChainID == 0 {
		cfg.Chain = BaseMainnet
	}
	if cfg.Metadata.Name == "" {
		cfg.Metadata = DefaultMetadata
	}
	return &Manual{cfg: cfg, reader: reader}
}

// ValidateAddress checks s is a hex EVM account address.
func ValidateAddress(s string) error {
	if !addressPattern.MatchString(strings.TrimSpace(s)) {
		return ErrInvalidAddress
	}
	return nil
}

func (m *Manual) Open(ctx context.Context, view View) error {
	switch view {
	case ViewConnect:
		msg := fmt.Sprintf("Connect to %s on %s (chain %d). Paste your wallet address:",
			m.cfg.Metadata.Name, m.cfg.Chain.Name, m.cfg.Chain.ChainID)
		addr, err := m.reader.ReadAddress(ctx, msg, ValidateAddress)
		if err != nil {
			return err
		}
		addr = strings.TrimSpace(addr)
		if err := ValidateAddress(addr); err != nil {
			return err
		}
		m.mu.Lock()
		m.address = addr
		m.mu.Unlock()
		return nil
	case ViewAccount:
		m.Disconnect()
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
}

// Disconnect forgets the connected address.
func (m *Manual) Disconnect() {
	m.mu.Lock()
	m.address = ""
	m.mu.Unlock()
}

// Address returns the connected address, or "" when disconnected.
func (m *Manual) Address() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.address
}

func (m *Manual) IsConnected() bool {
	return m.Address() != ""
}

// ProjectID returns the configured modal project identifier.
func (m *Manual) ProjectID() string {
	return m.cfg.ProjectID
}
