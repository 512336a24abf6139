package abl

import (
	"encoding/binary"

	"github.com/Abdullah1738/token-acl/solana"
)

// Mode governs how wallet membership in a list is interpreted.
//
//   - ModeAllow: only wallets with a membership entry may thaw.
//   - ModeAllowAllEoas: any key that can sign (on-curve) may thaw; program
//     derived owners still need a membership entry.
//   - ModeBlock: every wallet may thaw unless a membership entry exists.
type Mode uint8

const (
	ModeAllow Mode = iota
	ModeAllowAllEoas
	ModeBlock
)

func (m Mode) Valid() bool {
	return m <= ModeBlock
}

func (m Mode) String() string {
	switch m {
	case ModeAllow:
		return "allow"
	case ModeAllowAllEoas:
		return "allow-all-eoas"
	case ModeBlock:
		return "block"
	default:
		return "invalid"
	}
}

// Record discriminators. Zero is what freshly allocated storage holds, so
// zero always means "uninitialized".
const (
	listConfigDiscriminator  byte = 1
	walletEntryDiscriminator byte = 2
)

// ListConfig is the per-list policy record.
//
// Layout (42 bytes):
//
//	discriminator (1) || authority (32) || mode (1) || wallets_count u64 LE (8)
//
// Every field is byte-aligned so the struct can overlay the raw account
// buffer byte for byte.
type ListConfig struct {
	discriminator byte
	Authority     solana.Pubkey
	mode          byte
	walletsCount  [8]byte
}

const ListConfigLen = 42

func (c *ListConfig) IsInitialized() bool {
	return c.discriminator == listConfigDiscriminator
}

func (c *ListConfig) Mode() Mode {
	return Mode(c.mode)
}

func (c *ListConfig) WalletsCount() uint64 {
	return binary.LittleEndian.Uint64(c.walletsCount[:])
}

func (c *ListConfig) setWalletsCount(n uint64) {
	binary.LittleEndian.PutUint64(c.walletsCount[:], n)
}

// IncrementWalletsCount records one more live wallet entry. Overflow is an
// invariant violation, never wrapped.
func (c *ListConfig) IncrementWalletsCount() error {
	n := c.WalletsCount()
	if n+1 < n {
		return solana.ErrArithmeticOverflow
	}
	c.setWalletsCount(n + 1)
	return nil
}

// DecrementWalletsCount records one fewer live wallet entry. Decrementing an
// empty list is an invariant violation, never a silent no-op.
func (c *ListConfig) DecrementWalletsCount() error {
	n := c.WalletsCount()
	if n == 0 {
		return solana.ErrArithmeticOverflow
	}
	c.setWalletsCount(n - 1)
	return nil
}

// WalletEntry links one wallet to one list. The ListConfig back-reference
// must match the address of the list the entry is presented with; that
// binding is what stops an entry from one list being replayed against
// another.
//
// Layout (65 bytes):
//
//	discriminator (1) || list_config (32) || wallet (32)
type WalletEntry struct {
	discriminator byte
	ListConfig    solana.Pubkey
	Wallet        solana.Pubkey
}

const WalletEntryLen = 65

func (w *WalletEntry) IsInitialized() bool {
	return w.discriminator == walletEntryDiscriminator
}

// NewListConfigData builds the byte image of an initialized ListConfig.
// List creation is an instruction of the wider program; the engine only
// needs the image for tooling and fixtures.
func NewListConfigData(authority solana.Pubkey, mode Mode, walletsCount uint64) []byte {
	data := make([]byte, ListConfigLen)
	data[0] = listConfigDiscriminator
	copy(data[1:33], authority[:])
	data[33] = byte(mode)
	binary.LittleEndian.PutUint64(data[34:42], walletsCount)
	return data
}

// NewWalletEntryData builds the byte image of an initialized WalletEntry.
func NewWalletEntryData(listConfig, wallet solana.Pubkey) []byte {
	data := make([]byte, WalletEntryLen)
	data[0] = walletEntryDiscriminator
	copy(data[1:33], listConfig[:])
	copy(data[33:65], wallet[:])
	return data
}
