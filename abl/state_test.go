package abl

import (
	"testing"
	"unsafe"

	"github.com/Abdullah1738/token-acl/solana"
)

func TestRecordLayouts(t *testing.T) {
	if got := unsafe.Sizeof(ListConfig{}); got != ListConfigLen {
		t.Fatalf("ListConfig size = %d, want %d", got, ListConfigLen)
	}
	if got := unsafe.Sizeof(WalletEntry{}); got != WalletEntryLen {
		t.Fatalf("WalletEntry size = %d, want %d", got, WalletEntryLen)
	}
}

func TestLoadListConfig(t *testing.T) {
	authority := pk(0x11)
	data := NewListConfigData(authority, ModeBlock, 7)

	cfg, err := load[ListConfig](data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Authority != authority {
		t.Fatalf("authority mismatch: %v", cfg.Authority)
	}
	if cfg.Mode() != ModeBlock {
		t.Fatalf("mode = %v, want block", cfg.Mode())
	}
	if cfg.WalletsCount() != 7 {
		t.Fatalf("wallets count = %d, want 7", cfg.WalletsCount())
	}
}

func TestLoad_RejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, ListConfigLen - 1, ListConfigLen + 1, WalletEntryLen} {
		if _, err := load[ListConfig](make([]byte, n)); err != ErrInvalidAccountData {
			t.Fatalf("load(%d bytes): want ErrInvalidAccountData, got %v", n, err)
		}
	}
}

func TestLoad_RejectsUninitialized(t *testing.T) {
	if _, err := load[ListConfig](make([]byte, ListConfigLen)); err != ErrInvalidAccountData {
		t.Fatalf("zeroed list config: want ErrInvalidAccountData, got %v", err)
	}
	if _, err := load[WalletEntry](make([]byte, WalletEntryLen)); err != ErrInvalidAccountData {
		t.Fatalf("zeroed wallet entry: want ErrInvalidAccountData, got %v", err)
	}

	// loadUnchecked skips the marker check on purpose.
	if _, err := loadUnchecked[ListConfig](make([]byte, ListConfigLen)); err != nil {
		t.Fatalf("loadUnchecked on zeroed buffer: %v", err)
	}
}

func TestLoad_ViewWritesLandInBuffer(t *testing.T) {
	data := NewListConfigData(pk(0x11), ModeAllow, 1)

	cfg, err := load[ListConfig](data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.IncrementWalletsCount(); err != nil {
		t.Fatalf("increment: %v", err)
	}

	reloaded, err := load[ListConfig](data)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.WalletsCount() != 2 {
		t.Fatalf("mutation did not reach the buffer: count = %d", reloaded.WalletsCount())
	}
}

func TestDecrementWalletsCount_Underflow(t *testing.T) {
	data := NewListConfigData(pk(0x11), ModeAllow, 1)
	cfg, err := load[ListConfig](data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if err := cfg.DecrementWalletsCount(); err != nil {
		t.Fatalf("decrement from 1: %v", err)
	}
	if err := cfg.DecrementWalletsCount(); err != solana.ErrArithmeticOverflow {
		t.Fatalf("decrement from 0: want ErrArithmeticOverflow, got %v", err)
	}
	if cfg.WalletsCount() != 0 {
		t.Fatalf("failed decrement must not change the counter")
	}
}

func TestLoadWalletEntry(t *testing.T) {
	list := pk(0x21)
	wallet := eoaKey(1)
	data := NewWalletEntryData(list, wallet)

	entry, err := load[WalletEntry](data)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if entry.ListConfig != list || entry.Wallet != wallet {
		t.Fatalf("entry mismatch: %v / %v", entry.ListConfig, entry.Wallet)
	}
}

func TestModeString(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{ModeAllow, "allow"},
		{ModeAllowAllEoas, "allow-all-eoas"},
		{ModeBlock, "block"},
		{Mode(9), "invalid"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Fatalf("Mode(%d).String() = %q, want %q", tt.mode, got, tt.want)
		}
	}
	if Mode(3).Valid() {
		t.Fatalf("Mode(3) must be invalid")
	}
}
