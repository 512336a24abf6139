package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/Abdullah1738/token-acl/solana"
)

// fixture is the JSON shape check/remove consume: the program identity plus
// the ordered account list, exactly as the host would hand it to the
// program.
type fixture struct {
	ProgramID string           `json:"program_id"`
	Accounts  []fixtureAccount `json:"accounts"`
}

type fixtureAccount struct {
	Key      string `json:"key"`
	Owner    string `json:"owner"`
	Lamports uint64 `json:"lamports"`
	Data     string `json:"data,omitempty"` // hex or base58
	Signer   bool   `json:"signer,omitempty"`
	Writable bool   `json:"writable,omitempty"`
}

func loadFixture(path string) (solana.Pubkey, []*solana.Account, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return solana.Pubkey{}, nil, err
	}

	var f fixture
	if err := json.Unmarshal(raw, &f); err != nil {
		return solana.Pubkey{}, nil, fmt.Errorf("parse fixture: %w", err)
	}

	programID, err := solana.ParsePubkey(f.ProgramID)
	if err != nil {
		return solana.Pubkey{}, nil, fmt.Errorf("program_id: %w", err)
	}

	accounts := make([]*solana.Account, 0, len(f.Accounts))
	for i, fa := range f.Accounts {
		key, err := solana.ParsePubkey(fa.Key)
		if err != nil {
			return solana.Pubkey{}, nil, fmt.Errorf("account %d key: %w", i, err)
		}
		owner, err := solana.ParsePubkey(fa.Owner)
		if err != nil {
			return solana.Pubkey{}, nil, fmt.Errorf("account %d owner: %w", i, err)
		}
		var data []byte
		if fa.Data != "" {
			data, err = parseData(fa.Data)
			if err != nil {
				return solana.Pubkey{}, nil, fmt.Errorf("account %d data: %w", i, err)
			}
		}
		accounts = append(accounts, solana.NewAccount(key, owner, fa.Lamports, data, fa.Signer, fa.Writable))
	}
	return programID, accounts, nil
}

// parseData accepts record bytes as hex (with or without 0x) or base58.
func parseData(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if h := strings.TrimPrefix(s, "0x"); h != s || isHex(h) {
		if b, err := hex.DecodeString(h); err == nil {
			return b, nil
		}
		if h != s {
			return nil, fmt.Errorf("invalid hex data")
		}
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("data is neither hex nor base58")
	}
	return b, nil
}

func isHex(s string) bool {
	if s == "" || len(s)%2 != 0 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
