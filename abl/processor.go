package abl

import (
	"github.com/rs/zerolog"

	"github.com/Abdullah1738/token-acl/solana"
)

// Instruction discriminators, the first byte of instruction data.
const (
	RemoveWalletDiscriminator          byte = 0x03
	CanThawPermissionlessDiscriminator byte = 0x08
)

// Processor holds the program identity the record-ownership checks compare
// against, plus the logger used on validation failures. It carries no
// per-invocation state; one Processor serves any number of invocations.
type Processor struct {
	ID  solana.Pubkey
	Log zerolog.Logger
}

func NewProcessor(id solana.Pubkey, log zerolog.Logger) *Processor {
	return &Processor{ID: id, Log: log}
}

// Process dispatches one instruction by its discriminator byte.
func (p *Processor) Process(data []byte, accounts []*solana.Account) error {
	if len(data) == 0 {
		return ErrInvalidInstruction
	}
	switch data[0] {
	case RemoveWalletDiscriminator:
		return p.RemoveWallet(accounts)
	case CanThawPermissionlessDiscriminator:
		return p.CanThawPermissionless(accounts)
	default:
		return ErrInvalidInstruction
	}
}
