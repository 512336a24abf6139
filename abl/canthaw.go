package abl

import (
	"github.com/Abdullah1738/token-acl/solana"
)

// CanThawPermissionless is the read-only authorization check a transfer
// hook invokes before thawing a token account.
//
// The caller (the token program's hook plumbing) has already type-checked
// the token account, mint and owner, and will type-check them again when it
// performs the actual thaw after this check passes. That lets this path
// skip the usual per-account type and owner validation and answer purely
// from list state: if some other program calls in with garbage, nothing is
// written and the worst outcome is a meaningless pass/fail.
type CanThawPermissionless struct {
	Authority    *solana.Account
	TokenAccount *solana.Account
	Mint         *solana.Account
	Owner        *solana.Account
	ExtraMetas   *solana.Account

	// Remaining holds (list_config, wallet_entry) pairs, one per list the
	// mint gates on.
	Remaining []*solana.Account
}

func newCanThawPermissionless(accounts []*solana.Account) (*CanThawPermissionless, error) {
	// The hook calls with a fixed prefix:
	//   authority, token_account, mint, owner, flag_account, extra_metas
	// followed by the list/entry pairs.
	if len(accounts) < 6 {
		return nil, ErrNotEnoughAccounts
	}
	remaining := accounts[6:]
	if len(remaining)%2 != 0 {
		return nil, ErrInvalidRemainingAccounts
	}

	return &CanThawPermissionless{
		Authority:    accounts[0],
		TokenAccount: accounts[1],
		Mint:         accounts[2],
		Owner:        accounts[3],
		ExtraMetas:   accounts[5],
		Remaining:    remaining,
	}, nil
}

// CanThawPermissionless answers whether the owner of the given token
// account may have it thawed. Every supplied list must pass; evaluation
// stops at the first failure.
func (p *Processor) CanThawPermissionless(accounts []*solana.Account) error {
	ix, err := newCanThawPermissionless(accounts)
	if err != nil {
		return err
	}
	return ix.process(p)
}

func (ix *CanThawPermissionless) process(p *Processor) error {
	// The thaw that follows a pass makes the account's owner field
	// permanent, so an account that could later change owners must never
	// pass, whatever the lists say.
	if !HasImmutableOwnerExtension(ix.TokenAccount) {
		return ErrImmutableOwnerExtensionMissing
	}

	for i := 0; i < len(ix.Remaining); i += 2 {
		list := ix.Remaining[i]
		entry := ix.Remaining[i+1]

		if err := p.validateThawList(list, ix.Owner, entry); err != nil {
			p.Log.Debug().
				Stringer("list", list.Key()).
				Stringer("owner", ix.Owner.Key()).
				Err(err).
				Msg("thaw validation failed")
			return err
		}
	}
	return nil
}

func (p *Processor) validateThawList(list, owner, walletEntry *solana.Account) error {
	if !list.IsOwnedBy(p.ID) {
		return ErrInvalidConfigAccount
	}

	listData, release, err := list.BorrowData()
	if err != nil {
		return err
	}
	defer release()

	listConfig, err := load[ListConfig](listData)
	if err != nil {
		return err
	}

	switch listConfig.Mode() {
	case ModeAllow:
		// Membership is required: no valid entry, no thaw.
		return p.requireWalletEntry(list, walletEntry)

	case ModeAllowAllEoas:
		// Any key that decodes on-curve can sign for itself, so it counts
		// as a human-controlled wallet and passes outright. Program derived
		// owners fall back to explicit membership.
		if solana.IsOnCurve(owner.Key()) {
			return nil
		}
		return p.requireWalletEntry(list, walletEntry)

	case ModeBlock:
		return p.checkNotBlocked(list, walletEntry)

	default:
		return ErrInvalidAccountData
	}
}

// requireWalletEntry enforces Allow-mode membership: the entry must load as
// an initialized WalletEntry, be owned by this program and reference this
// exact list.
func (p *Processor) requireWalletEntry(list, walletEntry *solana.Account) error {
	data, release, err := walletEntry.BorrowData()
	if err != nil {
		return err
	}
	defer release()

	wallet, err := load[WalletEntry](data)
	if err != nil {
		// Absence of membership is the policy outcome, not a data error.
		return ErrAccountBlocked
	}

	if !walletEntry.IsOwnedBy(p.ID) || wallet.ListConfig != list.Key() {
		return ErrInvalidWalletEntry
	}
	return nil
}

// checkNotBlocked enforces Block-mode: a valid entry for this list is an
// explicit block, absence is a pass.
func (p *Processor) checkNotBlocked(list, walletEntry *solana.Account) error {
	// Either the block entry exists and is owned by this program, or the
	// account is unallocated (system owned). Any other owner is a forged
	// pairing and rejected outright rather than treated as absence; the
	// entry address is never re-derived here to keep the read path cheap.
	if !walletEntry.IsOwnedBy(solana.SystemProgramID) && !walletEntry.IsOwnedBy(p.ID) {
		return ErrInvalidWalletEntry
	}

	data, release, err := walletEntry.BorrowData()
	if err != nil {
		return err
	}
	defer release()

	wallet, err := load[WalletEntry](data)
	if err != nil {
		// No block record for this wallet.
		return nil
	}
	if wallet.ListConfig != list.Key() {
		return ErrInvalidWalletEntry
	}
	return ErrAccountBlocked
}
