package abl

import (
	"github.com/Abdullah1738/token-acl/solana"
)

// RemoveWallet destroys a wallet's membership entry, returns the entry's
// rent deposit to the list authority and decrements the list's live-entry
// counter.
type RemoveWallet struct {
	Authority   *solana.Account
	ListConfig  *solana.Account
	WalletEntry *solana.Account
}

func newRemoveWallet(p *Processor, accounts []*solana.Account) (*RemoveWallet, error) {
	if len(accounts) != 3 {
		return nil, ErrNotEnoughAccounts
	}
	authority, listConfig, walletEntry := accounts[0], accounts[1], accounts[2]

	if !listConfig.IsOwnedBy(p.ID) {
		return nil, ErrInvalidConfigAccount
	}
	if !listConfig.IsWritable() || !walletEntry.IsWritable() {
		return nil, ErrAccountNotWritable
	}

	entryData, release, err := walletEntry.BorrowData()
	if err != nil {
		return nil, err
	}
	defer release()

	entry, err := load[WalletEntry](entryData)
	if err != nil {
		return nil, err
	}
	if entry.ListConfig != listConfig.Key() {
		return nil, ErrInvalidWalletEntry
	}

	return &RemoveWallet{
		Authority:   authority,
		ListConfig:  listConfig,
		WalletEntry: walletEntry,
	}, nil
}

// RemoveWallet validates the authority then performs the removal. All
// validation happens before the first mutation so a failure leaves no
// partial state for the host to roll back.
func (p *Processor) RemoveWallet(accounts []*solana.Account) error {
	ix, err := newRemoveWallet(p, accounts)
	if err != nil {
		return err
	}
	return ix.process()
}

func (ix *RemoveWallet) process() error {
	listData, release, err := ix.ListConfig.BorrowMutData()
	if err != nil {
		return err
	}
	defer release()

	listConfig, err := load[ListConfig](listData)
	if err != nil {
		return err
	}

	if !ix.Authority.IsSigner() || listConfig.Authority != ix.Authority.Key() {
		return ErrInvalidAuthority
	}

	if err := ix.Authority.AddLamports(ix.WalletEntry.Lamports()); err != nil {
		return err
	}
	if err := ix.WalletEntry.Close(); err != nil {
		return err
	}

	return listConfig.DecrementWalletsCount()
}
