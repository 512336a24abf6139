package abl

import "github.com/Abdullah1738/token-acl/solana"

// WalletEntryAddress derives the canonical address of the membership entry
// for a wallet under a list. The instruction paths never re-derive this
// (the entry account is passed in and validated by back-reference instead,
// which is much cheaper); it exists for tooling and for the off-chain side
// assembling the account list.
func WalletEntryAddress(programID, list, wallet solana.Pubkey) (solana.Pubkey, uint8, error) {
	return solana.FindProgramAddress([][]byte{list[:], wallet[:]}, programID)
}
