package abl

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/rs/zerolog"

	"github.com/Abdullah1738/token-acl/solana"
)

// Shared fixtures for the instruction tests.

var testProgramID = pk(0xAC)

func pk(b byte) solana.Pubkey {
	var k solana.Pubkey
	for i := range k {
		k[i] = b
	}
	return k
}

// eoaKey returns a key an external signer could hold, so it is on-curve.
func eoaKey(seed byte) solana.Pubkey {
	var s [ed25519.SeedSize]byte
	s[0] = seed
	pub := ed25519.NewKeyFromSeed(s[:]).Public().(ed25519.PublicKey)
	var k solana.Pubkey
	copy(k[:], pub)
	return k
}

// pdaKey returns a program-derived, guaranteed off-curve key.
func pdaKey(seed string) solana.Pubkey {
	k, _, err := solana.FindProgramAddress([][]byte{[]byte(seed)}, testProgramID)
	if err != nil {
		panic(err)
	}
	return k
}

func newTestProcessor() *Processor {
	return NewProcessor(testProgramID, zerolog.Nop())
}

type tlvExt struct {
	typ  uint16
	data []byte
}

// tokenData builds a token account image: 165-byte base record, one
// account-type byte, then the given TLV extensions.
func tokenData(exts ...tlvExt) []byte {
	buf := make([]byte, extensionDataStart)
	for _, e := range exts {
		var hdr [extensionHeaderLen]byte
		binary.LittleEndian.PutUint16(hdr[0:2], e.typ)
		binary.LittleEndian.PutUint16(hdr[2:4], uint16(len(e.data)))
		buf = append(buf, hdr[:]...)
		buf = append(buf, e.data...)
	}
	return buf
}

func tokenAccount(data []byte) *solana.Account {
	return solana.NewAccount(pk(0x10), pk(0x22), 1, data, false, false)
}

func listAccount(key, authority solana.Pubkey, mode Mode, count uint64) *solana.Account {
	return solana.NewAccount(key, testProgramID, 1_000_000, NewListConfigData(authority, mode, count), false, true)
}

func entryAccount(key, owner, list, wallet solana.Pubkey, lamports uint64) *solana.Account {
	return solana.NewAccount(key, owner, lamports, NewWalletEntryData(list, wallet), false, true)
}

// absentEntry is unallocated storage at the entry address: system owned,
// zeroed bytes.
func absentEntry(key solana.Pubkey) *solana.Account {
	return solana.NewAccount(key, solana.SystemProgramID, 0, make([]byte, WalletEntryLen), false, true)
}

// thawAccounts lays out the can-thaw account list: the fixed 6-account
// prefix followed by (list, entry) pairs.
func thawAccounts(token *solana.Account, owner solana.Pubkey, pairs ...*solana.Account) []*solana.Account {
	accounts := []*solana.Account{
		solana.NewAccount(pk(0x01), solana.SystemProgramID, 1, nil, true, false), // authority
		token,
		solana.NewAccount(pk(0x02), pk(0x22), 1, nil, false, false), // mint
		solana.NewAccount(owner, solana.SystemProgramID, 1, nil, false, false),
		solana.NewAccount(pk(0x03), solana.SystemProgramID, 1, nil, false, false), // flag account
		solana.NewAccount(pk(0x04), testProgramID, 1, nil, false, false),          // extra metas
	}
	return append(accounts, pairs...)
}
