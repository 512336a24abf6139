// Package abl implements the token ACL decision engine: allow/block list
// state, the zero-copy account loaders, and the two instruction paths that
// operate on them (the permissionless can-thaw check and wallet removal).
package abl

// ABLError is the program's flat error taxonomy. The numeric value is the
// custom error code surfaced to the invoking environment, so callers can
// tell a policy denial (ErrAccountBlocked) from an integrity failure.
type ABLError uint32

const (
	ErrInvalidInstruction ABLError = iota
	ErrInvalidAuthority
	ErrAccountBlocked
	ErrNotEnoughAccounts
	ErrInvalidAccountData
	ErrInvalidSystemProgram
	ErrInvalidGatingProgram
	ErrInvalidConfigAccount
	ErrAccountNotWritable
	ErrInvalidExtraMetasAccount
	ErrImmutableOwnerExtensionMissing
	ErrInvalidData
	ErrInvalidTokenACLMintConfig
	ErrListNotEmpty
	ErrInvalidRemainingAccounts
	ErrInvalidWalletEntry
)

func (e ABLError) Error() string {
	switch e {
	case ErrInvalidInstruction:
		return "invalid instruction"
	case ErrInvalidAuthority:
		return "invalid authority"
	case ErrAccountBlocked:
		return "account blocked"
	case ErrNotEnoughAccounts:
		return "not enough accounts"
	case ErrInvalidAccountData:
		return "invalid account data"
	case ErrInvalidSystemProgram:
		return "invalid system program"
	case ErrInvalidGatingProgram:
		return "invalid gating program"
	case ErrInvalidConfigAccount:
		return "invalid config account"
	case ErrAccountNotWritable:
		return "account not writable"
	case ErrInvalidExtraMetasAccount:
		return "invalid extra metas account"
	case ErrImmutableOwnerExtensionMissing:
		return "immutable owner extension missing"
	case ErrInvalidData:
		return "invalid data"
	case ErrInvalidTokenACLMintConfig:
		return "invalid token acl mint config"
	case ErrListNotEmpty:
		return "list not empty"
	case ErrInvalidRemainingAccounts:
		return "invalid remaining accounts"
	case ErrInvalidWalletEntry:
		return "invalid wallet entry"
	default:
		return "unknown error"
	}
}

// Code returns the numeric error code surfaced to the host.
func (e ABLError) Code() uint32 {
	return uint32(e)
}
