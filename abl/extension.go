package abl

import (
	"encoding/binary"

	"github.com/Abdullah1738/token-acl/solana"
)

// Token-2022 account geometry. Extensions are TLV-encoded after the base
// record plus one account-type padding byte.
const (
	immutableOwnerExtensionID uint16 = 7

	tokenAccountLen       = 165
	extensionStartPadding = 1
	extensionTypeLen      = 2
	extensionLenLen       = 2
	extensionHeaderLen    = extensionTypeLen + extensionLenLen
	extensionDataStart    = tokenAccountLen + extensionStartPadding
)

// HasImmutableOwnerExtension reports whether the token account carries the
// immutable-owner extension. Anything that prevents reading a well-formed
// TLV region (live exclusive borrow, buffer too short, truncated header)
// counts as "absent".
func HasImmutableOwnerExtension(tokenAccount *solana.Account) bool {
	data, done, err := tokenAccount.BorrowData()
	if err != nil {
		return false
	}
	defer done()

	if len(data) < extensionDataStart {
		return false
	}
	ext := data[extensionDataStart:]

	for start := 0; start < len(ext); {
		if len(ext)-start < extensionHeaderLen {
			return false
		}
		extType := binary.LittleEndian.Uint16(ext[start : start+extensionTypeLen])
		if extType == immutableOwnerExtensionID {
			return true
		}
		extLen := binary.LittleEndian.Uint16(ext[start+extensionTypeLen : start+extensionHeaderLen])
		start += extensionHeaderLen + int(extLen)
	}
	return false
}
