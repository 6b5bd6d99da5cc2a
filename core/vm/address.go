package vm

import (
	"github.com/ethyp/creation/core/types"
	"github.com/ethyp/creation/crypto"
	"github.com/ethyp/creation/rlp"
)

// DeriveAddress computes the address of a contract created by sender at the
// given nonce (C1): keccak256(rlp([sender, nonce]))[12:]. nonce must be the
// sender's nonce *before* it is incremented for this creation (§4.1). Purely
// functional; it has no failure modes.
func DeriveAddress(sender types.Address, nonce uint64) types.Address {
	payload, err := rlp.EncodeToBytes([]any{sender.Bytes(), nonce})
	if err != nil {
		// []any of a 20-byte slice and a uint64 always encodes; this path
		// is unreachable.
		panic(err)
	}
	hash := crypto.Keccak256(payload)
	return types.BytesToAddress(hash[12:])
}
