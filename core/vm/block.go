package vm

import (
	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/types"
)

// GetHashFunc resolves the hash of an ancestor block by number, for the VM's
// BLOCKHASH opcode.
type GetHashFunc func(number uint64) types.Hash

// BlockHeader carries the subset of block-header fields the VM needs.
type BlockHeader struct {
	Number     uint64
	Time       uint64
	Coinbase   types.Address
	GasLimit   uint64
	BaseFee    *uint256.Int
	PrevRandao types.Hash
}

// BlockView is the read-only block interface (C8) the Execution Environment
// Builder wraps into I.block_interface: the header under execution plus
// ancestor-header lookup via GetHash. It carries the opaque db token through
// from the account store it was built against so the VM can resolve
// ancestor state without this module knowing its representation.
type BlockView struct {
	Header  BlockHeader
	GetHash GetHashFunc
	db      any
}

// NewBlockView constructs a BlockView over header, backed by db (the token
// returned by the account store's DB method) and resolving ancestor hashes
// via getHash.
func NewBlockView(header BlockHeader, db any, getHash GetHashFunc) BlockView {
	return BlockView{Header: header, GetHash: getHash, db: db}
}

// DB returns the opaque world-state token this view was built against.
func (b BlockView) DB() any { return b.db }

// AncestorHash returns the hash of the ancestor block at number, or the zero
// hash if getHash is nil or the ancestor is unknown.
func (b BlockView) AncestorHash(number uint64) types.Hash {
	if b.GetHash == nil {
		return types.Hash{}
	}
	return b.GetHash(number)
}
