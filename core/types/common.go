// Package types defines the data model shared by the account store, the
// configuration strategy, and the creation orchestrator: fixed-size
// addresses and hashes, and the account record described by the Yellow
// Paper's state trie entries.
package types

import (
	"encoding/hex"
	"fmt"

	"github.com/holiman/uint256"
)

const (
	HashLength    = 32
	AddressLength = 20
)

// Hash is a 32-byte Keccak256 digest.
type Hash [HashLength]byte

// Address is a 20-byte account identifier.
type Address [AddressLength]byte

// BytesToHash converts b to a Hash, left-padding if shorter than 32 bytes and
// truncating from the left if longer.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.SetBytes(b)
	return h
}

// HexToHash converts a hex string (with or without "0x") to a Hash.
func HexToHash(s string) Hash { return BytesToHash(fromHex(s)) }

// Bytes returns the byte representation of the hash.
func (h Hash) Bytes() []byte { return h[:] }

// Hex returns the "0x"-prefixed hex representation.
func (h Hash) Hex() string { return fmt.Sprintf("0x%x", h[:]) }

// SetBytes sets the hash from b, left-padding if necessary.
func (h *Hash) SetBytes(b []byte) {
	if len(b) > HashLength {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

// IsZero reports whether the hash is the zero value.
func (h Hash) IsZero() bool { return h == Hash{} }

// String implements fmt.Stringer.
func (h Hash) String() string { return h.Hex() }

// BytesToAddress converts b to an Address, left-padding if shorter than 20
// bytes and truncating from the left if longer (as when deriving an address
// from the low 20 bytes of a Keccak256 digest).
func BytesToAddress(b []byte) Address {
	var a Address
	a.SetBytes(b)
	return a
}

// HexToAddress converts a hex string (with or without "0x") to an Address.
func HexToAddress(s string) Address { return BytesToAddress(fromHex(s)) }

// Bytes returns the byte representation of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the "0x"-prefixed hex representation.
func (a Address) Hex() string { return fmt.Sprintf("0x%x", a[:]) }

// SetBytes sets the address from b, left-padding if necessary.
func (a *Address) SetBytes(b []byte) {
	if len(b) > AddressLength {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// IsZero reports whether the address is the zero value.
func (a Address) IsZero() bool { return a == Address{} }

// String implements fmt.Stringer.
func (a Address) String() string { return a.Hex() }

var (
	// EmptyCodeHash is keccak256(nil), the code_hash of every account with
	// no deployed code. A simple account is one whose CodeHash equals this.
	EmptyCodeHash = HexToHash("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")

	// EmptyRootHash is the root of an empty storage trie. A freshly created
	// account's StorageRoot starts here.
	EmptyRootHash = HexToHash("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")
)

// Account is the Yellow Paper account record: nonce, balance, code_hash, and
// storage_root. The trie itself is out of scope for this module; StorageRoot
// is carried as an opaque digest.
type Account struct {
	Nonce       uint64
	Balance     *uint256.Int
	CodeHash    Hash
	StorageRoot Hash
}

// NewAccount returns a zero-valued account: no code, empty storage, zero
// balance and nonce. This is the record Step 3 of the creation orchestrator
// installs at the new contract's address before transfer and execution.
func NewAccount() Account {
	return Account{
		Balance:     new(uint256.Int),
		CodeHash:    EmptyCodeHash,
		StorageRoot: EmptyRootHash,
	}
}

// IsSimple reports whether the account has no deployed code.
func (a Account) IsSimple() bool { return a.CodeHash == EmptyCodeHash }

// IsEmpty reports whether the account is simple, with zero nonce and zero
// balance (the Yellow Paper's "empty account" predicate, §3).
func (a Account) IsEmpty() bool {
	return a.IsSimple() && a.Nonce == 0 && (a.Balance == nil || a.Balance.IsZero())
}

func fromHex(s string) []byte {
	if has0xPrefix(s) {
		s = s[2:]
	}
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, _ := hex.DecodeString(s)
	return b
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
