// Package state implements the Account Store (C2): lookup and mutation of
// accounts over an opaque world-state handle, plus the snapshot/revert
// mechanism the creation orchestrator relies on for atomic rollback.
//
// The Yellow Paper models σ as a persistent, functionally-updated structure:
// every mutation produces a fresh σ'. Following this repository's existing
// state database, we take the copy-on-write option recommended for
// performance: State wraps a shared, journaled backing store, and a mutation
// both appends a reversible log entry and returns the same handle. Revert
// becomes "drop the log back to a snapshot mark" rather than discarding a
// persistent tree, so the orchestrator's revert paths are free.
package state

import (
	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/types"
	"github.com/ethyp/creation/crypto"
)

// codeHash returns the code_hash field for the given runtime code, per the
// Yellow Paper's convention that an account with no code carries
// EmptyCodeHash rather than keccak256(nil) computed ad hoc each time.
func codeHash(code []byte) types.Hash {
	if len(code) == 0 {
		return types.EmptyCodeHash
	}
	return crypto.Keccak256Hash(code)
}

// State is the opaque world-state handle σ. The zero value is not usable;
// construct one with New.
type State struct {
	accounts map[types.Address]types.Account
	present  map[types.Address]bool
	code     map[types.Address][]byte
	journal  *journal
}

// New returns an empty world state.
func New() *State {
	return &State{
		accounts: make(map[types.Address]types.Account),
		present:  make(map[types.Address]bool),
		code:     make(map[types.Address][]byte),
		journal:  newJournal(),
	}
}

// DB returns an opaque token identifying this state's backing store. Block
// views and storage views accept it so they can be constructed independently
// of the account store's internal representation.
func (s *State) DB() any { return s }

// Get returns the account at addr, or the zero-valued default if addr has
// never been written (§4.2).
func (s *State) Get(addr types.Address) types.Account {
	if acct, ok := s.accounts[addr]; ok {
		return acct
	}
	return types.NewAccount()
}

// Exists reports whether addr has ever been written via Put (§4.2: "true iff
// the address is present in σ").
func (s *State) Exists(addr types.Address) bool {
	return s.present[addr]
}

// Put inserts or replaces the account at addr and returns the (same) handle,
// mirroring the functional σ -> σ' signature over the shared, journaled
// store described in the package doc.
func (s *State) Put(addr types.Address, acct types.Account) *State {
	s.journal.append(putChange{
		addr:        addr,
		hadAccount:  s.present[addr],
		prevAccount: s.accounts[addr],
	})
	s.set(addr, acct)
	return s
}

// Transfer debits from.balance by v and credits to.balance by v. The caller
// must ensure from.balance >= v and that to already exists; this is the
// orchestrator's contract, not a check performed here (§4.2).
func (s *State) Transfer(from, to types.Address, v *uint256.Int) *State {
	if v == nil || v.IsZero() {
		return s
	}
	fromAcct := s.Get(from)
	toAcct := s.Get(to)

	s.journal.append(balanceChange{addr: from, prev: fromAcct.Balance.Clone()})
	fromAcct.Balance = new(uint256.Int).Sub(fromAcct.Balance, v)
	s.set(from, fromAcct)

	s.journal.append(balanceChange{addr: to, prev: toAcct.Balance.Clone()})
	toAcct.Balance = new(uint256.Int).Add(toAcct.Balance, v)
	s.set(to, toAcct)

	return s
}

// IncrementNonce bumps the nonce of the account at addr by one.
func (s *State) IncrementNonce(addr types.Address) *State {
	acct := s.Get(addr)
	s.journal.append(nonceChange{addr: addr, prev: acct.Nonce})
	acct.Nonce++
	s.set(addr, acct)
	return s
}

// SetNonce sets the nonce of the account at addr directly. Used by the
// transaction-level caller to bump the sender's own nonce after the
// creation has run; the orchestrator itself never calls this.
func (s *State) SetNonce(addr types.Address, nonce uint64) *State {
	acct := s.Get(addr)
	s.journal.append(nonceChange{addr: addr, prev: acct.Nonce})
	acct.Nonce = nonce
	s.set(addr, acct)
	return s
}

// PutCode stores the deployed runtime code at addr and updates its code
// hash (§4.2).
func (s *State) PutCode(addr types.Address, code []byte) *State {
	acct := s.Get(addr)
	s.journal.append(codeChange{
		addr:     addr,
		prevHash: acct.CodeHash,
		prevCode: s.code[addr],
	})
	acct.CodeHash = codeHash(code)
	s.set(addr, acct)
	if len(code) == 0 {
		delete(s.code, addr)
	} else {
		s.code[addr] = append([]byte(nil), code...)
	}
	return s
}

// GetCode returns the runtime code stored at addr, or nil if it has none.
func (s *State) GetCode(addr types.Address) []byte {
	return s.code[addr]
}

// IsSimpleAccount reports whether acct carries no deployed code (§4.2).
func (s *State) IsSimpleAccount(acct types.Account) bool { return acct.IsSimple() }

// Snapshot returns an identifier that RevertToSnapshot can later roll back
// to, undoing every mutation performed since.
func (s *State) Snapshot() int { return s.journal.snapshot() }

// RevertToSnapshot undoes every mutation performed since id was produced by
// Snapshot, restoring σ to what Get would have returned at that point
// (property 3, §8: the reverted handle is indistinguishable from the
// pre-call σ).
func (s *State) RevertToSnapshot(id int) { s.journal.revertTo(id, s) }

func (s *State) set(addr types.Address, acct types.Account) {
	s.accounts[addr] = acct
	s.present[addr] = true
}

func (s *State) delete(addr types.Address) {
	delete(s.accounts, addr)
	delete(s.present, addr)
	delete(s.code, addr)
}
