package state

import (
	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/types"
)

// journalEntry undoes a single mutation previously applied to a State.
type journalEntry interface {
	revert(s *State)
}

// journal is an append-only log of reversible mutations. A snapshot is a
// mark in the log; reverting to it replays every entry recorded after the
// mark in reverse order, then truncates the log back to the mark.
type journal struct {
	entries []journalEntry
}

func newJournal() *journal {
	return &journal{}
}

func (j *journal) append(e journalEntry) {
	j.entries = append(j.entries, e)
}

// snapshot returns the current log length as an opaque revert target.
func (j *journal) snapshot() int {
	return len(j.entries)
}

// revertTo undoes every entry appended since id was produced by snapshot.
func (j *journal) revertTo(id int, s *State) {
	for i := len(j.entries) - 1; i >= id; i-- {
		j.entries[i].revert(s)
	}
	j.entries = j.entries[:id]
}

// putChange undoes Put: either restore the previous account or, if addr had
// never been written before, remove it entirely so Exists reports false
// again.
type putChange struct {
	addr        types.Address
	hadAccount  bool
	prevAccount types.Account
}

func (c putChange) revert(s *State) {
	if c.hadAccount {
		s.set(c.addr, c.prevAccount)
		return
	}
	s.delete(c.addr)
}

// balanceChange undoes one side of a Transfer.
type balanceChange struct {
	addr types.Address
	prev *uint256.Int
}

func (c balanceChange) revert(s *State) {
	acct := s.Get(c.addr)
	acct.Balance = c.prev
	s.set(c.addr, acct)
}

// nonceChange undoes IncrementNonce or SetNonce.
type nonceChange struct {
	addr types.Address
	prev uint64
}

func (c nonceChange) revert(s *State) {
	acct := s.Get(c.addr)
	acct.Nonce = c.prev
	s.set(c.addr, acct)
}

// codeChange undoes PutCode.
type codeChange struct {
	addr     types.Address
	prevHash types.Hash
	prevCode []byte
}

func (c codeChange) revert(s *State) {
	acct := s.Get(c.addr)
	acct.CodeHash = c.prevHash
	s.set(c.addr, acct)
	if c.prevCode == nil {
		delete(s.code, c.addr)
	} else {
		s.code[c.addr] = c.prevCode
	}
}
