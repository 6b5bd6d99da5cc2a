package state

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/types"
)

func addr(b byte) types.Address {
	var a types.Address
	a[19] = b
	return a
}

func TestGetAbsentAddressReturnsZeroDefault(t *testing.T) {
	s := New()
	a := s.Get(addr(1))
	if a.Nonce != 0 || !a.Balance.IsZero() {
		t.Fatal("expected zero-valued default account")
	}
	if s.Exists(addr(1)) {
		t.Fatal("absent address should not exist")
	}
}

func TestPutMakesAddressExist(t *testing.T) {
	s := New()
	acct := types.NewAccount()
	acct.Nonce = 5
	s.Put(addr(1), acct)

	if !s.Exists(addr(1)) {
		t.Fatal("expected address to exist after Put")
	}
	if got := s.Get(addr(1)).Nonce; got != 5 {
		t.Fatalf("expected nonce 5, got %d", got)
	}
}

func TestTransferMovesBalance(t *testing.T) {
	s := New()
	from := types.NewAccount()
	from.Balance = uint256.NewInt(100)
	s.Put(addr(1), from)
	s.Put(addr(2), types.NewAccount())

	s.Transfer(addr(1), addr(2), uint256.NewInt(30))

	if got := s.Get(addr(1)).Balance.Uint64(); got != 70 {
		t.Fatalf("expected sender balance 70, got %d", got)
	}
	if got := s.Get(addr(2)).Balance.Uint64(); got != 30 {
		t.Fatalf("expected recipient balance 30, got %d", got)
	}
}

func TestIncrementNonce(t *testing.T) {
	s := New()
	s.Put(addr(1), types.NewAccount())
	s.IncrementNonce(addr(1))
	s.IncrementNonce(addr(1))
	if got := s.Get(addr(1)).Nonce; got != 2 {
		t.Fatalf("expected nonce 2, got %d", got)
	}
}

func TestPutCodeUpdatesCodeHashAndSimplicity(t *testing.T) {
	s := New()
	s.Put(addr(1), types.NewAccount())
	if !s.IsSimpleAccount(s.Get(addr(1))) {
		t.Fatal("fresh account should be simple")
	}

	s.PutCode(addr(1), []byte{0x60, 0x00})
	acct := s.Get(addr(1))
	if s.IsSimpleAccount(acct) {
		t.Fatal("account with code should not be simple")
	}
	if got := s.GetCode(addr(1)); len(got) != 2 {
		t.Fatalf("expected 2 code bytes, got %d", len(got))
	}
}

func TestPutCodeEmptyKeepsAccountSimple(t *testing.T) {
	s := New()
	s.Put(addr(1), types.NewAccount())
	s.PutCode(addr(1), nil)
	if !s.IsSimpleAccount(s.Get(addr(1))) {
		t.Fatal("putting empty code should keep the account simple")
	}
}

func TestSnapshotRevertUndoesAllMutations(t *testing.T) {
	s := New()
	from := types.NewAccount()
	from.Balance = uint256.NewInt(100)
	s.Put(addr(1), from)
	s.Put(addr(2), types.NewAccount())

	snap := s.Snapshot()

	s.Transfer(addr(1), addr(2), uint256.NewInt(40))
	s.IncrementNonce(addr(2))
	s.PutCode(addr(2), []byte{0x01})
	s.Put(addr(3), types.NewAccount())

	s.RevertToSnapshot(snap)

	if got := s.Get(addr(1)).Balance.Uint64(); got != 100 {
		t.Fatalf("expected sender balance restored to 100, got %d", got)
	}
	if got := s.Get(addr(2)).Balance.Uint64(); got != 0 {
		t.Fatalf("expected recipient balance restored to 0, got %d", got)
	}
	if got := s.Get(addr(2)).Nonce; got != 0 {
		t.Fatalf("expected nonce restored to 0, got %d", got)
	}
	if !s.IsSimpleAccount(s.Get(addr(2))) {
		t.Fatal("expected code put after snapshot to be reverted")
	}
	if s.Exists(addr(3)) {
		t.Fatal("expected address created after snapshot to no longer exist")
	}
}

func TestRevertToSnapshotZeroUndoesEverything(t *testing.T) {
	s := New()
	snap := s.Snapshot()
	s.Put(addr(1), types.NewAccount())
	s.RevertToSnapshot(snap)
	if s.Exists(addr(1)) {
		t.Fatal("expected state to be empty after reverting to the initial snapshot")
	}
}

func TestNestedSnapshots(t *testing.T) {
	s := New()
	s.Put(addr(1), types.NewAccount())

	outer := s.Snapshot()
	s.IncrementNonce(addr(1))
	inner := s.Snapshot()
	s.IncrementNonce(addr(1))

	if got := s.Get(addr(1)).Nonce; got != 2 {
		t.Fatalf("expected nonce 2 before any revert, got %d", got)
	}

	s.RevertToSnapshot(inner)
	if got := s.Get(addr(1)).Nonce; got != 1 {
		t.Fatalf("expected nonce 1 after reverting to inner snapshot, got %d", got)
	}

	s.RevertToSnapshot(outer)
	if got := s.Get(addr(1)).Nonce; got != 0 {
		t.Fatalf("expected nonce 0 after reverting to outer snapshot, got %d", got)
	}
}
