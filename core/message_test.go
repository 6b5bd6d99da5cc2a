package core

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/state"
	"github.com/ethyp/creation/core/types"
	"github.com/ethyp/creation/core/vm"
	"github.com/ethyp/creation/params"
)

func TestApplyCreationRejectsNonCreationMessage(t *testing.T) {
	s := state.New()
	to := types.HexToAddress("0x0000000000000000000000000000000000002a")
	msg := Message{From: types.HexToAddress("0x01"), To: &to}

	_, err := ApplyCreation(s, msg, 0, vm.BlockView{}, params.NewHomestead(), vm.NewStubInterpreter())
	if err != ErrNotACreation {
		t.Fatalf("expected ErrNotACreation, got %v", err)
	}
}

func TestApplyCreationRejectsInsufficientBalance(t *testing.T) {
	s := state.New()
	sender := types.HexToAddress("0x01")
	acct := types.NewAccount()
	acct.Balance = uint256.NewInt(5)
	s.Put(sender, acct)

	msg := Message{
		From:     sender,
		Value:    uint256.NewInt(10),
		GasLimit: 100000,
		GasPrice: uint256.NewInt(1),
	}

	_, err := ApplyCreation(s, msg, 0, vm.BlockView{}, params.NewHomestead(), vm.NewStubInterpreter())
	if err != ErrInsufficientBalance {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}
}

func TestApplyCreationSucceedsAndBumpsSenderNonce(t *testing.T) {
	s := state.New()
	sender := types.HexToAddress("0x01")
	acct := types.NewAccount()
	acct.Nonce = 3
	acct.Balance = uint256.NewInt(100)
	s.Put(sender, acct)

	msg := Message{
		From:     sender,
		Value:    uint256.NewInt(10),
		GasLimit: 100000,
		GasPrice: uint256.NewInt(1),
	}

	res, err := ApplyCreation(s, msg, 0, vm.BlockView{}, params.NewHomestead(), vm.NewStubInterpreter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Ok {
		t.Fatalf("expected ok result, got error %v", res.Err)
	}
	if got := res.State.Get(sender).Nonce; got != 4 {
		t.Fatalf("expected sender nonce bumped to 4, got %d", got)
	}

	newAddr := vm.DeriveAddress(sender, 3)
	if got := res.State.Get(newAddr).Balance.Uint64(); got != 10 {
		t.Fatalf("expected new account to receive endowment 10, got %d", got)
	}
}

func TestApplyCreationBumpsSenderNonceEvenOnFailure(t *testing.T) {
	s := state.New()
	sender := types.HexToAddress("0x01")
	acct := types.NewAccount()
	acct.Nonce = 0
	acct.Balance = uint256.NewInt(100)
	s.Put(sender, acct)

	collideAddr := vm.DeriveAddress(sender, 0)
	occupied := types.NewAccount()
	occupied.CodeHash = types.Hash{0xaa}
	s.Put(collideAddr, occupied)

	msg := Message{
		From:     sender,
		Value:    uint256.NewInt(0),
		GasLimit: 100000,
		GasPrice: uint256.NewInt(1),
	}

	res, err := ApplyCreation(s, msg, 0, vm.BlockView{}, params.NewHomestead(), vm.NewStubInterpreter())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ok {
		t.Fatal("expected collision failure")
	}
	if res.Err != vm.ErrCollision {
		t.Fatalf("expected ErrCollision, got %v", res.Err)
	}
	if got := res.State.Get(sender).Nonce; got != 1 {
		t.Fatalf("expected sender nonce bumped to 1 even on creation failure, got %d", got)
	}
}
