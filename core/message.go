// message.go is the transaction applier referenced by the creation
// orchestrator's lifecycle (§3): it is the caller responsible for verifying
// the sender's balance before entry and for the sender's own nonce bump,
// both of which are the orchestrator's caller's contract rather than the
// orchestrator's own concern (§4.2, §4.4 step 3).
package core

import (
	"errors"

	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/state"
	"github.com/ethyp/creation/core/types"
	"github.com/ethyp/creation/core/vm"
	"github.com/ethyp/creation/log"
	"github.com/ethyp/creation/params"
)

var applyLog = log.Default().Module("apply")

// ErrNotACreation is returned by ApplyCreation for a message carrying a
// non-nil To; the CALL path it would otherwise take belongs to a wider
// transaction applier, out of scope for this module.
var ErrNotACreation = errors.New("apply: message is not a contract creation")

// ErrInsufficientBalance is returned when the sender cannot afford the
// endowment. The orchestrator's transfer step assumes this has already been
// checked (§4.2); this is where that check lives.
var ErrInsufficientBalance = errors.New("apply: sender balance below endowment")

// Message is a transaction prepared for execution. To is nil for a
// contract-creation transaction, the only case this package applies; the
// CALL path belongs to a wider transaction applier out of scope here.
// From must already hold the recovered sender; signature recovery is not
// this module's concern.
type Message struct {
	From     types.Address
	To       *types.Address
	Nonce    uint64
	Value    *uint256.Int
	GasLimit uint64
	GasPrice *uint256.Int
	Data     []byte // init code, when To is nil
}

// ApplyCreation is the transaction-level caller the orchestrator's lifecycle
// expects: it verifies the sender can afford the endowment, derives the
// creation parameters with the sender's pre-increment nonce, invokes the
// orchestrator, and finally bumps the sender's own nonce (distinct from the
// new contract's nonce, which the orchestrator itself manages) regardless of
// outcome, mirroring ordinary transaction processing.
func ApplyCreation(
	s *state.State,
	msg Message,
	stackDepth uint64,
	block vm.BlockView,
	cfg params.EraConfig,
	interp vm.Interpreter,
) (vm.Result, error) {
	if msg.To != nil {
		return vm.Result{}, ErrNotACreation
	}

	sender := s.Get(msg.From)
	if sender.Balance.Cmp(msg.Value) < 0 {
		applyLog.Warn("insufficient balance for endowment",
			"sender", msg.From, "balance", sender.Balance, "value", msg.Value)
		return vm.Result{}, ErrInsufficientBalance
	}

	cp := vm.CreationParams{
		State:        s,
		Sender:       msg.From,
		Originator:   msg.From,
		AvailableGas: msg.GasLimit,
		GasPrice:     msg.GasPrice,
		Endowment:    msg.Value,
		InitCode:     msg.Data,
		StackDepth:   stackDepth,
		Block:        block,
		Config:       cfg,
	}

	result := vm.Execute(cp, interp)

	// The sender's own nonce advances whether or not the creation
	// succeeded; this is ordinary transaction accounting, separate from
	// the new contract's nonce that Execute manages.
	outState := result.State
	if outState != nil {
		outState.SetNonce(msg.From, sender.Nonce+1)
	}

	if !result.Ok {
		applyLog.Debug("creation failed", "sender", msg.From, "err", result.Err)
	}

	return result, nil
}
