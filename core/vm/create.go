// create.go implements the Creation Orchestrator (C7), the spine of this
// module: pre-flight checks, blank-account initialization, value transfer,
// VM invocation, and post-execution charging/limits/commit-or-revert, per
// Yellow Paper §7 (equations ~76, ~88-96).
package vm

import (
	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/state"
	"github.com/ethyp/creation/core/types"
	"github.com/ethyp/creation/params"
)

// CreationParams is the call frame for one creation (§3): the spine reads
// every field of this struct once and never retains it past Execute.
type CreationParams struct {
	State        *state.State
	Sender       types.Address
	Originator   types.Address
	AvailableGas uint64
	GasPrice     *uint256.Int
	Endowment    *uint256.Int
	InitCode     []byte
	StackDepth   uint64
	Block        BlockView
	Config       params.EraConfig
}

// Result is what Execute returns: either Ok or Err is true, never both. On
// Ok the caller adopts State; on Err the caller either surfaces the failure
// (propagating State and GasLeft unchanged) or treats the frame as reverted
// while still consuming GasLeft (§6).
type Result struct {
	Ok       bool
	Err      error
	State    *state.State
	GasLeft  uint64
	SubState SubState
}

func ok(s *state.State, gasLeft uint64, sub SubState) Result {
	return Result{Ok: true, State: s, GasLeft: gasLeft, SubState: sub}
}

func fail(err error, s *state.State, gasLeft uint64, sub SubState) Result {
	return Result{Ok: false, Err: err, State: s, GasLeft: gasLeft, SubState: sub}
}

// Execute runs the full contract-creation algorithm described by §4.4.
func Execute(p CreationParams, vm Interpreter) Result {
	// Step 1 - derive address. The sender's nonce as read here is its
	// value prior to any transaction-level increment the caller applies
	// (§4.4 ordering constraints).
	sender := p.State.Get(p.Sender)
	addr := DeriveAddress(p.Sender, sender.Nonce)

	// Step 2 - pre-existence check.
	prior := p.State.Get(addr)
	if p.State.Exists(addr) {
		if prior.Nonce > 0 || !p.State.IsSimpleAccount(prior) {
			return fail(ErrCollision, p.State, 0, EmptySubState())
		}
		// prior is a simple, nonce-0 account.
		if p.StackDepth != 0 {
			// Benign existing account reached via an inner CREATE: §9
			// notes this guard is taken literally from the source, not
			// "corrected" to a call-depth notion.
			s := p.State
			if params.IncrementNonceOnCreate(p.Config) {
				s = s.IncrementNonce(addr)
			}
			return ok(s, p.AvailableGas, EmptySubState())
		}
		return fail(ErrBenignExistingCollisionAtTopLevel, p.State, 0, EmptySubState())
	}

	// Every mutation from here on must be revertable: snapshot before Step
	// 3 so every post-Step-3 failure path can roll σ back to exactly what
	// it was on entry, per §8 property 3.
	snap := p.State.Snapshot()

	// Step 3 - blank-account initialization.
	s1 := p.State.Put(addr, types.NewAccount())
	s2 := s1.Transfer(p.Sender, addr, p.Endowment)
	s3 := s2
	if params.IncrementNonceOnCreate(p.Config) {
		s3 = s2.IncrementNonce(addr)
	}

	// Step 4 - build environment and invoke the VM.
	env := BuildEnvironment(addr, p, s3, p.Block)
	remGas, sub, output := vm.Run(p.AvailableGas, env)

	// Step 5 - post-execution disposition.
	switch {
	case output.IsFailure():
		p.State.RevertToSnapshot(snap)
		return fail(ErrVMExceptionalHalt, p.State, 0, EmptySubState())

	case output.IsRevert():
		p.State.RevertToSnapshot(snap)
		return fail(ErrRevert, p.State, remGas, EmptySubState())

	default:
		code, _ := output.Code()
		depositCost := uint64(len(code)) * params.GasCodeDeposit
		insufficient := remGas < depositCost

		if insufficient && params.FailOnInsufficientDeployGas(p.Config) {
			p.State.RevertToSnapshot(snap)
			return fail(ErrInsufficientDeployGas, p.State, 0, EmptySubState())
		}
		if params.LimitContractCodeSize(p.Config, len(code)) {
			p.State.RevertToSnapshot(snap)
			return fail(ErrCodeSizeExceeded, p.State, 0, EmptySubState())
		}

		// Frontier, on insufficient gas: deploy empty code (never put) and
		// charge no deposit, so the VM's remaining gas is returned as is.
		gasOut := remGas
		sOut := s3
		if !insufficient {
			gasOut = remGas - depositCost
			sOut = s3.PutCode(addr, code)
		}
		subOut := AddTouched(sub, addr)
		return ok(sOut, gasOut, subOut)
	}
}
