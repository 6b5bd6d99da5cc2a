package vm

import "errors"

// Error kinds the Creation Orchestrator returns (§7). These are semantic
// tags, not exhaustive failure types: each is returned alongside the
// (state, gas_left, sub_state) triple the caller needs to finish the frame.
var (
	// ErrCollision: the derived address is occupied by a non-simple
	// account or one with nonzero nonce. All gas consumed, state
	// unchanged.
	ErrCollision = errors.New("create: address collision")

	// ErrBenignExistingCollisionAtTopLevel: the derived address is
	// occupied by a simple, nonce-0 account during a top-level creation.
	// All gas consumed, state unchanged; a success-shaped no-op for inner
	// creates (§4.4 step 2).
	ErrBenignExistingCollisionAtTopLevel = errors.New("create: benign existing account at top level")

	// ErrVMExceptionalHalt: out-of-gas, stack under/overflow, invalid
	// jump, invalid opcode, or depth overflow inside the VM. All gas
	// consumed, state reverts to pre-call.
	ErrVMExceptionalHalt = errors.New("create: exceptional halt")

	// ErrRevert: explicit REVERT from init code. Remaining gas preserved,
	// state reverts.
	ErrRevert = errors.New("create: reverted")

	// ErrInsufficientDeployGas: execution succeeded but remaining gas
	// can't cover the code-deposit cost, under an era that fails this
	// hard (Homestead onward). All gas consumed, state reverts.
	ErrInsufficientDeployGas = errors.New("create: insufficient gas for code deposit")

	// ErrCodeSizeExceeded: deployed code size is at or above the
	// era's code-size limit (EIP-158 onward). All gas consumed, state
	// reverts.
	ErrCodeSizeExceeded = errors.New("create: deployed code size exceeds limit")
)
