package vm

import (
	"github.com/holiman/uint256"

	"github.com/ethyp/creation/core/state"
	"github.com/ethyp/creation/core/types"
	"github.com/ethyp/creation/params"
)

// AccountView is the account_interface wrapped into the Execution
// Environment: the account store's concrete handle, exposed to the VM under
// its own name so I's fields read the way §3 describes them. The account
// store (C2) is simple enough that this is the store itself rather than a
// narrower interface.
type AccountView = *state.State

// ExecutionEnvironment is I, the VM's input record (§3). data is always
// empty for creation; machine_code is always the init code.
type ExecutionEnvironment struct {
	Address     types.Address
	Originator  types.Address
	GasPrice    *uint256.Int
	Data        []byte
	Sender      types.Address
	Value       *uint256.Int
	MachineCode []byte
	StackDepth  uint64
	Block       BlockView
	Account     AccountView
	Config      params.EraConfig
}

// BuildEnvironment constructs I per §3 from a creation call frame already
// past blank-account initialization (σ₃) and the new contract's address.
// Pure; has no failure modes.
func BuildEnvironment(
	addr types.Address,
	p CreationParams,
	state3 AccountView,
	block BlockView,
) ExecutionEnvironment {
	return ExecutionEnvironment{
		Address:     addr,
		Originator:  p.Originator,
		GasPrice:    p.GasPrice,
		Data:        nil,
		Sender:      p.Sender,
		Value:       p.Endowment,
		MachineCode: p.InitCode,
		StackDepth:  p.StackDepth,
		Block:       block,
		Account:     state3,
		Config:      p.Config,
	}
}
