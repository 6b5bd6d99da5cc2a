package vm

// Interpreter is the VM facade (C6): the contract exposed by the external
// bytecode interpreter, out of scope for this module beyond this signature
// (§2, §6). Run executes init_code against env starting with gas available,
// and returns the gas remaining, the sub-state accrued during execution,
// and the three-way output variant. env itself is not returned: every state
// change made along the way is applied to env.Account, the shared state
// handle the caller already holds.
type Interpreter interface {
	Run(gas uint64, env ExecutionEnvironment) (remainingGas uint64, sub SubState, output VMOutput)
}

// StubInterpreter is a minimal reference implementation of Interpreter,
// sufficient to drive the orchestrator's tests without a full bytecode
// engine (explicitly out of scope, §1). Besides empty code it recognizes
// exactly three "programs" in MachineCode, matched by convention rather
// than opcodes:
//
//   - empty code: succeeds immediately with no deployed code.
//   - a program produced by ReturnCode(gas, n): succeeds, deploying n
//     arbitrary bytes, consuming the encoded gas plus GasPerDeployedByte
//     gas per deployed byte.
//   - a program produced by RevertAfter(n): consumes n gas, then reverts
//     with no returned bytes.
//   - a program produced by FailAfter(n): consumes n gas, then halts
//     exceptionally.
//
// Real opcode execution, gas metering per instruction, and control flow are
// the interpreter's concern and are not modeled here.
type StubInterpreter struct {
	// GasPerDeployedByte is charged per byte of code the program returns,
	// on top of any fixed overhead the program encodes.
	GasPerDeployedByte uint64
}

// NewStubInterpreter returns a StubInterpreter with no per-byte execution
// overhead beyond what individual test programs encode.
func NewStubInterpreter() *StubInterpreter {
	return &StubInterpreter{}
}

func (s *StubInterpreter) Run(gas uint64, env ExecutionEnvironment) (uint64, SubState, VMOutput) {
	prog, ok := decodeProgram(env.MachineCode)
	if !ok || len(env.MachineCode) == 0 {
		return gas, EmptySubState(), Code(nil)
	}

	if gas < prog.consume {
		return 0, EmptySubState(), Failure()
	}
	gas -= prog.consume

	switch prog.kind {
	case programReturn:
		deployGas := s.GasPerDeployedByte * uint64(len(prog.payload))
		if gas < deployGas {
			// The stub still returns the code; the orchestrator's own
			// code-deposit accounting (§4.4 step 5) decides the outcome.
			return gas, EmptySubState(), Code(prog.payload)
		}
		gas -= deployGas
		return gas, EmptySubState(), Code(prog.payload)
	case programRevert:
		return gas, EmptySubState(), Revert(nil)
	case programFail:
		return 0, EmptySubState(), Failure()
	default:
		return gas, EmptySubState(), Code(nil)
	}
}
