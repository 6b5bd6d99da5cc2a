package vm

import "github.com/ethyp/creation/core/types"

// SubState is the accrued side-effect record A of a call/create frame (§3):
// touched accounts, self-destructed accounts, and a refund counter. An empty
// SubState is the identity for Merge.
type SubState struct {
	Touched      map[types.Address]struct{}
	SelfDestruct map[types.Address]struct{}
	Refund       uint64
}

// EmptySubState returns the identity sub-state: nothing touched, nothing
// self-destructed, zero refund.
func EmptySubState() SubState {
	return SubState{
		Touched:      make(map[types.Address]struct{}),
		SelfDestruct: make(map[types.Address]struct{}),
	}
}

// AddTouched returns a copy of a with addr inserted into the touched set; a
// itself is left unchanged (idempotent: inserting an already-touched address
// is a no-op).
func AddTouched(a SubState, addr types.Address) SubState {
	out := a.clone()
	out.Touched[addr] = struct{}{}
	return out
}

// AddSelfDestruct returns a with addr inserted into the self-destruct set.
func AddSelfDestruct(a SubState, addr types.Address) SubState {
	out := a.clone()
	out.SelfDestruct[addr] = struct{}{}
	return out
}

// Merge returns the commutative union of a and b: the pointwise union of
// both touched sets, both self-destruct sets, and the sum of both refund
// counters.
func Merge(a, b SubState) SubState {
	out := a.clone()
	for addr := range b.Touched {
		out.Touched[addr] = struct{}{}
	}
	for addr := range b.SelfDestruct {
		out.SelfDestruct[addr] = struct{}{}
	}
	out.Refund = a.Refund + b.Refund
	return out
}

// IsTouched reports whether addr is a member of a's touched set.
func (a SubState) IsTouched(addr types.Address) bool {
	_, ok := a.Touched[addr]
	return ok
}

func (a SubState) clone() SubState {
	out := SubState{
		Touched:      make(map[types.Address]struct{}, len(a.Touched)),
		SelfDestruct: make(map[types.Address]struct{}, len(a.SelfDestruct)),
		Refund:       a.Refund,
	}
	for addr := range a.Touched {
		out.Touched[addr] = struct{}{}
	}
	for addr := range a.SelfDestruct {
		out.SelfDestruct[addr] = struct{}{}
	}
	return out
}
