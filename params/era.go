// Package params implements the Configuration Strategy (C3): the
// protocol-era predicates and constants the Creation Orchestrator consults.
//
// The era variants compose by delegation, the way the source this is
// modeled on does it: each era past Frontier wraps the era it forked from
// as a fallback and overrides only the knobs that era actually changed.
// There is no virtual dispatch table; each predicate below walks the
// fallback chain until it finds the era that owns the knob.
package params

// GasCodeDeposit is G_codedeposit: the per-byte gas cost of persisting
// deployed contract code (§6).
const GasCodeDeposit uint64 = 200

// CodeSizeLimit is the smallest deployed-code size EIP-170 rejects. Code of
// this size or larger is rejected under eras with the limit enabled; 24576
// bytes is the largest size still accepted.
const CodeSizeLimit = 24577

// EraConfig identifies a protocol-era variant and answers the three
// consensus predicates the orchestrator depends on. Concrete eras are
// Frontier, Homestead, EIP150, and EIP158 (§6); Frontier is the only era
// with a nil fallback.
type EraConfig interface {
	fallback() EraConfig
	ownIncrementNonceOnCreate() (value, owns bool)
	ownFailOnInsufficientDeployGas() (value, owns bool)
	ownLimitContractCodeSize() (limited, owns bool)
}

// IncrementNonceOnCreate reports whether the newly created contract's nonce
// is bumped from 0 to 1 before its init code executes (EIP-161).
func IncrementNonceOnCreate(cfg EraConfig) bool {
	for c := cfg; c != nil; c = c.fallback() {
		if v, owns := c.ownIncrementNonceOnCreate(); owns {
			return v
		}
	}
	return false
}

// FailOnInsufficientDeployGas reports whether exhausting the code-deposit
// gas budget fails the creation outright (Homestead onward) rather than
// silently deploying empty code and returning the VM's remaining gas
// uncharged (Frontier).
func FailOnInsufficientDeployGas(cfg EraConfig) bool {
	for c := cfg; c != nil; c = c.fallback() {
		if v, owns := c.ownFailOnInsufficientDeployGas(); owns {
			return v
		}
	}
	return false
}

// LimitContractCodeSize reports whether deployed code of the given size is
// rejected under cfg (EIP-170: size >= CodeSizeLimit).
func LimitContractCodeSize(cfg EraConfig, size int) bool {
	for c := cfg; c != nil; c = c.fallback() {
		if limited, owns := c.ownLimitContractCodeSize(); owns {
			return limited && size >= CodeSizeLimit
		}
	}
	return false
}
