package params

// Frontier is the genesis era. No nonce bump on create, insufficient
// code-deposit gas silently truncates to empty code, and there is no
// code-size limit.
type Frontier struct{}

func (Frontier) fallback() EraConfig { return nil }
func (Frontier) ownIncrementNonceOnCreate() (value, owns bool)      { return false, true }
func (Frontier) ownFailOnInsufficientDeployGas() (value, owns bool) { return false, true }
func (Frontier) ownLimitContractCodeSize() (limited, owns bool)     { return false, true }

// Homestead wraps Frontier, changing only fail_on_insufficient_deploy_gas
// to true: a creation that can't afford its code deposit now fails hard.
type Homestead struct {
	Fallback EraConfig
}

// NewHomestead returns the Homestead era delegating unmodeled knobs to
// Frontier.
func NewHomestead() Homestead { return Homestead{Fallback: Frontier{}} }

func (h Homestead) fallback() EraConfig { return h.Fallback }
func (Homestead) ownIncrementNonceOnCreate() (value, owns bool)      { return false, false }
func (Homestead) ownFailOnInsufficientDeployGas() (value, owns bool) { return true, true }
func (Homestead) ownLimitContractCodeSize() (limited, owns bool)     { return false, false }

// EIP150 wraps Homestead. It changes the VM's gas-forwarding rule (the
// "63/64ths" subcall stipend), which is outside the orchestrator's three
// predicates, so it owns none of them and delegates all three to Homestead.
type EIP150 struct {
	Fallback EraConfig
}

// NewEIP150 returns the EIP-150 era delegating to Homestead.
func NewEIP150() EIP150 { return EIP150{Fallback: NewHomestead()} }

func (e EIP150) fallback() EraConfig { return e.Fallback }
func (EIP150) ownIncrementNonceOnCreate() (value, owns bool)      { return false, false }
func (EIP150) ownFailOnInsufficientDeployGas() (value, owns bool) { return false, false }
func (EIP150) ownLimitContractCodeSize() (limited, owns bool)     { return false, false }

// EIP158 wraps EIP150, adding the EIP-161 nonce-on-create bump and the
// EIP-170 code-size limit.
type EIP158 struct {
	Fallback EraConfig
}

// NewEIP158 returns the EIP-158 era delegating to EIP150.
func NewEIP158() EIP158 { return EIP158{Fallback: NewEIP150()} }

func (e EIP158) fallback() EraConfig { return e.Fallback }
func (EIP158) ownIncrementNonceOnCreate() (value, owns bool)      { return true, true }
func (EIP158) ownFailOnInsufficientDeployGas() (value, owns bool) { return false, false }
func (EIP158) ownLimitContractCodeSize() (limited, owns bool)     { return true, true }
