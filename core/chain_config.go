package core

import (
	"math/big"

	"github.com/ethyp/creation/params"
)

// ChainConfig holds the block-number fork schedule for the pre-merge eras
// this module's Configuration Strategy (C3) covers: Frontier (implicit,
// before HomesteadBlock), Homestead, EIP150, and EIP158. A nil block means
// that fork is not yet scheduled on this chain.
type ChainConfig struct {
	ChainID        *big.Int
	HomesteadBlock *big.Int
	EIP150Block    *big.Int
	EIP158Block    *big.Int
}

func isBlockForked(forkBlock, num *big.Int) bool {
	if forkBlock == nil || num == nil {
		return false
	}
	return forkBlock.Cmp(num) <= 0
}

// IsHomestead reports whether num is at or past the Homestead fork.
func (c *ChainConfig) IsHomestead(num *big.Int) bool { return isBlockForked(c.HomesteadBlock, num) }

// IsEIP150 reports whether num is at or past the EIP-150 fork.
func (c *ChainConfig) IsEIP150(num *big.Int) bool { return isBlockForked(c.EIP150Block, num) }

// IsEIP158 reports whether num is at or past the EIP-158 fork.
func (c *ChainConfig) IsEIP158(num *big.Int) bool { return isBlockForked(c.EIP158Block, num) }

// EraAt resolves the params.EraConfig variant active at block number num,
// bridging this chain's fork schedule to the Configuration Strategy the
// orchestrator consults. Eras nest in activation order, each wrapping its
// predecessor, exactly as params.EraConfig expects.
func (c *ChainConfig) EraAt(num *big.Int) params.EraConfig {
	switch {
	case c.IsEIP158(num):
		return params.NewEIP158()
	case c.IsEIP150(num):
		return params.NewEIP150()
	case c.IsHomestead(num):
		return params.NewHomestead()
	default:
		return params.Frontier{}
	}
}

// MainnetConfig is the chain config for Ethereum mainnet's pre-merge forks.
var MainnetConfig = &ChainConfig{
	ChainID:        big.NewInt(1),
	HomesteadBlock: big.NewInt(1150000),
	EIP150Block:    big.NewInt(2463000),
	EIP158Block:    big.NewInt(2675000),
}

// TestConfig has every fork active at genesis.
var TestConfig = &ChainConfig{
	ChainID:        big.NewInt(1337),
	HomesteadBlock: big.NewInt(0),
	EIP150Block:    big.NewInt(0),
	EIP158Block:    big.NewInt(0),
}

// FrontierOnlyConfig has no forks scheduled; every block runs under
// Frontier rules.
var FrontierOnlyConfig = &ChainConfig{
	ChainID: big.NewInt(1337),
}
