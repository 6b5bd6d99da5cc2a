// chain_config_forks.go provides a structured fork schedule representation
// and fork transition detection, mirroring the fork-schedule idiom common
// to Ethereum execution clients but trimmed to the eras this module's
// Configuration Strategy (C3) actually covers.
package core

import (
	"fmt"
	"math/big"
)

// ForkID identifies a block-number fork by name and activation point.
type ForkID struct {
	Name  string
	Block *big.Int // nil means not yet scheduled
}

// String returns a human-readable representation of the fork.
func (f ForkID) String() string {
	if f.Block != nil {
		return fmt.Sprintf("%s@block:%s", f.Name, f.Block.String())
	}
	return fmt.Sprintf("%s@pending", f.Name)
}

// IsActive reports whether the fork is active at the given block number.
func (f ForkID) IsActive(num *big.Int) bool {
	return f.Block != nil && num != nil && f.Block.Cmp(num) <= 0
}

// ForkSchedule returns the ordered list of forks this chain config defines.
// Forks with a nil activation point are included but marked pending.
func (c *ChainConfig) ForkSchedule() []ForkID {
	return []ForkID{
		{Name: "Homestead", Block: c.HomesteadBlock},
		{Name: "EIP150", Block: c.EIP150Block},
		{Name: "EIP158", Block: c.EIP158Block},
	}
}

// ActiveForks returns the forks active at the given block number.
func (c *ChainConfig) ActiveForks(num *big.Int) []ForkID {
	var active []ForkID
	for _, f := range c.ForkSchedule() {
		if f.IsActive(num) {
			active = append(active, f)
		}
	}
	return active
}

// PendingForks returns forks with an activation point not yet reached at
// the given block number.
func (c *ChainConfig) PendingForks(num *big.Int) []ForkID {
	var pending []ForkID
	for _, f := range c.ForkSchedule() {
		if f.Block != nil && !f.IsActive(num) {
			pending = append(pending, f)
		}
	}
	return pending
}
