package chaincfg

import "time"

// TargetSpacingAt returns the desired block spacing at the given height.
// Blocks past LastPoWBlock are spaced by PoSTargetSpacing. Blocks past
// StartPoSBlock, up to and including LastPoWBlock, are mined and staked side
// by side and spaced by TwinPhaseTargetSpacing. Earlier blocks use
// TargetSpacing.
func (p *Params) TargetSpacingAt(height uint64) time.Duration {
	switch {
	case height > p.LastPoWBlock:
		return p.PoSTargetSpacing
	case height > p.StartPoSBlock:
		return p.TwinPhaseTargetSpacing
	default:
		return p.TargetSpacing
	}
}

// TargetTimespanAt returns the difficulty retarget timespan at the given
// height.
func (p *Params) TargetTimespanAt(height uint64) time.Duration {
	return time.Duration(p.TargetTimespanMultiplier) * p.TargetSpacingAt(height)
}
