package util

// TimelockSatisfied reports whether an output's transaction level unlock time allows it to be
// spent in a block at height. Zero means no timelock. Values below threshold are block
// heights, anything at or above is a timestamp, which is never treated as satisfied because
// there is no agreed clock to test it against.
func TimelockSatisfied(unlockTime uint64, height uint64, threshold uint64) bool {
	if unlockTime == 0 {
		return true
	}

	if unlockTime < threshold {
		return unlockTime <= height
	}

	return false
}
