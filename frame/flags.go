package frame

// Flags is the packed bitfield carried in OuterHeader.Flags.
type Flags uint32

// HasMetricsMode reports whether metrics preprocessing was applied.
func (f Flags) HasMetricsMode() bool {
	return uint32(f)&FlagMetricsMode != 0
}

// HasCounter reports whether counter delta-encoding was applied. Only
// meaningful when HasMetricsMode is also true.
func (f Flags) HasCounter() bool {
	return uint32(f)&FlagCounter != 0
}

// WithMetricsMode sets or clears the metrics-mode bit.
func (f Flags) WithMetricsMode(enabled bool) Flags {
	if enabled {
		return f | Flags(FlagMetricsMode)
	}

	return f &^ Flags(FlagMetricsMode)
}

// WithCounter sets or clears the counter bit.
func (f Flags) WithCounter(enabled bool) Flags {
	if enabled {
		return f | Flags(FlagCounter)
	}

	return f &^ Flags(FlagCounter)
}

// RequiresV2 reports whether any bit that mandates the V2 header layout is
// set.
func (f Flags) RequiresV2() bool {
	return uint32(f)&flagMask != 0
}
