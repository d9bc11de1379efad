package values

const (
	// MinStackQuantity is the smallest output stack a recipe may produce.
	MinStackQuantity = 1
	// MaxStackQuantity is the largest output stack a recipe may produce.
	MaxStackQuantity = 64
)

// ClampQuantity forces n into [MinStackQuantity, MaxStackQuantity].
func ClampQuantity(n int) int {
	if n < MinStackQuantity {
		return MinStackQuantity
	}
	if n > MaxStackQuantity {
		return MaxStackQuantity
	}
	return n
}

// ClampInt forces n into [lo, hi].
func ClampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
