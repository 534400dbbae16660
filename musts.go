package bignum

import "fmt"

// MustAdd is like [Number.Add] but panics if computing error.
func (n Number) MustAdd(e Number) Number {
	f, err := n.Add(e)
	if err != nil {
		panic(fmt.Sprintf("MustAdd(%v) failed: %v", e, err))
	}
	return f
}

// MustSub is like [Number.Sub] but panics if computing error.
func (n Number) MustSub(e Number) Number {
	f, err := n.Sub(e)
	if err != nil {
		panic(fmt.Sprintf("MustSub(%v) failed: %v", e, err))
	}
	return f
}

// MustMul is like [Number.Mul] but panics if computing error.
func (n Number) MustMul(e Number) Number {
	f, err := n.Mul(e)
	if err != nil {
		panic(fmt.Sprintf("MustMul(%v) failed: %v", e, err))
	}
	return f
}

// MustQuo is like [Number.Quo] but panics if computing error.
func (n Number) MustQuo(e Number) Number {
	f, err := n.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return f
}
