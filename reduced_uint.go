package strength

// TryReduceUint is like ReduceUint, but returns ErrZeroDivisor instead of
// panicking.
func TryReduceUint(divisor uint) (ReducedUint, error) {
	if divisor == 0 {
		return ReducedUint{}, ErrZeroDivisor
	}
	return ReduceUint(divisor), nil
}

func (r ReducedUint) Rem(n uint) uint {
	return n - r.Div(n)*r.divisor
}

func (r ReducedUint) DivRem(n uint) (q, rem uint) {
	q = r.Div(n)
	return q, n - q*r.divisor
}

func (r ReducedUint) Get() uint { return r.divisor }
