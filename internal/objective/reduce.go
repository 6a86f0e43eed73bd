package objective

import (
	"fmt"
	"math/big"

	"github.com/vmcwm/vmcwm/internal/vmerr"
)

// maxSafeWeight bounds a reduced integer weight so that summing every
// term of a realistically-sized objective cannot silently overflow an
// int64 accumulator; crossing it is treated as EncodingOverflow rather
// than wrapped.
const maxSafeWeight = int64(1) << 40

// Reduce multiplies every term's rational weight through by the least
// common multiple of their denominators, producing an equivalent
// integer-weight objective (spec.md §4.3 reduce()). Returns
// vmerr.ErrEncodingOverflow if any reduced weight would exceed the safe
// range.
func (o Objective) Reduce() ([]IntTerm, error) {
	if len(o.Terms) == 0 {
		return nil, nil
	}

	lcm := big.NewInt(1)
	for _, t := range o.Terms {
		d := t.Weight.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Div(d, g))
	}

	out := make([]IntTerm, len(o.Terms))
	for i, t := range o.Terms {
		scaled := new(big.Rat).Mul(t.Weight, new(big.Rat).SetInt(lcm))
		if !scaled.IsInt() {
			return nil, fmt.Errorf("%w: objective %q term %d did not reduce to an integer", vmerr.ErrEncodingOverflow, o.Name, i)
		}
		w := scaled.Num()
		if w.CmpAbs(big.NewInt(maxSafeWeight)) > 0 {
			return nil, fmt.Errorf("%w: objective %q term %d weight %s exceeds safe range", vmerr.ErrEncodingOverflow, o.Name, i, w.String())
		}
		out[i] = IntTerm{Lit: t.Lit, Weight: w.Int64()}
	}
	return out, nil
}
