package instio

import (
	"fmt"
	"math/big"
)

// parseRat parses a rational literal: a bare integer, a decimal, or a
// fraction ("n/d"). big.Rat.SetString already accepts all three forms.
func parseRat(field string) (*big.Rat, error) {
	r, ok := new(big.Rat).SetString(field)
	if !ok {
		return nil, fmt.Errorf("invalid rational literal %q", field)
	}
	return r, nil
}
