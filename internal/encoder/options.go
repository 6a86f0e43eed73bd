package encoder

// Options recognized by the PB Encoder, per spec.md §4.1.
type Options struct {
	// SymmetryBreaking emits lex-order constraints over PMs sharing
	// identical capacity/cost.
	SymmetryBreaking bool
	// IgnorePlatform drops allowed-PM restrictions.
	IgnorePlatform bool
	// IgnoreAntiColocation drops anti-colocation constraints.
	IgnoreAntiColocation bool
	// IgnoreDenominators treats wastage as pure numerator.
	IgnoreDenominators bool
	// HashFunctions permits the driver to extend the hard set with XOR
	// constraints after Encode returns.
	HashFunctions bool
}
