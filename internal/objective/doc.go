// Package objective implements the Objective Manager (spec.md §4.3): each
// objective is a literal list with rational numerator weights, reduced to
// an equivalent integer-weight form by a common multiplier at the last
// possible moment (spec.md §9 "Rational weights"), with explicit overflow
// detection (never a silent wrap, per spec.md §7 EncodingOverflow).
//
// Division handling (merged vs split, for the wastage numerator/
// denominator pair) is implemented here per spec.md §4.3; how the
// Stratifier then orders the resulting terms into partitions is
// internal/stratify's concern.
package objective
