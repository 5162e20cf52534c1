// Package formula holds the pure domain formulas behind every calculator.
//
// Functions are total over their numeric inputs: missing or zero required
// inputs produce the zero value of the result type instead of NaN or
// Infinity. Inputs that are invalid for the domain (a degenerate triangle, a
// malformed Roman numeral) are reported with the sentinel errors below so
// callers can reject them before anything is displayed.
package formula
