// Package rac implements a binary range coder with 12-bit probability
// granularity (the MANIAC range coder, L0) together with its adaptive
// bit-probability estimator and precomputed transition table (L1).
//
// Usage:
//
//	tbl := rac.NewTransitionTable(rac.DataChanceParams.Cut, rac.DataChanceParams.Alpha)
//	bc := rac.NewBitChance()
//	enc := rac.NewEncoder(f)
//	err := enc.WriteBitChance(&bc, tbl, bit)
package rac
