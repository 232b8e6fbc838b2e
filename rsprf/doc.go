// Package rsprf implements a key-homomorphic pseudorandom function
// based on Learning With Rounding, evaluated with ring switching.
//
// For an input x = x_1 ... x_k, public matrices A_0, A_1 over R_q = Z_q[X]/(X^N + 1)
// and a secret key S over R_q,
//
//	F_S(x) = Switch(round_p(A_{x_1} * A_{x_2} * ... * A_{x_k} * S)),
//
// where round_p maps R_q to R_p = Z_p[X]/(X^N + 1),
// and Switch folds R_p into the output ring Z_p[X]/(X^N' + 1).
package rsprf
