// Package poseidon implements the Poseidon permutation this protocol uses as
// its internal hash: round-constant addition, a power-map S-box, and
// Cauchy-matrix mixing, with round constants and the MDS matrix derived
// deterministically from an ASCII seed via Blake2b chaining (see params.go).
package poseidon

import "math/big"

// Permute runs the full Poseidon permutation over params and returns the
// first state lane after R_F+R_P rounds. inputs must be non-empty and
// shorter than params.T (the usable rate is T-1); the remaining lanes are
// zero-initialized.
func Permute(params *Parameters, inputs []*big.Int) (*big.Int, error) {
	if len(inputs) == 0 {
		return nil, ErrorPoseidonEmptyInput
	}
	if len(inputs) >= params.T {
		return nil, ErrorPoseidonInputsExceedRate
	}

	state := make([]*big.Int, params.T)
	for i := range state {
		state[i] = big.NewInt(0)
	}
	for i, v := range inputs {
		state[i] = new(big.Int).Set(v)
	}

	half := params.RF / 2
	totalRounds := params.RF + params.RP

	for round := 0; round < totalRounds; round++ {
		addRoundKey(state, params.C[round], params.P)

		fullRound := round < half || round >= half+params.RP
		applySBox(state, fullRound, params.E, params.P)

		state = mix(state, params.M, params.P)
	}

	return state[0], nil
}

// Hash runs the permutation with the caller-supplied parameter set; it is
// the same as Permute and does not build parameters from len(inputs).
// SignScalars and the EdDSA challenge hash call Permute directly.
func Hash(params *Parameters, inputs []*big.Int) (*big.Int, error) {
	return Permute(params, inputs)
}

func addRoundKey(state []*big.Int, c *big.Int, p *big.Int) {
	for j := range state {
		state[j] = new(big.Int).Mod(new(big.Int).Add(state[j], c), p)
	}
}

func applySBox(state []*big.Int, fullRound bool, e, p *big.Int) {
	if fullRound {
		for j := range state {
			state[j] = new(big.Int).Exp(state[j], e, p)
		}
		return
	}
	state[0] = new(big.Int).Exp(state[0], e, p)
}

func mix(state []*big.Int, m [][]*big.Int, p *big.Int) []*big.Int {
	t := len(state)
	next := make([]*big.Int, t)
	for row := 0; row < t; row++ {
		acc := big.NewInt(0)
		for col := 0; col < t; col++ {
			acc.Add(acc, new(big.Int).Mul(m[row][col], state[col]))
		}
		next[row] = new(big.Int).Mod(acc, p)
	}
	return next
}
