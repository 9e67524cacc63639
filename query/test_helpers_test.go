package query_test

import "gonum.org/v1/gonum/mat"

// matDense and vecDense shorten inline fixture systems.
func matDense(r, c int, vals ...float64) *mat.Dense {
	return mat.NewDense(r, c, vals)
}

func vecDense(vals ...float64) *mat.VecDense {
	return mat.NewVecDense(len(vals), vals)
}
