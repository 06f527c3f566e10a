package nn

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ToDense converts m to a gonum dense matrix, promoting each element to
// float64. Row-major layout is preserved.
func ToDense(m Matrix) *mat.Dense {
	data := make([]float64, len(m.Data))
	for i, v := range m.Data {
		data[i] = float64(v)
	}
	return mat.NewDense(m.Rows, m.Cols, data)
}

// FromDense converts a gonum dense matrix back to a Matrix, truncating each
// element to float32.
func FromDense(d *mat.Dense) Matrix {
	r, c := d.Dims()
	out := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.Data[i*c+j] = float32(d.At(i, j))
		}
	}
	return out
}

// GaussianMatrix fills a rows×cols matrix with draws from dist, typically a
// distuv.Normal for RBM weight initialization. Reproducibility follows the
// sampler: seed its source to get the same matrix twice.
func GaussianMatrix(rows, cols int, dist distuv.Rander) Matrix {
	out := NewMatrix(rows, cols)
	for i := range out.Data {
		out.Data[i] = float32(dist.Rand())
	}
	return out
}
