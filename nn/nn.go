// Package nn is the numeric substrate for training restricted Boltzmann
// machines and deep belief networks on a WebGPU compute backend.
//
// It provides:
//   - Per-lane deterministic random streams (DeriveLaneState) so GPU threads
//     can generate independent values with no cross-lane synchronization
//   - Shape alignment (PadMatrix, CropMatrix, ...) to satisfy the backend's
//     tile-size launch constraints and undo them after readback
//   - Differentiable activations (SigmoidActivation) pairing a forward map
//     with the derivative computed from the forward map's own output
//   - Shuffling and mini-batching (Permutation, BatchesOf) for stochastic
//     training
//
// Example usage:
//
//	padded := nn.PadMatrix(16, weights)
//	// ... dispatch padded.Data to the device, read back result ...
//	visible := nn.CropMatrix(weights.Rows, weights.Cols, result)
//
//	act := nn.SigmoidActivation.ApplyForward(preAct)
//	grad := nn.SigmoidActivation.ApplyDerivative(act)
//
// Everything here is pure: operations allocate fresh results and never mutate
// their inputs, so concurrent callers need no locking.
package nn

// Matrix is a rectangular block of float32 values in row-major order.
type Matrix struct {
	Rows int
	Cols int
	Data []float32
}

// NewMatrix creates a zero-filled rows×cols matrix.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: make([]float32, rows*cols)}
}

// MatrixFromSlice wraps data as a rows×cols matrix. The slice is used
// directly, not copied, and must have exactly rows*cols elements.
func MatrixFromSlice(data []float32, rows, cols int) Matrix {
	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// At returns the value at row i, column j.
func (m Matrix) At(i, j int) float32 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m Matrix) Set(i, j int, v float32) {
	m.Data[i*m.Cols+j] = v
}

// Clone returns a copy of m with its own backing slice.
func (m Matrix) Clone() Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	copy(out.Data, m.Data)
	return out
}

// Equal reports whether a and b have the same shape and identical values.
func Equal(a, b Matrix) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return false
	}
	for i := range a.Data {
		if a.Data[i] != b.Data[i] {
			return false
		}
	}
	return true
}
