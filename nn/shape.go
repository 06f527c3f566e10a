package nn

// NextMultiple returns the smallest multiple of n that is >= i. A value that
// is already a multiple of n is returned unchanged.
func NextMultiple(n, i int) int {
	return (i + n - 1) / n * n
}

// PadMatrix rounds both dimensions of m up to the next multiple of n,
// zero-filling the new cells. Original values keep their coordinates. The
// compute backend requires tile-aligned shapes at dispatch; pair with
// CropMatrix after readback.
func PadMatrix(n int, m Matrix) Matrix {
	out := NewMatrix(NextMultiple(n, m.Rows), NextMultiple(n, m.Cols))
	for i := 0; i < m.Rows; i++ {
		copy(out.Data[i*out.Cols:i*out.Cols+m.Cols], m.Data[i*m.Cols:(i+1)*m.Cols])
	}
	return out
}

// PadVector rounds the length of v up to the next multiple of n with zero
// fill.
func PadVector(n int, v []float32) []float32 {
	out := make([]float32, NextMultiple(n, len(v)))
	copy(out, v)
	return out
}

// CropMatrix returns the top-left h×w submatrix of m. Bounds are the caller's
// responsibility: h and w must not exceed m's dimensions.
func CropMatrix(h, w int, m Matrix) Matrix {
	out := NewMatrix(h, w)
	for i := 0; i < h; i++ {
		copy(out.Data[i*w:(i+1)*w], m.Data[i*m.Cols:i*m.Cols+w])
	}
	return out
}

// CropVector returns the first size elements of v as a new slice. size must
// not exceed len(v).
func CropVector(size int, v []float32) []float32 {
	out := make([]float32, size)
	copy(out, v[:size])
	return out
}

// FlattenMatrix linearizes m in row-major order.
func FlattenMatrix(m Matrix) []float32 {
	out := make([]float32, m.Rows*m.Cols)
	copy(out, m.Data)
	return out
}

// FlattenBatch flattens every sample and concatenates the results in input
// order, producing one contiguous buffer for transfer to the device.
func FlattenBatch(samples []Matrix) []float32 {
	total := 0
	for _, m := range samples {
		total += m.Rows * m.Cols
	}
	out := make([]float32, 0, total)
	for _, m := range samples {
		out = append(out, m.Data...)
	}
	return out
}

// RebuildMatrix reconstructs an h×w matrix from a buffer that was flattened
// with row stride fullWidth, so cell (i,j) = x[i*fullWidth+j]. With
// fullWidth equal to w this inverts FlattenMatrix; a larger fullWidth crops
// a padded result back to its pre-dispatch shape in one step.
func RebuildMatrix(fullWidth, h, w int, x []float32) Matrix {
	out := NewMatrix(h, w)
	for i := 0; i < h; i++ {
		copy(out.Data[i*w:(i+1)*w], x[i*fullWidth:i*fullWidth+w])
	}
	return out
}

// Transpose returns the transpose of m.
func Transpose(m Matrix) Matrix {
	out := NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Data[j*out.Cols+i] = m.Data[i*m.Cols+j]
		}
	}
	return out
}
