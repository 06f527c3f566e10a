package nn

// ScaleVector returns lambda * v as a new slice.
func ScaleVector(lambda float32, v []float32) []float32 {
	out := make([]float32, len(v))
	for i, x := range v {
		out[i] = lambda * x
	}
	return out
}

// ScaleMatrix returns lambda * m as a new matrix.
func ScaleMatrix(lambda float32, m Matrix) Matrix {
	out := NewMatrix(m.Rows, m.Cols)
	for i, x := range m.Data {
		out.Data[i] = lambda * x
	}
	return out
}

// Identity returns the n×n identity matrix.
func Identity(n int) Matrix {
	out := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		out.Data[i*n+i] = 1
	}
	return out
}

// Column extracts column j of m. j must be within bounds.
func Column(j int, m Matrix) []float32 {
	out := make([]float32, m.Rows)
	for i := 0; i < m.Rows; i++ {
		out[i] = m.Data[i*m.Cols+j]
	}
	return out
}

// Columns splits m into its columns.
func Columns(m Matrix) [][]float32 {
	out := make([][]float32, m.Cols)
	for j := 0; j < m.Cols; j++ {
		out[j] = Column(j, m)
	}
	return out
}

// Rows splits m into per-row slices, each with its own backing array.
func Rows(m Matrix) [][]float32 {
	out := make([][]float32, m.Rows)
	for i := 0; i < m.Rows; i++ {
		row := make([]float32, m.Cols)
		copy(row, m.Data[i*m.Cols:(i+1)*m.Cols])
		out[i] = row
	}
	return out
}
