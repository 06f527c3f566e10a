package nn

import "testing"

// TestScale verifies scalar multiplication of vectors and matrices
func TestScale(t *testing.T) {
	v := ScaleVector(2, []float32{1, -2, 0.5})
	want := []float32{2, -4, 1}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("ScaleVector[%d] = %v, want %v", i, v[i], want[i])
		}
	}

	m := ScaleMatrix(3, MatrixFromSlice([]float32{1, 2, 3, 4}, 2, 2))
	if m.At(0, 0) != 3 || m.At(1, 1) != 12 {
		t.Errorf("ScaleMatrix values wrong: %v", m.Data)
	}
}

// TestIdentity verifies ones on the diagonal and zeros elsewhere
func TestIdentity(t *testing.T) {
	id := Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := float32(0)
			if i == j {
				want = 1
			}
			if id.At(i, j) != want {
				t.Errorf("Identity(3)[%d][%d] = %v, want %v", i, j, id.At(i, j), want)
			}
		}
	}
}

// TestColumnExtraction verifies Column and Columns agree with the layout
func TestColumnExtraction(t *testing.T) {
	m := MatrixFromSlice([]float32{
		1, 2, 3,
		4, 5, 6,
	}, 2, 3)

	col := Column(1, m)
	if len(col) != 2 || col[0] != 2 || col[1] != 5 {
		t.Errorf("Column(1) = %v, want [2 5]", col)
	}

	cols := Columns(m)
	if len(cols) != 3 {
		t.Fatalf("Columns count = %d, want 3", len(cols))
	}
	if cols[2][0] != 3 || cols[2][1] != 6 {
		t.Errorf("Columns[2] = %v, want [3 6]", cols[2])
	}
}

// TestRows verifies per-row slices are copies, not aliases
func TestRows(t *testing.T) {
	m := MatrixFromSlice([]float32{1, 2, 3, 4}, 2, 2)
	rows := Rows(m)
	if len(rows) != 2 || rows[1][0] != 3 || rows[1][1] != 4 {
		t.Fatalf("Rows = %v, want [[1 2] [3 4]]", rows)
	}
	rows[0][0] = 99
	if m.At(0, 0) != 1 {
		t.Error("mutating a returned row changed the source matrix")
	}
}
