package gpu

import (
	"context"
	"testing"

	"github.com/openfluke/boltz/nn"
)

// TestStageSamples verifies padded flattening preserves sample order and
// records offsets
func TestStageSamples(t *testing.T) {
	a := nn.MatrixFromSlice([]float32{1, 2, 3, 4}, 2, 2) // pads to 4x4
	b := nn.MatrixFromSlice([]float32{5, 6}, 1, 2)       // pads to 4x4
	data, offsets, err := stageSamples(context.Background(), 4, []nn.Matrix{a, b})
	if err != nil {
		t.Fatalf("stageSamples: %v", err)
	}

	if len(offsets) != 3 || offsets[0] != 0 || offsets[1] != 16 || offsets[2] != 32 {
		t.Fatalf("offsets = %v, want [0 16 32]", offsets)
	}
	if len(data) != 32 {
		t.Fatalf("staged length = %d, want 32", len(data))
	}

	// First padded sample: row stride 4, values at the top-left 2x2.
	if data[0] != 1 || data[1] != 2 || data[4] != 3 || data[5] != 4 {
		t.Errorf("sample 0 misplaced: %v", data[:8])
	}
	if data[2] != 0 || data[3] != 0 {
		t.Errorf("sample 0 padding not zero: %v", data[:8])
	}
	// Second sample starts at its offset.
	if data[16] != 5 || data[17] != 6 {
		t.Errorf("sample 1 misplaced: %v", data[16:20])
	}
}

// TestStageSamplesEmpty verifies an empty batch stages to an empty buffer
func TestStageSamplesEmpty(t *testing.T) {
	data, offsets, err := stageSamples(context.Background(), 8, nil)
	if err != nil {
		t.Fatalf("stageSamples: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("staged %d elements from empty batch", len(data))
	}
	if len(offsets) != 1 || offsets[0] != 0 {
		t.Errorf("offsets = %v, want [0]", offsets)
	}
}

// TestStageSamplesCancelled verifies a cancelled context aborts staging
func TestStageSamplesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	samples := make([]nn.Matrix, 64)
	for i := range samples {
		samples[i] = nn.NewMatrix(8, 8)
	}
	if _, _, err := stageSamples(ctx, 8, samples); err == nil {
		t.Error("expected an error from a cancelled context")
	}
}
