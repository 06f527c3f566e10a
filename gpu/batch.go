package gpu

import (
	"context"

	"github.com/openfluke/webgpu/wgpu"
	"golang.org/x/sync/errgroup"

	"github.com/openfluke/boltz/nn"
)

// DeviceBatch is one contiguous buffer holding a batch of padded, flattened
// training samples.
type DeviceBatch struct {
	Buffer *wgpu.Buffer
	// Offsets[i] is the element offset of sample i; a final entry holds the
	// total element count, so sample i spans Offsets[i]:Offsets[i+1].
	Offsets []int
}

// Len returns the total number of elements in the batch buffer.
func (b *DeviceBatch) Len() int {
	return b.Offsets[len(b.Offsets)-1]
}

// Destroy releases the batch buffer. Safe to call more than once.
func (b *DeviceBatch) Destroy() {
	if b.Buffer != nil {
		b.Buffer.Destroy()
		b.Buffer = nil
	}
}

// stageSamples pads and flattens every sample concurrently and concatenates
// the results in input order.
func stageSamples(ctx context.Context, tile int, samples []nn.Matrix) ([]float32, []int, error) {
	flat := make([][]float32, len(samples))
	g, gctx := errgroup.WithContext(ctx)
	for i := range samples {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			flat[i] = nn.FlattenMatrix(nn.PadMatrix(tile, samples[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	offsets := make([]int, len(samples)+1)
	total := 0
	for i, f := range flat {
		offsets[i] = total
		total += len(f)
	}
	offsets[len(samples)] = total

	data := make([]float32, 0, total)
	for _, f := range flat {
		data = append(data, f...)
	}
	return data, offsets, nil
}

// StageBatch pads each sample to the backend's tile granularity, flattens
// the batch into one contiguous buffer and uploads it. Sample order is
// preserved; per-sample element offsets come back on the DeviceBatch.
func StageBatch(ctx context.Context, tile int, samples []nn.Matrix) (*DeviceBatch, error) {
	data, offsets, err := stageSamples(ctx, tile, samples)
	if err != nil {
		return nil, err
	}
	buf, err := NewFloatBuffer(data, storageUsage)
	if err != nil {
		return nil, err
	}
	return &DeviceBatch{Buffer: buf, Offsets: offsets}, nil
}
