package gpu

import (
	"fmt"
	"time"

	"github.com/openfluke/webgpu/wgpu"

	"github.com/openfluke/boltz/nn"
)

// storageUsage is the usage for buffers the dispatch layer reads and writes.
const storageUsage = wgpu.BufferUsageStorage | wgpu.BufferUsageCopySrc | wgpu.BufferUsageCopyDst

// NewFloatBuffer creates a device buffer initialized with data.
func NewFloatBuffer(data []float32, usage wgpu.BufferUsage) (*wgpu.Buffer, error) {
	c, err := GetContext()
	if err != nil {
		return nil, err
	}

	buf, err := c.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Contents: wgpu.ToBytes(data),
		Usage:    usage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create buffer: %v", err)
	}
	return buf, nil
}

// ReadBuffer copies size float32 elements out of buffer through a staging
// buffer. Gives up after two seconds if the device never completes the map.
func ReadBuffer(buffer *wgpu.Buffer, size int) ([]float32, error) {
	c, err := GetContext()
	if err != nil {
		return nil, err
	}

	sizeBytes := uint64(size * 4)
	stagingBuf, err := c.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "ReadStaging",
		Size:  sizeBytes,
		Usage: wgpu.BufferUsageMapRead | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create staging buffer: %v", err)
	}
	defer stagingBuf.Destroy()

	encoder, err := c.Device.CreateCommandEncoder(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create command encoder: %v", err)
	}
	encoder.CopyBufferToBuffer(buffer, 0, stagingBuf, 0, sizeBytes)
	cmd, err := encoder.Finish(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to finish command: %v", err)
	}
	c.Queue.Submit(cmd)

	done := make(chan struct{})
	var mapErr error
	err = stagingBuf.MapAsync(wgpu.MapModeRead, 0, sizeBytes, func(status wgpu.BufferMapAsyncStatus) {
		if status != wgpu.BufferMapAsyncStatusSuccess {
			mapErr = fmt.Errorf("map failed: %v", status)
		}
		close(done)
	})
	if err != nil {
		return nil, fmt.Errorf("MapAsync failed: %v", err)
	}

	timeout := time.After(2 * time.Second)
Loop:
	for {
		c.Device.Poll(false, nil)
		select {
		case <-done:
			break Loop
		case <-timeout:
			return nil, fmt.Errorf("ReadBuffer timed out after 2s")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	if mapErr != nil {
		return nil, mapErr
	}

	data := stagingBuf.GetMappedRange(0, uint(sizeBytes))
	if data == nil {
		return nil, fmt.Errorf("failed to get mapped range")
	}

	result := make([]float32, size)
	copy(result, wgpu.FromBytes[float32](data))
	stagingBuf.Unmap()

	return result, nil
}

// DeviceMatrix is a tile-aligned matrix resident on the device, remembering
// its pre-padding shape so results can be cropped back after readback.
type DeviceMatrix struct {
	Buffer     *wgpu.Buffer
	Rows       int
	Cols       int
	PaddedRows int
	PaddedCols int
}

// UploadMatrix pads m to the backend's tile granularity, flattens it and
// uploads it as a storage buffer.
func UploadMatrix(tile int, m nn.Matrix) (*DeviceMatrix, error) {
	padded := nn.PadMatrix(tile, m)
	buf, err := NewFloatBuffer(padded.Data, storageUsage)
	if err != nil {
		return nil, err
	}
	return &DeviceMatrix{
		Buffer:     buf,
		Rows:       m.Rows,
		Cols:       m.Cols,
		PaddedRows: padded.Rows,
		PaddedCols: padded.Cols,
	}, nil
}

// Download reads the buffer back and rebuilds the matrix at its original
// shape, dropping the alignment padding.
func (d *DeviceMatrix) Download() (nn.Matrix, error) {
	data, err := ReadBuffer(d.Buffer, d.PaddedRows*d.PaddedCols)
	if err != nil {
		return nn.Matrix{}, err
	}
	return nn.RebuildMatrix(d.PaddedCols, d.Rows, d.Cols, data), nil
}

// Destroy releases the device buffer. Safe to call more than once.
func (d *DeviceMatrix) Destroy() {
	if d.Buffer != nil {
		d.Buffer.Destroy()
		d.Buffer = nil
	}
}

// UploadVector pads v to the tile granularity and uploads it. The returned
// length is the padded element count, for sizing the readback.
func UploadVector(tile int, v []float32) (*wgpu.Buffer, int, error) {
	padded := nn.PadVector(tile, v)
	buf, err := NewFloatBuffer(padded, storageUsage)
	if err != nil {
		return nil, 0, err
	}
	return buf, len(padded), nil
}
