// Package gpu hands tile-aligned matrices from the nn package to a WebGPU
// device and back, and releases device handles at teardown. Kernel pipelines
// live with the training orchestrator, not here.
package gpu

import (
	"fmt"
	"sync"

	"github.com/openfluke/webgpu/wgpu"
)

// Context holds the shared WebGPU handles for the process.
type Context struct {
	Instance *wgpu.Instance
	Adapter  *wgpu.Adapter
	Device   *wgpu.Device
	Queue    *wgpu.Queue
}

var (
	ctx     Context
	ctxOnce sync.Once
)

// GetContext returns the singleton GPU context, initializing it on first use.
// A high-performance adapter is preferred, falling back to whatever the
// instance offers.
func GetContext() (*Context, error) {
	var initErr error
	ctxOnce.Do(func() {
		ctx.Instance = wgpu.CreateInstance(nil)
		if ctx.Instance == nil {
			initErr = fmt.Errorf("failed to create WebGPU instance")
			return
		}

		var err error
		ctx.Adapter, err = ctx.Instance.RequestAdapter(&wgpu.RequestAdapterOptions{
			PowerPreference: wgpu.PowerPreferenceHighPerformance,
		})
		if err != nil || ctx.Adapter == nil {
			ctx.Adapter, err = ctx.Instance.RequestAdapter(nil)
		}
		if ctx.Adapter == nil {
			initErr = fmt.Errorf("no usable adapter: %v", err)
			return
		}

		info := ctx.Adapter.GetInfo()
		fmt.Printf("Using GPU adapter: %s (Vendor: %s)\n", info.Name, info.VendorName)

		ctx.Device, err = ctx.Adapter.RequestDevice(nil)
		if err != nil {
			initErr = err
			return
		}
		ctx.Queue = ctx.Device.GetQueue()
	})

	if initErr != nil {
		return nil, initErr
	}
	if ctx.Device == nil || ctx.Queue == nil {
		return nil, fmt.Errorf("WebGPU device or queue not initialized")
	}
	return &ctx, nil
}

// EnsureGPU initializes the GPU context if it is not already up.
func EnsureGPU() error {
	_, err := GetContext()
	return err
}
