package gpu

// Disposable is a device-side handle that can be destroyed. wgpu buffers and
// the wrappers in this package all satisfy it.
type Disposable interface {
	Destroy()
}

// ReleaseAll destroys every handle in every group, in order. Intended for
// teardown after training: collect the buffers of each layer into a group
// and release them all in one call. Release is infallible by contract, so
// there is no error path; a panicking Destroy aborts teardown, which is the
// intended fatal behavior.
func ReleaseAll(groups ...[]Disposable) {
	for _, group := range groups {
		for _, d := range group {
			if d != nil {
				d.Destroy()
			}
		}
	}
}
