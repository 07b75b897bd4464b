// Package texture is the boundary to the GPU texture consumer. The core
// never touches a GPU API; it hands the composed raster across this
// interface together with a "needs update" signal, and the consumer
// re-uploads on its own schedule.
package texture

import "github.com/gostitch/uvpaint"

// Uploader is implemented by the external texture consumer. Upload receives
// the composed raster whenever it has changed since the last upload.
type Uploader interface {
	Upload(raster *uvpaint.Pixmap) error
}

// Bridge accumulates "needs update" signals and forwards the composed
// raster to the uploader when flushed, so a burst of layer changes settles
// into one re-upload.
type Bridge struct {
	uploader   Uploader
	needUpdate bool
}

// NewBridge wraps an uploader. A nil uploader is allowed; signals are then
// recorded but flushes do nothing, which keeps headless tests simple.
func NewBridge(up Uploader) *Bridge {
	return &Bridge{uploader: up}
}

// Signal marks the GPU texture as stale.
func (b *Bridge) Signal() {
	b.needUpdate = true
}

// NeedsUpdate reports whether a flush would upload.
func (b *Bridge) NeedsUpdate() bool {
	return b.needUpdate
}

// Flush uploads the raster if an update is pending. The pending flag clears
// only on a successful upload so a failed upload retries on the next flush.
func (b *Bridge) Flush(raster *uvpaint.Pixmap) error {
	if !b.needUpdate {
		return nil
	}
	if b.uploader == nil {
		return nil
	}
	if err := b.uploader.Upload(raster); err != nil {
		uvpaint.Logger().Warn("texture: upload failed, will retry", "err", err)
		return err
	}
	b.needUpdate = false
	return nil
}
