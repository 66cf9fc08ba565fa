package safe

import (
	"errors"
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"
)

var ErrInvalidMat = errors.New("mat is invalid")

// Mat owns a gocv.Mat and guards it against use after Close.
type Mat struct {
	mat     gocv.Mat
	isValid int32
	mu      sync.RWMutex
	id      uint64
	tag     string
}

var nextMatID uint64

// Wrap takes ownership of mat. The caller must not close it afterwards.
func Wrap(mat gocv.Mat, tag string) (*Mat, error) {
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("wrap %s: source Mat is empty", tag)
	}

	safeMat := &Mat{
		mat:     mat,
		isValid: 1,
		id:      atomic.AddUint64(&nextMatID, 1),
		tag:     tag,
	}

	// Set finalizer for cleanup if Close() is not called
	runtime.SetFinalizer(safeMat, (*Mat).finalize)

	return safeMat, nil
}

func NewMat(rows, cols int, matType gocv.MatType, tag string) (*Mat, error) {
	if err := ValidateDimensions(cols, rows, "NewMat"); err != nil {
		return nil, err
	}

	return Wrap(gocv.NewMatWithSize(rows, cols, matType), tag)
}

// NewMatFromMat clones srcMat; the caller keeps ownership of srcMat.
func NewMatFromMat(srcMat gocv.Mat, tag string) (*Mat, error) {
	if srcMat.Empty() {
		return nil, fmt.Errorf("source Mat is empty")
	}

	return Wrap(srcMat.Clone(), tag)
}

func (sm *Mat) IsValid() bool {
	return atomic.LoadInt32(&sm.isValid) == 1
}

func (sm *Mat) Empty() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return true
	}

	return sm.mat.Empty()
}

func (sm *Mat) Rows() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return 0
	}

	return sm.mat.Rows()
}

func (sm *Mat) Cols() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return 0
	}

	return sm.mat.Cols()
}

func (sm *Mat) Channels() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return 0
	}

	return sm.mat.Channels()
}

// Bounds is the pixel rectangle of the image, origin at the top-left.
func (sm *Mat) Bounds() image.Rectangle {
	return image.Rect(0, 0, sm.Cols(), sm.Rows())
}

func (sm *Mat) Tag() string {
	return sm.tag
}

func (sm *Mat) ID() uint64 {
	return sm.id
}

func (sm *Mat) Clone() (*Mat, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return nil, fmt.Errorf("clone %s: %w", sm.tag, ErrInvalidMat)
	}

	return NewMatFromMat(sm.mat, sm.tag+"_clone")
}

// Region copies the pixels inside rect into a new Mat. The result does not
// share memory with sm.
func (sm *Mat) Region(rect image.Rectangle, tag string) (*Mat, error) {
	if err := ValidateRegion(sm, rect, "Region"); err != nil {
		return nil, err
	}

	sm.mu.RLock()
	defer sm.mu.RUnlock()

	view := sm.mat.Region(rect)
	defer view.Close()

	return NewMatFromMat(view, tag)
}

// With runs fn against the wrapped Mat under the write lock.
func (sm *Mat) With(fn func(m *gocv.Mat) error) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.IsValid() {
		return fmt.Errorf("%s: %w", sm.tag, ErrInvalidMat)
	}

	return fn(&sm.mat)
}

func (sm *Mat) GetMat() gocv.Mat {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	return sm.mat
}

func (sm *Mat) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if atomic.CompareAndSwapInt32(&sm.isValid, 1, 0) {
		sm.mat.Close()

		// Clear finalizer since we're cleaning up manually
		runtime.SetFinalizer(sm, nil)
	}
}

// finalize is called by Go's garbage collector as last resort cleanup
func (sm *Mat) finalize() {
	if atomic.LoadInt32(&sm.isValid) == 1 {
		sm.Close()
	}
}
