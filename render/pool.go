package render

import (
	"sync"

	"gocv.io/x/gocv"
)

// Pool is a fixed size pool of equally sized 3 channel Mats, so multiple
// frames can be rendered in parallel without allocating a new canvas for
// each one
type Pool struct {
	// pool of mats
	mats chan *gocv.Mat
	// size of pool
	size  int
	close sync.Once
}

// NewPool creates a new pool of size Mats with the given dimensions
func NewPool(size, width, height int) *Pool {
	p := &Pool{
		mats: make(chan *gocv.Mat, size),
		size: size,
	}

	for i := 0; i < size; i++ {
		mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
		p.Return(&mat)
	}

	return p
}

// Size returns the number of Mats the pool was created with
func (p *Pool) Size() int {
	return p.size
}

// Get a Mat from the pool, blocking until one is available.  The Mat content
// is whatever was last drawn on it.
func (p *Pool) Get() *gocv.Mat {
	return <-p.mats
}

// Return a Mat to the pool.  It must not be called after Close.
func (p *Pool) Return(mat *gocv.Mat) {
	select {
	case p.mats <- mat:
	default:
		// pool is full, so the Mat did not come from this pool
		_ = mat.Close()
	}
}

// Close the pool and free all Mats in it.  Mats that are still checked out
// are left for the caller to close.
func (p *Pool) Close() {
	p.close.Do(func() {
		// close channel
		close(p.mats)

		// free all mats
		for next := range p.mats {
			_ = next.Close()
		}
	})
}
