package locking

// RefCount tracks ownership of a released-once resource (rows, tables).
// The owner starts with one reference; dropping the last one frees the
// resource, and any drop past zero is reported instead of freeing twice.

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var ErrReleased = errors.New("lock: resource already released")

type RefCount struct {
	count int32
}

func NewRefCount() *RefCount {
	return &RefCount{count: 1}
}

// Retain adds a reference. It fails once the count has reached zero,
// a released resource cannot be revived.
func (r *RefCount) Retain() error {
	for {
		cur := atomic.LoadInt32(&r.count)
		if cur <= 0 {
			return ErrReleased
		}
		if atomic.CompareAndSwapInt32(&r.count, cur, cur+1) {
			return nil
		}
	}
}

// Release drops one reference and reports whether it was the last one.
func (r *RefCount) Release() (bool, error) {
	for {
		cur := atomic.LoadInt32(&r.count)
		if cur <= 0 {
			return false, ErrReleased
		}
		if atomic.CompareAndSwapInt32(&r.count, cur, cur-1) {
			return cur == 1, nil
		}
	}
}

func (r *RefCount) Live() bool {
	return r.Get() > 0
}

func (r *RefCount) Get() int32 {
	return atomic.LoadInt32(&r.count)
}

func (r *RefCount) String() string {
	return fmt.Sprintf("RefCount: %d", r.Get())
}
