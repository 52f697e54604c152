package scoreboard

import (
	"errors"
	"time"
)

var errUnavailable = errors.New("storage unavailable")

// fakeKV is an in-memory slot that can be told to fail.
type fakeKV struct {
	data    map[string]string
	failSet bool
	failGet bool
	sets    int
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(key string) (string, bool, error) {
	if f.failGet {
		return "", false, errUnavailable
	}
	v, ok := f.data[key]
	return v, ok, nil
}

func (f *fakeKV) Set(key, value string) error {
	if f.failSet {
		return errUnavailable
	}
	f.sets++
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(key string) error {
	delete(f.data, key)
	return nil
}

// fixedClock pins the adapter's timestamps.
func fixedClock(a *Adapter, t time.Time) {
	a.now = func() time.Time { return t }
}
