package cache

import (
	"sync"

	"github.com/netcracker/qubership-core-lib-go/v3/logging"
)

// DescriptorCache computes a value once per key and keeps it for the process lifetime
type DescriptorCache[K comparable, V any] struct {
	Mx     sync.RWMutex
	Values map[K]V
}

var logger logging.Logger

func init() {
	logger = logging.GetLogger("arangobase")
}

func NewDescriptorCache[K comparable, V any]() *DescriptorCache[K, V] {
	return &DescriptorCache[K, V]{Values: make(map[K]V)}
}

func (d *DescriptorCache[K, V]) Cache(key K, calc func() (V, error)) (V, error) {
	d.Mx.RLock()
	if val, ok := d.Values[key]; ok {
		defer d.Mx.RUnlock()
		return val, nil
	} else {
		d.Mx.RUnlock()
		d.Mx.Lock()
		defer d.Mx.Unlock()
		if val, ok = d.Values[key]; ok {
			return val, nil
		}
		val, err := calc()
		if err != nil {
			logger.Errorf("Error during descriptor calculation for %v: %s", key, err.Error())
			var zero V
			return zero, err
		}
		if d.Values == nil {
			d.Values = make(map[K]V)
		}
		logger.Debugf("Cached descriptor for %v", key)
		d.Values[key] = val
		return val, nil
	}
}

func (d *DescriptorCache[K, V]) Delete(key K) {
	d.Mx.Lock()
	defer d.Mx.Unlock()
	logger.Debugf("Delete descriptor for %v from cache", key)
	delete(d.Values, key)
}
