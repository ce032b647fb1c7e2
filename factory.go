package filelike

import (
	"fmt"
	"sort"
	"sync"
)

// DriverFactory opens the stream called name with the given os.OpenFile
// style flag. Drivers are free to ignore flags that make no sense for them.
type DriverFactory func(cfg *Config, name string, flag int) (FileLike, error)

var (
	driverFactories = make(map[string]DriverFactory)
	factoryMutex    sync.RWMutex
)

// RegisterDriver registers a driver factory function
func RegisterDriver(name string, factory DriverFactory) {
	factoryMutex.Lock()
	defer factoryMutex.Unlock()
	driverFactories[name] = factory
}

// Drivers returns the names of all registered drivers, sorted
func Drivers() []string {
	factoryMutex.RLock()
	defer factoryMutex.RUnlock()

	names := make([]string, 0, len(driverFactories))
	for name := range driverFactories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Open opens a stream through the driver named by cfg.Driver
func Open(cfg *Config, name string, flag int) (FileLike, error) {
	factoryMutex.RLock()
	factory, exists := driverFactories[cfg.Driver]
	factoryMutex.RUnlock()

	if !exists {
		return nil, fmt.Errorf("driver %s not registered", cfg.Driver)
	}

	return factory(cfg, name, flag)
}
