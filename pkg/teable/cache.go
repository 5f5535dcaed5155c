package teable

import "sync"

// ResourceCache stores previously fetched or mutated resources, keyed by a
// caller-chosen type tag plus resource ID. Entries never expire on their own;
// callers invalidate whenever they know the underlying resource changed,
// typically by deleting the key after every successful PATCH or DELETE.
//
// The zero value is not usable; create instances with NewResourceCache. All
// methods are safe for concurrent use.
type ResourceCache[T any] struct {
	mu      sync.Mutex
	entries map[string]map[string]T
}

// NewResourceCache creates an empty resource cache.
func NewResourceCache[T any]() *ResourceCache[T] {
	return &ResourceCache[T]{
		entries: make(map[string]map[string]T),
	}
}

// Register creates an empty namespace for a resource type. Registering an
// existing type is a no-op.
func (c *ResourceCache[T]) Register(resourceType string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[resourceType]; !ok {
		c.entries[resourceType] = make(map[string]T)
	}
}

// Get returns the cached resource for the given type and ID. A miss is a
// normal outcome reported through the second return value.
func (c *ResourceCache[T]) Get(resourceType, resourceID string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	value, ok := c.entries[resourceType][resourceID]

	return value, ok
}

// Set upserts a resource, creating the namespace if it does not exist yet.
func (c *ResourceCache[T]) Set(resourceType, resourceID string, resource T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[resourceType]; !ok {
		c.entries[resourceType] = make(map[string]T)
	}

	c.entries[resourceType][resourceID] = resource
}

// Delete removes a resource from the cache. Deleting an absent entry is a
// no-op.
func (c *ResourceCache[T]) Delete(resourceType, resourceID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if namespace, ok := c.entries[resourceType]; ok {
		delete(namespace, resourceID)
	}
}

// ClearType empties one namespace, leaving others intact.
func (c *ResourceCache[T]) ClearType(resourceType string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[resourceType]; ok {
		c.entries[resourceType] = make(map[string]T)
	}
}

// ClearAll empties every namespace.
func (c *ResourceCache[T]) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]map[string]T)
}

// GetAll returns all cached resources of a type, in no particular order.
func (c *ResourceCache[T]) GetAll(resourceType string) []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	namespace := c.entries[resourceType]
	values := make([]T, 0, len(namespace))

	for _, value := range namespace {
		values = append(values, value)
	}

	return values
}

// GetMany returns cached resources for each ID, preserving input order. The
// parallel bool slice marks which positions were hits.
func (c *ResourceCache[T]) GetMany(resourceType string, resourceIDs []string) ([]T, []bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	namespace := c.entries[resourceType]
	values := make([]T, len(resourceIDs))
	found := make([]bool, len(resourceIDs))

	for i, id := range resourceIDs {
		values[i], found[i] = namespace[id]
	}

	return values, found
}

// SetMany upserts multiple resources, creating the namespace if needed.
func (c *ResourceCache[T]) SetMany(resourceType string, resources map[string]T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[resourceType]; !ok {
		c.entries[resourceType] = make(map[string]T)
	}

	for id, resource := range resources {
		c.entries[resourceType][id] = resource
	}
}

// DeleteMany removes multiple resources from a namespace.
func (c *ResourceCache[T]) DeleteMany(resourceType string, resourceIDs []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if namespace, ok := c.entries[resourceType]; ok {
		for _, id := range resourceIDs {
			delete(namespace, id)
		}
	}
}

// HasType reports whether a namespace exists.
func (c *ResourceCache[T]) HasType(resourceType string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[resourceType]

	return ok
}

// Has reports whether a specific resource is cached.
func (c *ResourceCache[T]) Has(resourceType, resourceID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[resourceType][resourceID]

	return ok
}
