package service

import (
	"fmt"
	"sort"
	"sync"

	"github.com/noah-isme/sma-dashboard-api/internal/dto"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
)

// Catalog indexes the registered resources by slug.
type Catalog struct {
	mu        sync.RWMutex
	resources map[string]Resource
}

// NewCatalog builds an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{resources: make(map[string]Resource)}
}

// Register adds a resource. Registering the same slug twice is an error.
func (c *Catalog) Register(resource Resource) error {
	slug := resource.Descriptor().Slug
	if slug == "" {
		return fmt.Errorf("register resource: empty slug")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.resources[slug]; exists {
		return fmt.Errorf("register resource: %s already registered", slug)
	}
	c.resources[slug] = resource
	return nil
}

// Resolve returns the resource registered under slug.
func (c *Catalog) Resolve(slug string) (Resource, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	resource, ok := c.resources[slug]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown resource %q", slug))
	}
	return resource, nil
}

// Descriptors lists every registered resource sorted by slug.
func (c *Catalog) Descriptors() []dto.ResourceDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]dto.ResourceDescriptor, 0, len(c.resources))
	for _, resource := range c.resources {
		out = append(out, resource.Descriptor())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out
}

// Slugs lists the registered slugs, sorted.
func (c *Catalog) Slugs() []string {
	descriptors := c.Descriptors()
	slugs := make([]string, len(descriptors))
	for i, desc := range descriptors {
		slugs[i] = desc.Slug
	}
	return slugs
}
