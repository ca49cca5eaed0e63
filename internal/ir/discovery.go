package ir

import (
	"context"
	"fmt"
)

// Source is one SDL input. Name appears in diagnostic positions.
type Source struct {
	Name    string
	Content string
}

// Discovery lists the SDL sources of one compilation in a stable order.
type Discovery interface {
	ListSources(ctx context.Context) ([]Source, error)
}

// InMemoryDiscovery serves sources held in memory, in the order given.
type InMemoryDiscovery struct {
	sources []Source
}

func NewInMemoryDiscovery(sources ...Source) *InMemoryDiscovery {
	return &InMemoryDiscovery{sources: sources}
}

func (d *InMemoryDiscovery) ListSources(ctx context.Context) ([]Source, error) {
	if len(d.sources) == 0 {
		return nil, fmt.Errorf("no schema sources")
	}
	return append([]Source(nil), d.sources...), nil
}
