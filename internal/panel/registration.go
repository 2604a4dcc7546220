package panel

import (
	"slices"

	"github.com/zjrosen/gitpanes/internal/log"
	"github.com/zjrosen/gitpanes/internal/slice"
)

// Source indicates where a registration came from.
type Source int

const (
	// SourceBuiltIn is a panel compiled into gitpanes.
	SourceBuiltIn Source = iota
)

func (s Source) String() string {
	switch s {
	case SourceBuiltIn:
		return "built-in"
	default:
		return "unknown"
	}
}

// Registration is the static metadata a panel advertises to its host.
type Registration struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Icon        string       `yaml:"icon,omitempty" json:"icon,omitempty"`
	Version     string       `yaml:"version" json:"version"`
	Author      string       `yaml:"author,omitempty" json:"author,omitempty"`
	Description string       `yaml:"description" json:"description"`
	Slices      []slice.Name `yaml:"slices,omitempty" json:"slices,omitempty"`
	Tools       []string     `yaml:"tools,omitempty" json:"tools,omitempty"`
	Source      Source       `yaml:"-" json:"-"`
}

// Registry is an ordered set of registrations.
type Registry struct {
	regs []Registration
}

// NewRegistry creates a registry. Later duplicates of an ID are ignored.
func NewRegistry(regs ...Registration) *Registry {
	r := &Registry{}
	for _, reg := range regs {
		if _, ok := r.Lookup(reg.ID); ok {
			log.Warn(log.CatConfig, "duplicate panel registration", "id", reg.ID)
			continue
		}
		r.regs = append(r.regs, reg)
	}
	return r
}

// All returns the registrations in registration order.
func (r *Registry) All() []Registration {
	return slices.Clone(r.regs)
}

// Lookup finds a registration by ID.
func (r *Registry) Lookup(id string) (Registration, bool) {
	for _, reg := range r.regs {
		if reg.ID == id {
			return reg, true
		}
	}
	return Registration{}, false
}

// IDs returns every registered ID in order.
func (r *Registry) IDs() []string {
	ids := make([]string, len(r.regs))
	for i, reg := range r.regs {
		ids[i] = reg.ID
	}
	return ids
}

// Enabled narrows the registry to the given IDs, keeping registry order.
// An empty list keeps everything. Unknown IDs are logged and skipped.
func (r *Registry) Enabled(ids []string) *Registry {
	if len(ids) == 0 {
		return &Registry{regs: slices.Clone(r.regs)}
	}
	for _, id := range ids {
		if _, ok := r.Lookup(id); !ok {
			log.Warn(log.CatConfig, "enabled panel not found", "id", id, "available", r.IDs())
		}
	}
	out := &Registry{}
	for _, reg := range r.regs {
		if slices.Contains(ids, reg.ID) {
			out.regs = append(out.regs, reg)
		}
	}
	return out
}
