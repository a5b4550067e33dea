package session

import (
	"fmt"
	"log/slog"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/weapon"
)

// Builder constructs weapons from one formula database and perk registry.
// Constructed weapons are kept as templates and handed out as clones, so
// repeated requests for the same weapon skip the lookup.
type Builder struct {
	db        *data.Database
	reg       *perk.Registry
	templates cache.Cache[weapon.Spec, *weapon.Weapon]
}

// NewBuilder creates a Builder. A zero ttl keeps templates until evicted by
// capacity; maxKeys <= 0 means unbounded.
func NewBuilder(db *data.Database, reg *perk.Registry, ttl time.Duration, maxKeys int) *Builder {
	c := cache.NewCache[weapon.Spec, *weapon.Weapon]().WithLRU()
	if ttl > 0 {
		c = c.WithTTL(ttl)
	}
	if maxKeys > 0 {
		c = c.WithMaxKeys(maxKeys)
	}
	return &Builder{db: db, reg: reg, templates: c}
}

// Registry returns the perk registry weapons are built with.
func (b *Builder) Registry() *perk.Registry {
	return b.reg
}

// Database returns the formula database weapons are built from.
func (b *Builder) Database() *data.Database {
	return b.db
}

// Build returns a fresh weapon for spec. The caller owns the result.
func (b *Builder) Build(spec weapon.Spec) (*weapon.Weapon, error) {
	if tmpl, ok := b.templates.Get(spec); ok {
		return tmpl.Clone(), nil
	}

	w, err := weapon.New(b.db, b.reg, spec)
	if err != nil {
		return nil, fmt.Errorf("building weapon: %w", err)
	}
	b.templates.Set(spec, w, 0)
	slog.Debug("weapon template cached", "hash", spec.Hash, "templates", b.templates.Len())
	return w.Clone(), nil
}

// Cached returns the number of weapon templates held.
func (b *Builder) Cached() int {
	return b.templates.Len()
}
