package perk

import (
	"fmt"
	"sort"

	"github.com/udisondev/d2go/internal/model"
)

// Category groups perks for listing.
type Category uint8

const (
	CategoryTrait Category = iota
	CategoryOrigin
	CategoryIntrinsic
	CategoryExotic
	CategoryWeaponMod
	CategoryArmorMod
	CategoryBuff
)

func (c Category) String() string {
	switch c {
	case CategoryOrigin:
		return "origin"
	case CategoryIntrinsic:
		return "intrinsic"
	case CategoryExotic:
		return "exotic"
	case CategoryWeaponMod:
		return "weapon_mod"
	case CategoryArmorMod:
		return "armor_mod"
	case CategoryBuff:
		return "buff"
	default:
		return "trait"
	}
}

// BuffGroup marks damage buffs that do not stack with each other.
type BuffGroup uint8

const (
	GroupNone BuffGroup = iota
	GroupEmpowering
	GroupSurge
	GroupDebuff
)

// Entry is the effect table row for one perk. A nil effect means the perk
// does not touch that category.
type Entry struct {
	ID       uint32
	Name     string
	Category Category
	Option   Option
	Group    BuffGroup

	Damage         *Effect[DamageModifier]
	Firing         *Effect[FiringModifier]
	Handling       *Effect[HandlingModifier]
	Range          *Effect[RangeModifier]
	Reload         *Effect[ReloadModifier]
	Magazine       *Effect[MagazineModifier]
	Reserve        *Effect[ReserveModifier]
	Refund         *Effect[Refund]
	Extra          *Effect[ExtraDamage]
	StatBuffs      *Effect[StatBuffs]
	ReloadOverride *Effect[ReloadOverride]
	Flinch         *Effect[FlinchModifier]
	Explosive      *Effect[ExplosivePercent]
}

// catalog holds every built-in entry; filled by init() in table_*.go.
var catalog = map[uint32]*Entry{}

// Register adds a built-in entry. Duplicate ids are a programming error.
func Register(entries ...*Entry) {
	for _, e := range entries {
		if _, dup := catalog[e.ID]; dup {
			panic(fmt.Sprintf("perk: duplicate entry %d (%s)", e.ID, e.Name))
		}
		catalog[e.ID] = e
	}
}

// EnhancedResolver maps an enhanced perk id to its base id.
type EnhancedResolver interface {
	Resolve(id uint32) (base uint32, enhanced bool)
}

// EnhancedMap is the injected enhanced-id → base-id table.
type EnhancedMap map[uint32]uint32

func (m EnhancedMap) Resolve(id uint32) (uint32, bool) {
	if base, ok := m[id]; ok {
		return base, true
	}
	return id, false
}

// Registry resolves perk ids to effect entries.
type Registry struct {
	entries  map[uint32]*Entry
	enhanced EnhancedResolver
}

// NewRegistry returns a registry over the built-in catalog. enhanced may be
// nil, in which case every id is treated as a base perk.
func NewRegistry(enhanced EnhancedResolver) *Registry {
	entries := make(map[uint32]*Entry, len(catalog))
	for id, e := range catalog {
		entries[id] = e
	}
	return &Registry{entries: entries, enhanced: enhanced}
}

// Add registers an extra entry on this registry only.
func (r *Registry) Add(e *Entry) error {
	if _, dup := r.entries[e.ID]; dup {
		return fmt.Errorf("perk %d already registered", e.ID)
	}
	r.entries[e.ID] = e
	return nil
}

// Entry returns the entry for a base id, nil when unknown.
func (r *Registry) Entry(id uint32) *Entry {
	return r.entries[id]
}

// Resolve maps a submitted id to its base id.
func (r *Registry) Resolve(id uint32) (uint32, bool) {
	if r.enhanced == nil {
		return id, false
	}
	return r.enhanced.Resolve(id)
}

// NewPerk builds a perk from a submitted id and value, resolving enhanced
// variants and clamping the value to the perk's option.
func (r *Registry) NewPerk(rawID, value uint32) model.Perk {
	id, enhanced := r.Resolve(rawID)
	p := model.Perk{ID: id, RawID: rawID, Enhanced: enhanced, Value: value}
	if e := r.entries[id]; e != nil {
		p.Name = e.Name
		if e.Option.Kind != OptionStatic {
			p.Value = e.Option.Clamp(value)
		}
	}
	return p
}

// Option returns UI metadata for a perk id; unknown ids are static.
func (r *Registry) Option(id uint32) Option {
	base, _ := r.Resolve(id)
	if e := r.entries[base]; e != nil {
		return e.Option
	}
	return Static()
}

// Entries returns all entries sorted by id.
func (r *Registry) Entries() []*Entry {
	out := make([]*Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
