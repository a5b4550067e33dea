// Package session holds the state of one analysis request: the weapon
// being evaluated, its target and the activity it is evaluated in.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/d2go/internal/activity"
	"github.com/udisondev/d2go/internal/combat"
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/weapon"
)

var (
	// ErrNoWeapon is returned by operations that need a weapon before one is set.
	ErrNoWeapon = errors.New("no weapon selected")
	// ErrUnknownPerk is returned when editing a perk that is not equipped.
	ErrUnknownPerk = errors.New("perk not equipped")
)

// Session is not safe for concurrent use; Analyze does its own fan-out
// over clones.
type Session struct {
	b      *Builder
	weapon *weapon.Weapon
	spec   weapon.Spec

	Enemy      model.EnemyType
	PvP        bool
	Overshield float64

	Activity      activity.Activity
	ApplyActivity bool
}

// New creates an empty session against a weapon target of enclave type.
func New(b *Builder) *Session {
	return &Session{
		b:        b,
		Enemy:    model.EnemyEnclave,
		Activity: activity.Default(),
	}
}

// SetWeapon replaces the session weapon. Perks and stats of the previous
// weapon are dropped.
func (s *Session) SetWeapon(spec weapon.Spec) error {
	w, err := s.b.Build(spec)
	if err != nil {
		return err
	}
	s.weapon = w
	s.spec = spec
	return nil
}

// Weapon returns the current weapon.
func (s *Session) Weapon() (*weapon.Weapon, error) {
	if s.weapon == nil {
		return nil, ErrNoWeapon
	}
	return s.weapon, nil
}

// Spec returns the spec the current weapon was built from.
func (s *Session) Spec() weapon.Spec {
	return s.spec
}

// SetStats replaces the weapon's base stats.
func (s *Session) SetStats(stats map[model.StatHash]int) error {
	w, err := s.Weapon()
	if err != nil {
		return err
	}
	w.SetStats(stats)
	return nil
}

// SetStat sets one stat's base and part values.
func (s *Session) SetStat(h model.StatHash, base, part int) error {
	w, err := s.Weapon()
	if err != nil {
		return err
	}
	w.SetStat(h, base, part)
	return nil
}

// AddPerk equips a perk. Perks without an effect entry are accepted; they
// contribute their stat buffs only.
func (s *Session) AddPerk(id, value uint32, statBuffs map[model.StatHash]int) (model.Perk, error) {
	w, err := s.Weapon()
	if err != nil {
		return model.Perk{}, err
	}
	p := s.b.Registry().NewPerk(id, value)
	if len(statBuffs) > 0 {
		p.StatBuffs = statBuffs
	}
	if s.b.Registry().Entry(p.ID) == nil {
		slog.Debug("perk has no effect entry", "id", id, "base", p.ID)
	}
	w.AddPerk(p)
	return p, nil
}

// RemovePerk unequips a perk.
func (s *Session) RemovePerk(id uint32) error {
	w, err := s.Weapon()
	if err != nil {
		return err
	}
	if !w.RemovePerk(id) {
		return fmt.Errorf("removing perk %d: %w", id, ErrUnknownPerk)
	}
	return nil
}

// SetPerkValue changes an equipped perk's toggle or stack value.
func (s *Session) SetPerkValue(id, value uint32) error {
	w, err := s.Weapon()
	if err != nil {
		return err
	}
	if !w.SetPerkValue(id, value) {
		return fmt.Errorf("setting perk %d: %w", id, ErrUnknownPerk)
	}
	return nil
}

// Registry returns the perk registry the session resolves ids through.
func (s *Session) Registry() *perk.Registry {
	return s.b.Registry()
}

// PerkOption returns the selectable values of a perk id.
func (s *Session) PerkOption(id uint32) perk.Option {
	return s.b.Registry().Option(id)
}

// PvEScale is the activity multiplier applied to PvE damage, 1 when
// activity scaling is off.
func (s *Session) PvEScale() float64 {
	if !s.ApplyActivity {
		return 1
	}
	return s.Activity.PLDelta()
}

// Stats is the readout of every derived stat at the static input.
type Stats struct {
	Range    formula.RangeFalloff          `json:"range"`
	Handling formula.HandlingTimes         `json:"handling"`
	Reload   formula.ReloadTimes           `json:"reload"`
	Ammo     formula.AmmoSizes             `json:"ammo"`
	Firing   weapon.FiringResponse         `json:"firing"`
	Scalars  weapon.Scalars                `json:"scalars"`
	Stats    map[model.StatHash]model.Stat `json:"stats"`
	Flinch   []float64                     `json:"flinch"`
}

func (s *Session) input(w *weapon.Weapon) *perk.CalculationInput {
	in := w.StaticInput()
	in.EnemyType = s.Enemy
	if s.PvP {
		in.EnemyType = model.EnemyPlayer
	}
	return in
}

// Stats computes the stat readout.
func (s *Session) Stats() (Stats, error) {
	w, err := s.Weapon()
	if err != nil {
		return Stats{}, err
	}
	return s.stats(w), nil
}

func (s *Session) stats(w *weapon.Weapon) Stats {
	in := s.input(w)
	flinch := make([]float64, len(combat.ResilienceHealth))
	for r := range flinch {
		flinch[r] = w.FlinchResist(r, in, s.PvP)
	}
	return Stats{
		Range:    w.RangeFalloff(in, s.PvP),
		Handling: w.HandlingTimes(in, s.PvP),
		Reload:   w.ReloadTimes(in, s.PvP),
		Ammo:     w.AmmoSizes(in, s.PvP),
		Firing:   w.FiringData(in, s.PvEScale()),
		Scalars:  w.Scalars(in, s.PvP),
		Stats:    w.StatView(in, s.PvP),
		Flinch:   flinch,
	}
}

// DPS runs the damage simulation against the session enemy.
func (s *Session) DPS() (combat.DpsResponse, error) {
	w, err := s.Weapon()
	if err != nil {
		return combat.DpsResponse{}, err
	}
	return s.dps(w), nil
}

func (s *Session) dps(w *weapon.Weapon) combat.DpsResponse {
	r := combat.DPS(w, s.Enemy)
	if s.ApplyActivity {
		r.Scale(s.PvEScale())
	}
	return r
}

// TTK runs the resilience ladder.
func (s *Session) TTK() ([]combat.ResilienceSummary, error) {
	w, err := s.Weapon()
	if err != nil {
		return nil, err
	}
	return combat.TTK(w, s.Overshield), nil
}

// Analysis is the full result for one session state.
type Analysis struct {
	Fingerprint string                     `json:"fingerprint"`
	Weapon      weapon.Spec                `json:"weapon"`
	Stats       Stats                      `json:"stats"`
	DPS         combat.DpsResponse         `json:"dps"`
	TTK         []combat.ResilienceSummary `json:"ttk"`
}

// Analyze computes stats, DPS and TTK concurrently on separate clones of
// the session weapon.
func (s *Session) Analyze(ctx context.Context) (*Analysis, error) {
	w, err := s.Weapon()
	if err != nil {
		return nil, err
	}
	fp, err := s.Fingerprint()
	if err != nil {
		return nil, err
	}

	out := &Analysis{Fingerprint: fp, Weapon: s.spec}
	g, gctx := errgroup.WithContext(ctx)

	statsW, dpsW, ttkW := w.Clone(), w.Clone(), w.Clone()
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.Stats = s.stats(statsW)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.DPS = s.dps(dpsW)
		return nil
	})
	g.Go(func() error {
		if err := gctx.Err(); err != nil {
			return err
		}
		out.TTK = combat.TTK(ttkW, s.Overshield)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analyzing weapon %d: %w", s.spec.Hash, err)
	}
	slog.Debug("analysis complete",
		"fingerprint", fp,
		"dps_samples", len(out.DPS.TimeDamage),
		"total_damage", out.DPS.TotalDamage)
	return out, nil
}
