package api

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-json"

	"github.com/udisondev/d2go/internal/combat"
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
	"github.com/udisondev/d2go/internal/session"
	"github.com/udisondev/d2go/internal/weapon"
)

// WeaponInfo echoes the analyzed weapon with readable enum names.
type WeaponInfo struct {
	Hash      uint32 `json:"hash"`
	Type      string `json:"type"`
	Intrinsic uint32 `json:"intrinsic"`
	Ammo      string `json:"ammo"`
	Damage    string `json:"damage"`
}

// StatValue is one stat with its static and effective values.
type StatValue struct {
	Name    string `json:"name"`
	Hash    uint32 `json:"hash"`
	Base    int    `json:"base"`
	Part    int    `json:"part"`
	Perk    int    `json:"perk"`
	Val     int    `json:"val"`
	PerkVal int    `json:"perkVal"`
}

// StatsResponse is the derived stat readout.
type StatsResponse struct {
	Range    formula.RangeFalloff  `json:"range"`
	Handling formula.HandlingTimes `json:"handling"`
	Reload   formula.ReloadTimes   `json:"reload"`
	Ammo     formula.AmmoSizes     `json:"ammo"`
	Firing   weapon.FiringResponse `json:"firing"`
	Scalars  weapon.Scalars        `json:"scalars"`
	Stats    []StatValue           `json:"stats"`
	Flinch   []float64             `json:"flinch"`
}

// Response is the document produced for one request.
type Response struct {
	Name        string                     `json:"name"`
	Fingerprint string                     `json:"fingerprint"`
	Weapon      WeaponInfo                 `json:"weapon"`
	Stats       StatsResponse              `json:"stats"`
	DPS         combat.DpsResponse         `json:"dps"`
	TTK         []combat.ResilienceSummary `json:"ttk"`
}

// NewResponse shapes an analysis for output.
func NewResponse(name string, a *session.Analysis) Response {
	return Response{
		Name:        name,
		Fingerprint: a.Fingerprint,
		Weapon: WeaponInfo{
			Hash:      a.Weapon.Hash,
			Type:      a.Weapon.WeaponType.String(),
			Intrinsic: a.Weapon.Intrinsic,
			Ammo:      a.Weapon.AmmoType.String(),
			Damage:    a.Weapon.DamageType.String(),
		},
		Stats: StatsResponse{
			Range:    a.Stats.Range,
			Handling: a.Stats.Handling,
			Reload:   a.Stats.Reload,
			Ammo:     a.Stats.Ammo,
			Firing:   a.Stats.Firing,
			Scalars:  a.Stats.Scalars,
			Stats:    StatValues(a.Stats.Stats),
			Flinch:   a.Stats.Flinch,
		},
		DPS: a.DPS,
		TTK: a.TTK,
	}
}

// StatValues flattens a stat map ordered by name.
func StatValues(stats map[model.StatHash]model.Stat) []StatValue {
	hashes := slices.SortedFunc(maps.Keys(stats), func(a, b model.StatHash) int {
		if c := cmp.Compare(a.String(), b.String()); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	out := make([]StatValue, 0, len(hashes))
	for _, h := range hashes {
		s := stats[h]
		out = append(out, StatValue{
			Name:    h.String(),
			Hash:    uint32(h),
			Base:    s.Base,
			Part:    s.Part,
			Perk:    s.Perk,
			Val:     s.Val(),
			PerkVal: s.PerkVal(),
		})
	}
	return out
}

// PerkInfo describes a perk for option pickers.
type PerkInfo struct {
	ID       uint32      `json:"id"`
	Name     string      `json:"name"`
	Category string      `json:"category"`
	Known    bool        `json:"known"`
	Option   perk.Option `json:"option"`
}

// DescribePerk looks a perk up in reg. Unknown ids are reported static.
func DescribePerk(reg *perk.Registry, id uint32) PerkInfo {
	base, _ := reg.Resolve(id)
	info := PerkInfo{ID: id, Option: reg.Option(id)}
	if e := reg.Entry(base); e != nil {
		info.Name = e.Name
		info.Category = e.Category.String()
		info.Known = true
	}
	return info
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}
