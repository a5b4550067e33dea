// Package api maps request and response documents onto analysis sessions.
package api

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/d2go/internal/activity"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/session"
	"github.com/udisondev/d2go/internal/weapon"
)

// Format is a document encoding.
type Format uint8

const (
	FormatYAML Format = iota
	FormatJSON
)

// FormatOf picks the format from a file extension; anything other than
// .json is read as YAML.
func FormatOf(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// WeaponRequest names the weapon. Type, Ammo and Damage accept the names
// printed by the model enums.
type WeaponRequest struct {
	Hash      uint32 `json:"hash" yaml:"hash"`
	Type      string `json:"type" yaml:"type"`
	Intrinsic uint32 `json:"intrinsic" yaml:"intrinsic"`
	Ammo      string `json:"ammo" yaml:"ammo"`
	Damage    string `json:"damage" yaml:"damage"`
}

// PerkRequest equips one perk.
type PerkRequest struct {
	ID        uint32         `json:"id" yaml:"id"`
	Value     uint32         `json:"value" yaml:"value"`
	StatBuffs map[string]int `json:"statBuffs,omitempty" yaml:"stat_buffs,omitempty"`
}

// Request is one analysis document. A nil Activity disables activity
// scaling.
type Request struct {
	Name       string             `json:"name" yaml:"name"`
	Weapon     WeaponRequest      `json:"weapon" yaml:"weapon"`
	Stats      map[string]int     `json:"stats" yaml:"stats"`
	Perks      []PerkRequest      `json:"perks" yaml:"perks"`
	Enemy      string             `json:"enemy" yaml:"enemy"`
	PvP        bool               `json:"pvp" yaml:"pvp"`
	Overshield float64            `json:"overshield" yaml:"overshield"`
	Activity   *activity.Activity `json:"activity,omitempty" yaml:"activity,omitempty"`
}

// DecodeRequest parses a request document. Unknown fields are rejected.
func DecodeRequest(raw []byte, f Format) (Request, error) {
	var req Request
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return Request{}, fmt.Errorf("decoding json request: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(raw))
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil {
			return Request{}, fmt.Errorf("decoding yaml request: %w", err)
		}
	}
	return req, nil
}

// LoadRequest reads and decodes a request file. A request without a name
// is named after the file.
func LoadRequest(path string) (Request, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Request{}, fmt.Errorf("reading request %s: %w", path, err)
	}
	req, err := DecodeRequest(raw, FormatOf(path))
	if err != nil {
		return Request{}, fmt.Errorf("loading request %s: %w", path, err)
	}
	if req.Name == "" {
		req.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return req, nil
}

// Spec converts the weapon section.
func (r WeaponRequest) Spec() (weapon.Spec, error) {
	wt := model.ParseWeaponType(r.Type)
	if wt == model.WeaponUnknown {
		return weapon.Spec{}, fmt.Errorf("unknown weapon type %q", r.Type)
	}
	return weapon.Spec{
		Hash:       r.Hash,
		WeaponType: wt,
		Intrinsic:  r.Intrinsic,
		AmmoType:   model.ParseAmmoType(r.Ammo),
		DamageType: model.ParseDamageType(r.Damage),
	}, nil
}

// ParseStat accepts a stat name or a numeric stat hash.
func ParseStat(name string) (model.StatHash, error) {
	if h, ok := model.ParseStatHash(name); ok {
		return h, nil
	}
	if n, err := strconv.ParseUint(strings.TrimSpace(name), 10, 32); err == nil {
		return model.StatHash(n), nil
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

func parseStats(in map[string]int) (map[model.StatHash]int, error) {
	out := make(map[model.StatHash]int, len(in))
	var errs []error
	for name, v := range in {
		h, err := ParseStat(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		out[h] = v
	}
	return out, errors.Join(errs...)
}

// Apply loads the request into s, replacing its weapon.
func (r Request) Apply(s *session.Session) error {
	spec, err := r.Weapon.Spec()
	if err != nil {
		return fmt.Errorf("applying request %q: %w", r.Name, err)
	}
	if err := s.SetWeapon(spec); err != nil {
		return fmt.Errorf("applying request %q: %w", r.Name, err)
	}

	stats, err := parseStats(r.Stats)
	if err != nil {
		return fmt.Errorf("applying request %q stats: %w", r.Name, err)
	}
	if err := s.SetStats(stats); err != nil {
		return err
	}

	for _, p := range r.Perks {
		buffs, err := parseStats(p.StatBuffs)
		if err != nil {
			return fmt.Errorf("applying request %q perk %d: %w", r.Name, p.ID, err)
		}
		if _, err := s.AddPerk(p.ID, p.Value, buffs); err != nil {
			return err
		}
	}

	s.Enemy = model.ParseEnemyType(r.Enemy)
	s.PvP = r.PvP
	s.Overshield = r.Overshield
	s.ApplyActivity = r.Activity != nil
	if r.Activity != nil {
		s.Activity = *r.Activity
	}
	return nil
}
