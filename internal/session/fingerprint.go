package session

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"maps"
	"math"
	"slices"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint identifies the scenario the session would analyze: weapon,
// stats, perks with values, target and activity. Two sessions with equal
// fingerprints produce equal analyses.
func (s *Session) Fingerprint() (string, error) {
	w, err := s.Weapon()
	if err != nil {
		return "", err
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return "", fmt.Errorf("creating fingerprint hash: %w", err)
	}

	buf := make([]byte, 0, 256)
	u32 := func(v uint32) { buf = binary.LittleEndian.AppendUint32(buf, v) }
	f64 := func(v float64) { buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(v)) }

	u32(s.spec.Hash)
	u32(uint32(s.spec.WeaponType))
	u32(s.spec.Intrinsic)
	u32(uint32(s.spec.AmmoType))
	u32(uint32(s.spec.DamageType))

	stats := w.Stats()
	for _, k := range slices.Sorted(maps.Keys(stats)) {
		st := stats[k]
		u32(uint32(k))
		u32(uint32(int32(st.Base)))
		u32(uint32(int32(st.Part)))
	}

	for _, p := range w.Perks() {
		u32(p.RawID)
		u32(p.Value)
		for _, k := range slices.Sorted(maps.Keys(p.StatBuffs)) {
			u32(uint32(k))
			u32(uint32(int32(p.StatBuffs[k])))
		}
	}

	buf = append(buf, byte(s.Enemy))
	if s.PvP {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}
	f64(s.Overshield)
	if s.ApplyActivity {
		buf = append(buf, byte(s.Activity.Difficulty))
		f64(s.Activity.RPL)
		f64(s.Activity.Cap)
		u32(s.Activity.Player.PL)
	}

	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil)), nil
}
