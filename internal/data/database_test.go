package data

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/perk"
)

func TestStaticDatabaseValid(t *testing.T) {
	require.NoError(t, Static().Validate())
}

func TestLookupKnownWeapon(t *testing.T) {
	p, err := Static().Lookup(model.WeaponHandCannon, FrameAdaptive)
	require.NoError(t, err)
	assert.Equal(t, Pointers{Range: 0, Handling: 0, Reload: 0, Scalar: 1, Firing: 0, Ammo: 0}, p)

	f := Static().Formulas(p)
	assert.Equal(t, 66.0, f.Firing.Damage)
	assert.Equal(t, 1.5, f.DamageMods.Minor)
}

func TestLookupUnknownWeapon(t *testing.T) {
	_, err := Static().Lookup(model.WeaponHandCannon, 12345)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownWeapon))
	assert.Contains(t, err.Error(), "12345")
	assert.Contains(t, err.Error(), "hand_cannon")
}

func TestStaticSource(t *testing.T) {
	db, err := StaticSource{}.Load(context.Background())
	require.NoError(t, err)
	assert.Same(t, Static(), db)
}

func TestValidateCatchesBadPointer(t *testing.T) {
	db := &Database{
		Firing:   []model.FiringData{{BurstDelay: 0.5}},
		Pointers: map[Path]Pointers{{WeaponType: model.WeaponBow, Intrinsic: 1}: {Range: 3}},
	}
	err := db.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "range index 3")
}

func TestRecordsRoundTrip(t *testing.T) {
	records := Static().Records()
	require.Len(t, records, len(Static().Pointers))

	rebuilt, err := FromRecords(records)
	require.NoError(t, err)

	if diff := cmp.Diff(records, rebuilt.Records()); diff != "" {
		t.Fatalf("records differ after rebuild (-want +got):\n%s", diff)
	}
	assert.LessOrEqual(t, len(rebuilt.Firing), len(Static().Firing))
}

func TestFromRecordsRejectsDuplicates(t *testing.T) {
	records := Static().Records()
	_, err := FromRecords(append(records, records[0]))
	require.Error(t, err)
}

func TestPathsSorted(t *testing.T) {
	paths := Static().Paths()
	for i := 1; i < len(paths); i++ {
		prev, cur := paths[i-1], paths[i]
		ok := prev.WeaponType < cur.WeaponType ||
			(prev.WeaponType == cur.WeaponType && prev.Intrinsic < cur.Intrinsic)
		assert.True(t, ok, "%s before %s", prev, cur)
	}
}

func TestLoadEnhancedMap(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enhanced.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"2000000001": 1015611457}`), 0o600))

	m, err := LoadEnhancedMap(path)
	require.NoError(t, err)
	base, enhanced := m.Resolve(2000000001)
	assert.True(t, enhanced)
	assert.Equal(t, perk.KillClip, base)
}

func TestLoadEnhancedMapMissingFile(t *testing.T) {
	m, err := LoadEnhancedMap(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestParseEnhancedMapBadKey(t *testing.T) {
	_, err := ParseEnhancedMap([]byte(`{"abc": 1}`))
	require.Error(t, err)
}
