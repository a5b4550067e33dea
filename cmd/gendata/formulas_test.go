package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
)

func TestRenderDatabaseParses(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, renderDatabase(data.Static()).Render(&buf))

	src := buf.String()
	assert.True(t, strings.HasPrefix(src, "// Code generated by gendata formulas. DO NOT EDIT."))
	assert.Contains(t, src, "var staticDatabase = Database{")
	assert.Contains(t, src, "model.WeaponHandCannon")

	_, err := parser.ParseFile(token.NewFileSet(), formulasOutput, src, parser.AllErrors)
	require.NoError(t, err)
}

func TestRenderUnnamedWeaponType(t *testing.T) {
	db, err := data.FromRecords([]data.Record{{
		Path:     data.Path{WeaponType: model.WeaponType(99), Intrinsic: 1},
		Range:    formula.Range{Start: formula.Quadratic{Offset: 10}, End: formula.Quadratic{Offset: 20}},
		Firing:   model.FiringData{Damage: 10, CritMult: 1.5, BurstDelay: 0.5, BurstSize: 1},
		Ammo:     formula.Ammo{Mag: formula.Quadratic{Offset: 5}, Reserves: map[int]formula.Quadratic{0: {Offset: 20}}},
		Scalar:   model.DamageMods{PvE: 1, Minor: 1, Elite: 1, Miniboss: 1, Champion: 1, Boss: 1, Vehicle: 1},
		Handling: formula.Handling{Ready: formula.Quadratic{Offset: 0.5}},
		Reload:   formula.Reload{Time: formula.Quadratic{Offset: 2}},
	}})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderDatabase(db).Render(&buf))
	assert.Contains(t, buf.String(), "model.WeaponType(99)")
	assert.Contains(t, buf.String(), "map[int]formula.Quadratic")
}

func TestExportThenGenerate(t *testing.T) {
	in, out := t.TempDir(), t.TempDir()
	require.NoError(t, exportFormulas(in, out))
	require.NoError(t, generateFormulas(in, out))

	generated, err := os.ReadFile(filepath.Join(out, formulasOutput))
	require.NoError(t, err)

	db, err := data.FromRecords(data.Static().Records())
	require.NoError(t, err)
	var direct bytes.Buffer
	require.NoError(t, renderDatabase(db).Render(&direct))
	if diff := cmp.Diff(direct.String(), string(generated)); diff != "" {
		t.Errorf("export round trip changed the generated file (-direct +generated):\n%s", diff)
	}
}

func TestGenerateMissingInput(t *testing.T) {
	err := generateFormulas(t.TempDir(), t.TempDir())
	assert.ErrorContains(t, err, formulasInput)
}
