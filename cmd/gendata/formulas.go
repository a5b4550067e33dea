package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dave/jennifer/jen"
	"github.com/goccy/go-json"

	"github.com/udisondev/d2go/internal/data"
	"github.com/udisondev/d2go/internal/formula"
	"github.com/udisondev/d2go/internal/model"
)

const (
	formulaPkg = "github.com/udisondev/d2go/internal/formula"
	modelPkg   = "github.com/udisondev/d2go/internal/model"

	formulasInput  = "formulas.json"
	formulasOutput = "formulas_generated.go"
)

var weaponTypeConsts = map[model.WeaponType]string{
	model.WeaponAutoRifle:         "WeaponAutoRifle",
	model.WeaponShotgun:           "WeaponShotgun",
	model.WeaponMachineGun:        "WeaponMachineGun",
	model.WeaponHandCannon:        "WeaponHandCannon",
	model.WeaponRocket:            "WeaponRocket",
	model.WeaponFusionRifle:       "WeaponFusionRifle",
	model.WeaponSniper:            "WeaponSniper",
	model.WeaponPulseRifle:        "WeaponPulseRifle",
	model.WeaponScoutRifle:        "WeaponScoutRifle",
	model.WeaponSidearm:           "WeaponSidearm",
	model.WeaponSword:             "WeaponSword",
	model.WeaponLinearFusionRifle: "WeaponLinearFusionRifle",
	model.WeaponGrenadeLauncher:   "WeaponGrenadeLauncher",
	model.WeaponSubMachineGun:     "WeaponSubMachineGun",
	model.WeaponTraceRifle:        "WeaponTraceRifle",
	model.WeaponBow:               "WeaponBow",
	model.WeaponGlaive:            "WeaponGlaive",
}

// generateFormulas turns the exported record list into the static
// database literal compiled into the data package.
func generateFormulas(inDir, outDir string) error {
	inPath := filepath.Join(inDir, formulasInput)
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	var records []data.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("decoding %s: %w", inPath, err)
	}
	db, err := data.FromRecords(records)
	if err != nil {
		return fmt.Errorf("rebuilding database: %w", err)
	}

	outPath := filepath.Join(outDir, formulasOutput)
	if err := renderDatabase(db).Save(outPath); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("  %d paths, %d range, %d handling, %d reload, %d scalar, %d firing, %d ammo -> %s\n",
		len(db.Pointers), len(db.Range), len(db.Handling), len(db.Reload),
		len(db.Scalars), len(db.Firing), len(db.Ammo), outPath)
	return nil
}

// exportFormulas writes the compiled-in database as the record list
// generateFormulas reads.
func exportFormulas(inDir, _ string) error {
	records := data.Static().Records()
	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if err := os.MkdirAll(inDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", inDir, err)
	}
	outPath := filepath.Join(inDir, formulasInput)
	if err := os.WriteFile(outPath, append(raw, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("  %d records -> %s\n", len(records), outPath)
	return nil
}

func renderDatabase(db *data.Database) *jen.File {
	f := jen.NewFile("data")
	f.HeaderComment("Code generated by gendata formulas. DO NOT EDIT.")
	f.ImportName(formulaPkg, "formula")
	f.ImportName(modelPkg, "model")

	ranges := make([]jen.Code, 0, len(db.Range))
	for _, r := range db.Range {
		d := jen.Dict{}
		putQuad(d, "Start", r.Start)
		putQuad(d, "End", r.End)
		putFloat(d, "FloorPercent", r.FloorPercent)
		putBool(d, "Fusion", r.Fusion)
		ranges = append(ranges, jen.Values(d))
	}

	handling := make([]jen.Code, 0, len(db.Handling))
	for _, h := range db.Handling {
		d := jen.Dict{}
		putQuad(d, "Ready", h.Ready)
		putQuad(d, "Stow", h.Stow)
		putQuad(d, "ADS", h.ADS)
		handling = append(handling, jen.Values(d))
	}

	reload := make([]jen.Code, 0, len(db.Reload))
	for _, r := range db.Reload {
		d := jen.Dict{}
		putQuad(d, "Time", r.Time)
		putFloat(d, "AmmoPercent", r.AmmoPercent)
		reload = append(reload, jen.Values(d))
	}

	scalars := make([]jen.Code, 0, len(db.Scalars))
	for _, s := range db.Scalars {
		d := jen.Dict{}
		putFloat(d, "PvE", s.PvE)
		putFloat(d, "Minor", s.Minor)
		putFloat(d, "Elite", s.Elite)
		putFloat(d, "Miniboss", s.Miniboss)
		putFloat(d, "Champion", s.Champion)
		putFloat(d, "Boss", s.Boss)
		putFloat(d, "Vehicle", s.Vehicle)
		scalars = append(scalars, jen.Values(d))
	}

	firing := make([]jen.Code, 0, len(db.Firing))
	for _, fd := range db.Firing {
		d := jen.Dict{}
		putFloat(d, "Damage", fd.Damage)
		putFloat(d, "CritMult", fd.CritMult)
		putFloat(d, "BurstDelay", fd.BurstDelay)
		putFloat(d, "InnerBurstDelay", fd.InnerBurstDelay)
		putInt(d, "BurstSize", fd.BurstSize)
		putBool(d, "OneAmmo", fd.OneAmmo)
		putBool(d, "Charge", fd.Charge)
		putFloat(d, "ChargeTime", fd.ChargeTime)
		firing = append(firing, jen.Values(d))
	}

	ammo := make([]jen.Code, 0, len(db.Ammo))
	for _, a := range db.Ammo {
		d := jen.Dict{}
		putQuad(d, "Mag", a.Mag)
		putInt(d, "RoundTo", a.RoundTo)
		putInt(d, "ReserveID", int(a.ReserveID))
		if len(a.Reserves) > 0 {
			reserves := jen.Dict{}
			for k, q := range a.Reserves {
				reserves[jen.Lit(k)] = jen.Values(quadDict(q))
			}
			d[jen.Id("Reserves")] = jen.Map(jen.Int()).Qual(formulaPkg, "Quadratic").Values(reserves)
		}
		ammo = append(ammo, jen.Values(d))
	}

	pointers := jen.Dict{}
	for path, p := range db.Pointers {
		key := jen.Values(jen.Dict{
			jen.Id("WeaponType"): weaponTypeCode(path.WeaponType),
			jen.Id("Intrinsic"):  jen.Lit(int(path.Intrinsic)),
		})
		pointers[key] = jen.Values(jen.Dict{
			jen.Id("Range"):    jen.Lit(p.Range),
			jen.Id("Handling"): jen.Lit(p.Handling),
			jen.Id("Reload"):   jen.Lit(p.Reload),
			jen.Id("Scalar"):   jen.Lit(p.Scalar),
			jen.Id("Firing"):   jen.Lit(p.Firing),
			jen.Id("Ammo"):     jen.Lit(p.Ammo),
		})
	}

	f.Var().Id("staticDatabase").Op("=").Id("Database").Values(jen.Dict{
		jen.Id("Range"):    jen.Index().Qual(formulaPkg, "Range").ValuesFunc(multiline(ranges)),
		jen.Id("Handling"): jen.Index().Qual(formulaPkg, "Handling").ValuesFunc(multiline(handling)),
		jen.Id("Reload"):   jen.Index().Qual(formulaPkg, "Reload").ValuesFunc(multiline(reload)),
		jen.Id("Scalars"):  jen.Index().Qual(modelPkg, "DamageMods").ValuesFunc(multiline(scalars)),
		jen.Id("Firing"):   jen.Index().Qual(modelPkg, "FiringData").ValuesFunc(multiline(firing)),
		jen.Id("Ammo"):     jen.Index().Qual(formulaPkg, "Ammo").ValuesFunc(multiline(ammo)),
		jen.Id("Pointers"): jen.Map(jen.Id("Path")).Id("Pointers").Values(pointers),
	})
	return f
}

// multiline renders a slice literal with one element per line.
func multiline(items []jen.Code) func(*jen.Group) {
	return func(g *jen.Group) {
		for _, it := range items {
			g.Line().Add(it)
		}
		g.Line()
	}
}

func weaponTypeCode(wt model.WeaponType) jen.Code {
	if name, ok := weaponTypeConsts[wt]; ok {
		return jen.Qual(modelPkg, name)
	}
	return jen.Qual(modelPkg, "WeaponType").Call(jen.Lit(int(wt)))
}

func quadDict(q formula.Quadratic) jen.Dict {
	d := jen.Dict{}
	putFloat(d, "EVPP", q.EVPP)
	putFloat(d, "VPP", q.VPP)
	putFloat(d, "Offset", q.Offset)
	return d
}

func putQuad(d jen.Dict, name string, q formula.Quadratic) {
	if q == (formula.Quadratic{}) {
		return
	}
	d[jen.Id(name)] = jen.Qual(formulaPkg, "Quadratic").Values(quadDict(q))
}

func putFloat(d jen.Dict, name string, v float64) {
	if v != 0 {
		d[jen.Id(name)] = jen.Lit(v)
	}
}

func putInt(d jen.Dict, name string, v int) {
	if v != 0 {
		d[jen.Id(name)] = jen.Lit(v)
	}
}

func putBool(d jen.Dict, name string, v bool) {
	if v {
		d[jen.Id(name)] = jen.Lit(true)
	}
}
