package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gertd/go-pluralize"
	"github.com/rodaine/table"

	"github.com/udisondev/d2go/internal/api"
	"github.com/udisondev/d2go/internal/combat"
	"github.com/udisondev/d2go/internal/weapon"
)

var plural = pluralize.NewClient()

func renderResponse(out io.Writer, r api.Response) {
	fmt.Fprintf(out, "== %s (%s, %s %s, intrinsic %d) [%s]\n",
		r.Name, r.Weapon.Type, r.Weapon.Ammo, r.Weapon.Damage, r.Weapon.Intrinsic, r.Fingerprint[:12])
	fmt.Fprintln(out)
	renderStats(out, r.Stats)
	fmt.Fprintln(out)
	renderFiring(out, r.Stats.Firing)
	fmt.Fprintln(out)
	renderDPS(out, r.DPS)
	fmt.Fprintln(out)
	renderTTK(out, r.TTK)
}

func renderStats(out io.Writer, s api.StatsResponse) {
	t := table.New("Stat", "Base", "Part", "Perk", "Effective").WithWriter(out)
	for _, v := range s.Stats {
		t.AddRow(v.Name, v.Base, v.Part, v.Perk, v.PerkVal)
	}
	t.Print()
	fmt.Fprintln(out)

	d := table.New("Derived", "Value").WithWriter(out)
	d.AddRow("hip falloff", fmt.Sprintf("%.2fm - %.2fm", s.Range.HipStart, s.Range.HipEnd))
	d.AddRow("ads falloff", fmt.Sprintf("%.2fm - %.2fm", s.Range.ADSStart, s.Range.ADSEnd))
	d.AddRow("ready / stow / ads", fmt.Sprintf("%.3fs / %.3fs / %.3fs", s.Handling.Ready, s.Handling.Stow, s.Handling.ADS))
	d.AddRow("reload", fmt.Sprintf("%.3fs (ammo in %.3fs)", s.Reload.ReloadTime, s.Reload.AmmoTime))
	d.AddRow("magazine", plural.Pluralize("round", s.Ammo.Mag, true))
	d.AddRow("reserves", plural.Pluralize("round", s.Ammo.Reserves, true))
	if len(s.Flinch) > 0 {
		d.AddRow("flinch (res 0 / 10)", fmt.Sprintf("%.3f / %.3f", s.Flinch[0], s.Flinch[len(s.Flinch)-1]))
	}
	d.Print()
}

func renderFiring(out io.Writer, f weapon.FiringResponse) {
	t := table.New("Firing", "PvP", "PvE").WithWriter(out)
	t.AddRow("impact", fmt.Sprintf("%.2f", f.PvPImpactDamage), fmt.Sprintf("%.2f", f.PvEImpactDamage))
	t.AddRow("explosion", fmt.Sprintf("%.2f", f.PvPExplosionDamage), fmt.Sprintf("%.2f", f.PvEExplosionDamage))
	t.AddRow("crit mult", fmt.Sprintf("%.3f", f.PvPCritMult), fmt.Sprintf("%.3f", f.PvECritMult))
	t.Print()

	burst := plural.Pluralize("round", f.BurstSize, true)
	if f.OneAmmo {
		burst += " per ammo"
	}
	fmt.Fprintf(out, "%.1f rpm, %s per burst, burst delay %.4fs", f.RPM, burst, f.BurstDelay)
	if f.Charge {
		fmt.Fprintf(out, ", charge %.3fs", f.ChargeTime)
	}
	fmt.Fprintln(out)
}

func renderDPS(out io.Writer, r combat.DpsResponse) {
	fmt.Fprintf(out, "%s (%s hit) over %.2fs with %s: %.1f total damage\n",
		plural.Pluralize("shot", r.TotalShots, true),
		plural.Pluralize("round", r.ShotsHit, true),
		r.TotalTime,
		plural.Pluralize("reload", r.Reloads, true),
		r.TotalDamage)

	t := table.New("Magazine", "Cumulative DPS").WithWriter(out)
	for i, dps := range r.DpsPerMag {
		t.AddRow(i+1, fmt.Sprintf("%.2f", dps))
	}
	t.Print()
}

func renderTTK(out io.Writer, ladder []combat.ResilienceSummary) {
	t := table.New("Res", "Health", "Optimal", "Shots", "Range", "Body", "Shots").WithWriter(out)
	for _, s := range ladder {
		rng := "any"
		if s.Optimal.AchievableRange < combat.RangeAnyDistance {
			rng = fmt.Sprintf("%.1fm", s.Optimal.AchievableRange)
		}
		t.AddRow(
			s.Resilience,
			fmt.Sprintf("%.1f", s.Health),
			fmt.Sprintf("%.3fs", s.Optimal.TimeTaken),
			optimalShots(s.Optimal),
			rng,
			fmt.Sprintf("%.3fs", s.Body.TimeTaken),
			s.Body.Bodyshots,
		)
	}
	t.Print()
}

func optimalShots(k combat.OptimalKill) string {
	parts := []string{plural.Pluralize("crit", k.Headshots, true)}
	if k.Bodyshots > 0 {
		parts = append(parts, plural.Pluralize("body", k.Bodyshots, true))
	}
	return strings.Join(parts, " + ")
}

func renderPerks(out io.Writer, infos []api.PerkInfo) {
	t := table.New("ID", "Name", "Category", "Option", "Values").WithWriter(out)
	for _, p := range infos {
		name := p.Name
		if !p.Known {
			name = "(no effect entry)"
		}
		t.AddRow(p.ID, name, p.Category, p.Option.Kind.String(), optionValues(p))
	}
	t.Print()
}

func optionValues(p api.PerkInfo) string {
	switch {
	case len(p.Option.Choices) > 0:
		return strings.Join(p.Option.Choices, ", ")
	case p.Option.Max > 0:
		return fmt.Sprintf("%d-%d", p.Option.Min, p.Option.Max)
	}
	return "-"
}
