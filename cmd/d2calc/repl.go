package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/buildkite/shellwords"
	"golang.org/x/term"

	"github.com/udisondev/d2go/internal/activity"
	"github.com/udisondev/d2go/internal/api"
	"github.com/udisondev/d2go/internal/config"
	"github.com/udisondev/d2go/internal/model"
	"github.com/udisondev/d2go/internal/session"
)

var errQuit = errors.New("quit")

type lineReader interface {
	ReadLine() (string, error)
}

type scannerReader struct{ s *bufio.Scanner }

func (r scannerReader) ReadLine() (string, error) {
	if !r.s.Scan() {
		if err := r.s.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return r.s.Text(), nil
}

type repl struct {
	ctx context.Context
	out io.Writer
	s   *session.Session
}

type command struct {
	names map[string]bool
	usage string
	f     func(r *repl, args []string) error
}

func m(s ...string) map[string]bool {
	res := make(map[string]bool, len(s))
	for _, p := range s {
		res[p] = true
	}
	return res
}

// runREPL starts an interactive session on stdin. Line editing is enabled
// when stdin is a terminal.
func runREPL(ctx context.Context, cfg config.Calculator) error {
	b, err := newBuilder(ctx, cfg)
	if err != nil {
		return err
	}

	var (
		in  lineReader
		out io.Writer = os.Stdout
	)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("entering raw mode: %w", err)
		}
		defer term.Restore(fd, state)

		t := term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{os.Stdin, os.Stdout}, "d2> ")
		in, out = t, t
	} else {
		in = scannerReader{bufio.NewScanner(os.Stdin)}
	}

	s := session.New(b)
	s.Activity = cfg.Activity
	r := &repl{ctx: ctx, out: out, s: s}
	fmt.Fprintln(out, "d2calc repl, type `help` for commands")
	return r.loop(in)
}

func (r *repl) loop(in lineReader) error {
	for {
		if err := r.ctx.Err(); err != nil {
			return nil
		}
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if err := r.exec(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			fmt.Fprintf(r.out, "error: %v\n", err)
		}
	}
}

func (r *repl) exec(line string) error {
	parts, err := shellwords.SplitPosix(line)
	if err != nil {
		return fmt.Errorf("parsing line: %w", err)
	}
	if len(parts) == 0 {
		return nil
	}
	name := strings.ToLower(parts[0])
	for _, c := range replCommands {
		if c.names[name] {
			slog.Debug("repl command", "name", name, "args", len(parts)-1)
			return c.f(r, parts[1:])
		}
	}
	return fmt.Errorf("unknown command %q", parts[0])
}

var replCommands []command

func init() {
	replCommands = []command{
		{m("help", "?"), "help", (*repl).help},
		{m("quit", "exit"), "quit", func(*repl, []string) error { return errQuit }},
		{m("weapon"), "weapon <type> <intrinsic> [hash] [ammo] [damage]", (*repl).weapon},
		{m("stat"), "stat <name> <base> [part]", (*repl).stat},
		{m("perk"), "perk add <id> [value] | perk rm <id> | perk set <id> <value> | perk ls", (*repl).perk},
		{m("enemy"), "enemy <minor|elite|miniboss|champion|boss|vehicle|enclave>", (*repl).enemy},
		{m("pvp"), "pvp on|off", (*repl).pvp},
		{m("overshield"), "overshield <hp>", (*repl).overshield},
		{m("activity"), "activity on|off | activity <difficulty> <rpl> <pl> [cap]", (*repl).activity},
		{m("stats", "range", "handling", "reload", "ammo"), "stats", (*repl).stats},
		{m("firing"), "firing", (*repl).firing},
		{m("flinch"), "flinch", (*repl).flinch},
		{m("dps"), "dps", (*repl).dps},
		{m("ttk"), "ttk", (*repl).ttk},
		{m("options"), "options <id>...", (*repl).options},
	}
}

func (r *repl) help([]string) error {
	for _, c := range replCommands {
		fmt.Fprintf(r.out, "  %s\n", c.usage)
	}
	return nil
}

func parseUint32(s string) (uint32, error) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", s, err)
	}
	return uint32(v), nil
}

func (r *repl) weapon(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: weapon <type> <intrinsic> [hash] [ammo] [damage]")
	}
	req := api.WeaponRequest{Type: args[0]}
	var err error
	if req.Intrinsic, err = parseUint32(args[1]); err != nil {
		return err
	}
	if len(args) > 2 {
		if req.Hash, err = parseUint32(args[2]); err != nil {
			return err
		}
	}
	if len(args) > 3 {
		req.Ammo = args[3]
	}
	if len(args) > 4 {
		req.Damage = args[4]
	}

	spec, err := req.Spec()
	if err != nil {
		return err
	}
	if spec.AmmoType == model.AmmoUnknown {
		spec.AmmoType = defaultAmmo(spec.WeaponType)
	}
	if err := r.s.SetWeapon(spec); err != nil {
		return err
	}
	fmt.Fprintf(r.out, "weapon set: %s intrinsic %d (%s ammo)\n", spec.WeaponType, spec.Intrinsic, spec.AmmoType)
	return nil
}

func defaultAmmo(wt model.WeaponType) model.AmmoType {
	switch wt {
	case model.WeaponShotgun, model.WeaponSniper, model.WeaponFusionRifle, model.WeaponGrenadeLauncher, model.WeaponTraceRifle, model.WeaponGlaive:
		return model.AmmoSpecial
	case model.WeaponRocket, model.WeaponMachineGun, model.WeaponLinearFusionRifle, model.WeaponSword:
		return model.AmmoHeavy
	}
	return model.AmmoPrimary
}

func (r *repl) stat(args []string) error {
	if len(args) < 2 {
		return errors.New("usage: stat <name> <base> [part]")
	}
	h, err := api.ParseStat(args[0])
	if err != nil {
		return err
	}
	base, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parsing base %q: %w", args[1], err)
	}
	part := 0
	if len(args) > 2 {
		if part, err = strconv.Atoi(args[2]); err != nil {
			return fmt.Errorf("parsing part %q: %w", args[2], err)
		}
	}
	return r.s.SetStat(h, base, part)
}

func (r *repl) perk(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: perk add|rm|set|ls")
	}
	switch args[0] {
	case "ls":
		w, err := r.s.Weapon()
		if err != nil {
			return err
		}
		for _, p := range w.Perks() {
			fmt.Fprintf(r.out, "  %d %s value=%d enhanced=%t\n", p.RawID, p.Name, p.Value, p.Enhanced)
		}
		return nil
	case "add":
		if len(args) < 2 {
			return errors.New("usage: perk add <id> [value]")
		}
		id, err := parseUint32(args[1])
		if err != nil {
			return err
		}
		var value uint32
		if len(args) > 2 {
			if value, err = parseUint32(args[2]); err != nil {
				return err
			}
		}
		p, err := r.s.AddPerk(id, value, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(r.out, "equipped %d %s value=%d\n", p.RawID, p.Name, p.Value)
		return nil
	case "rm":
		if len(args) < 2 {
			return errors.New("usage: perk rm <id>")
		}
		id, err := parseUint32(args[1])
		if err != nil {
			return err
		}
		return r.s.RemovePerk(id)
	case "set":
		if len(args) < 3 {
			return errors.New("usage: perk set <id> <value>")
		}
		id, err := parseUint32(args[1])
		if err != nil {
			return err
		}
		value, err := parseUint32(args[2])
		if err != nil {
			return err
		}
		return r.s.SetPerkValue(id, value)
	}
	return fmt.Errorf("unknown perk action %q", args[0])
}

func (r *repl) enemy(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: enemy <type>")
	}
	r.s.Enemy = model.ParseEnemyType(args[0])
	fmt.Fprintf(r.out, "enemy: %s\n", r.s.Enemy)
	return nil
}

func parseOnOff(args []string) (bool, error) {
	if len(args) != 1 {
		return false, errors.New("expected on or off")
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", args[0])
}

func (r *repl) pvp(args []string) error {
	on, err := parseOnOff(args)
	if err != nil {
		return err
	}
	r.s.PvP = on
	return nil
}

func (r *repl) overshield(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: overshield <hp>")
	}
	v, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("parsing overshield %q: %w", args[0], err)
	}
	r.s.Overshield = v
	return nil
}

func (r *repl) activity(args []string) error {
	if len(args) == 1 {
		on, err := parseOnOff(args)
		if err != nil {
			return err
		}
		r.s.ApplyActivity = on
	} else if len(args) >= 3 {
		d, err := activity.ParseDifficulty(args[0])
		if err != nil {
			return err
		}
		rpl, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parsing rpl %q: %w", args[1], err)
		}
		pl, err := parseUint32(args[2])
		if err != nil {
			return err
		}
		a := activity.Activity{Name: "repl", Difficulty: d, RPL: rpl, Player: activity.Player{PL: pl}}
		if len(args) > 3 {
			if a.Cap, err = strconv.ParseFloat(args[3], 64); err != nil {
				return fmt.Errorf("parsing cap %q: %w", args[3], err)
			}
		}
		r.s.Activity = a
		r.s.ApplyActivity = true
	} else {
		return errors.New("usage: activity on|off | activity <difficulty> <rpl> <pl> [cap]")
	}
	fmt.Fprintf(r.out, "activity %s (%s), scaling %t, multiplier %.4f\n",
		r.s.Activity.Name, r.s.Activity.Difficulty, r.s.ApplyActivity, r.s.PvEScale())
	return nil
}

func (r *repl) stats([]string) error {
	st, err := r.s.Stats()
	if err != nil {
		return err
	}
	renderStats(r.out, statsResponse(st))
	return nil
}

func statsResponse(st session.Stats) api.StatsResponse {
	return api.StatsResponse{
		Range:    st.Range,
		Handling: st.Handling,
		Reload:   st.Reload,
		Ammo:     st.Ammo,
		Firing:   st.Firing,
		Scalars:  st.Scalars,
		Stats:    api.StatValues(st.Stats),
		Flinch:   st.Flinch,
	}
}

func (r *repl) firing([]string) error {
	st, err := r.s.Stats()
	if err != nil {
		return err
	}
	renderFiring(r.out, st.Firing)
	return nil
}

func (r *repl) flinch([]string) error {
	st, err := r.s.Stats()
	if err != nil {
		return err
	}
	for res, f := range st.Flinch {
		fmt.Fprintf(r.out, "  resilience %2d: %.3f\n", res, f)
	}
	return nil
}

func (r *repl) dps([]string) error {
	resp, err := r.s.DPS()
	if err != nil {
		return err
	}
	renderDPS(r.out, resp)
	return nil
}

func (r *repl) ttk([]string) error {
	ladder, err := r.s.TTK()
	if err != nil {
		return err
	}
	renderTTK(r.out, ladder)
	return nil
}

func (r *repl) options(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: options <id>...")
	}
	reg := r.s.Registry()
	infos := make([]api.PerkInfo, 0, len(args))
	for _, a := range args {
		id, err := parseUint32(a)
		if err != nil {
			return err
		}
		infos = append(infos, api.DescribePerk(reg, id))
	}
	renderPerks(r.out, infos)
	return nil
}
