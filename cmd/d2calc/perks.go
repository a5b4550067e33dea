package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/udisondev/d2go/internal/api"
	"github.com/udisondev/d2go/internal/config"
)

// runPerks prints option metadata for the given perk ids, or for the whole
// catalog when no ids are given.
func runPerks(ctx context.Context, cfg config.Calculator, args []string, out io.Writer) error {
	b, err := newBuilder(ctx, cfg)
	if err != nil {
		return err
	}
	reg := b.Registry()

	var infos []api.PerkInfo
	if len(args) == 0 {
		for _, e := range reg.Entries() {
			infos = append(infos, api.DescribePerk(reg, e.ID))
		}
	} else {
		for _, a := range args {
			id, err := strconv.ParseUint(a, 10, 32)
			if err != nil {
				return fmt.Errorf("parsing perk id %q: %w", a, err)
			}
			infos = append(infos, api.DescribePerk(reg, uint32(id)))
		}
	}

	if cfg.Output == config.OutputJSON {
		return api.WriteJSON(out, infos)
	}
	renderPerks(out, infos)
	return nil
}
