package data

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/goccy/go-json"

	"github.com/udisondev/d2go/internal/perk"
)

// LoadEnhancedMap reads an enhanced-perk table: a JSON object mapping an
// enhanced perk hash to its base hash. A missing file yields an empty map.
func LoadEnhancedMap(path string) (perk.EnhancedMap, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("enhanced perk map not found", "path", path)
			return perk.EnhancedMap{}, nil
		}
		return nil, fmt.Errorf("reading enhanced map %s: %w", path, err)
	}
	return ParseEnhancedMap(raw)
}

// ParseEnhancedMap decodes the JSON form accepted by LoadEnhancedMap.
func ParseEnhancedMap(raw []byte) (perk.EnhancedMap, error) {
	var doc map[string]uint32
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding enhanced map: %w", err)
	}
	out := make(perk.EnhancedMap, len(doc))
	for k, base := range doc {
		id, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("parsing enhanced perk id %q: %w", k, err)
		}
		out[uint32(id)] = base
	}
	return out, nil
}
