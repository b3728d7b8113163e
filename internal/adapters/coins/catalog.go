package coins

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/randomtoy/change-game/internal/domain"
	"github.com/randomtoy/change-game/internal/ports"
)

//go:embed data/coins.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Coins []coinEntry `yaml:"coins"`
}

type coinEntry struct {
	Key    string `yaml:"key"`
	Cents  int    `yaml:"cents"`
	Name   string `yaml:"name"`
	Plural string `yaml:"plural"`
	Glyph  string `yaml:"glyph"`
}

// Catalog serves coin display metadata parsed from a YAML document.
type Catalog struct {
	raw   []byte
	once  sync.Once
	coins []ports.Coin
	err   error
}

// NewEmbeddedCatalog returns the catalog shipped with the binary.
func NewEmbeddedCatalog() *Catalog {
	return &Catalog{raw: embeddedCatalog}
}

// NewCatalog returns a catalog backed by the given YAML document.
func NewCatalog(raw []byte) *Catalog {
	return &Catalog{raw: raw}
}

func (c *Catalog) init() {
	c.coins, c.err = parse(c.raw)
}

func (c *Catalog) Coins(_ context.Context) ([]ports.Coin, error) {
	c.once.Do(c.init)
	if c.err != nil {
		return nil, c.err
	}
	out := make([]ports.Coin, len(c.coins))
	copy(out, c.coins)
	return out, nil
}

func parse(raw []byte) ([]ports.Coin, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse coin catalog: %w", err)
	}

	byDenom := make(map[domain.Denomination]ports.Coin, len(domain.Denominations))
	for _, e := range f.Coins {
		d, err := domain.ParseDenomination(e.Key)
		if err != nil {
			return nil, fmt.Errorf("coin catalog entry %q: %w", e.Key, err)
		}
		if e.Cents != d.Cents() {
			return nil, fmt.Errorf("coin catalog entry %q: cents %d, want %d", e.Key, e.Cents, d.Cents())
		}
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("coin catalog entry %q: name is required", e.Key)
		}
		if _, dup := byDenom[d]; dup {
			return nil, fmt.Errorf("coin catalog entry %q: duplicate", e.Key)
		}
		plural := e.Plural
		if plural == "" {
			plural = e.Name + "s"
		}
		byDenom[d] = ports.Coin{Denomination: d, Name: e.Name, Plural: plural, Glyph: e.Glyph}
	}

	out := make([]ports.Coin, 0, len(domain.Denominations))
	for _, d := range domain.Denominations {
		c, ok := byDenom[d]
		if !ok {
			return nil, fmt.Errorf("coin catalog: missing %s", d)
		}
		out = append(out, c)
	}
	return out, nil
}
