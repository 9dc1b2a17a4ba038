// Package coins holds the coin lookup table used for signing and address
// derivation. A built-in table ships with the binary; users may override or
// extend it with a config file in their XDG config directory.
package coins

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/hideez/hideezctl/internal/derrors"
)

//go:embed coins.json
var builtinJSON []byte

// SupportedOverrideNames contains supported override file names
// (in order of preference)
var SupportedOverrideNames = []string{
	"coins.yml",
	"coins.yaml",
	"coins.toml",
	"coins.json",
}

// Coin describes one supported coin.
type Coin struct {
	Name         string `koanf:"name" json:"name"`
	Shortcut     string `koanf:"shortcut" json:"shortcut"`
	Slip44       uint32 `koanf:"slip44" json:"slip44"`
	Segwit       bool   `koanf:"segwit" json:"segwit"`
	BroadcastURL string `koanf:"broadcast_url" json:"broadcast_url"`
}

// FormatBroadcastURL expands the coin's broadcast URL template. The template
// sees the serialized transaction hex as .Tx plus the coin's .Name and
// .Shortcut, with the sprig function set available.
func (c Coin) FormatBroadcastURL(txHex string) (string, error) {
	tmpl, err := template.New("broadcast").Funcs(sprig.TxtFuncMap()).Parse(c.BroadcastURL)
	if err != nil {
		return "", fmt.Errorf("invalid broadcast URL template for %s: %w", c.Name, err)
	}

	var b strings.Builder
	err = tmpl.Execute(&b, map[string]string{
		"Tx":       txHex,
		"Name":     c.Name,
		"Shortcut": c.Shortcut,
	})
	if err != nil {
		return "", fmt.Errorf("failed to expand broadcast URL for %s: %w", c.Name, err)
	}
	return b.String(), nil
}

// Table is a loaded coin table. Lookup is case-insensitive by coin name.
type Table struct {
	coins map[string]Coin
	names []string
}

// Load returns the built-in coin table.
func Load() (*Table, error) {
	list, err := loadList(rawbytes.Provider(builtinJSON), kjson.Parser())
	if err != nil {
		return nil, fmt.Errorf("failed to load built-in coin table: %w", err)
	}

	t := &Table{coins: make(map[string]Coin, len(list))}
	t.merge(list)
	return t, nil
}

// LoadWithOverrides returns the built-in table with entries from an override
// file merged over it. Override entries are matched by name; unknown names
// are added. The file is validated against the coin-table schema first.
func LoadWithOverrides(path string) (*Table, error) {
	t, err := Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		return t, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read coin overrides: %w", err)
	}
	if err := validateOverrides(path, content); err != nil {
		return nil, err
	}

	list, err := loadList(file.Provider(path), parserFor(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load coin overrides %s: %w", path, err)
	}

	t.merge(list)
	return t, nil
}

// LoadDefault returns the table with the user's override file applied when
// one exists in the XDG config directory.
func LoadDefault() (*Table, error) {
	return LoadWithOverrides(DefaultOverridePath())
}

// DefaultOverridePath locates the user override file, or returns an empty
// string when there is none.
func DefaultOverridePath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	for _, name := range SupportedOverrideNames {
		path := filepath.Join(configHome, "hideezctl", name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Lookup finds a coin by name, case-insensitively. An unknown name returns a
// coin lookup error carrying the supported names.
func (t *Table) Lookup(name string) (Coin, error) {
	c, ok := t.coins[strings.ToLower(name)]
	if !ok {
		return Coin{}, derrors.NewCoinLookupError(name, t.Names())
	}
	return c, nil
}

// Names returns the supported coin names, sorted.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	sort.Strings(names)
	return names
}

func (t *Table) merge(list []Coin) {
	for _, c := range list {
		key := strings.ToLower(c.Name)
		if _, exists := t.coins[key]; !exists {
			t.names = append(t.names, c.Name)
		}
		t.coins[key] = c
	}
}

func loadList(provider koanf.Provider, parser koanf.Parser) ([]Coin, error) {
	k := koanf.New(".")
	if err := k.Load(provider, parser); err != nil {
		return nil, err
	}

	var list []Coin
	if err := k.Unmarshal("coins", &list); err != nil {
		return nil, err
	}
	return list, nil
}
