// Package bip32 converts hierarchical derivation path strings to key indexes.
package bip32

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hideez/hideezctl/internal/derrors"
)

// HardenedFlag is the BIP-32 hardened-derivation bit.
const HardenedFlag uint32 = 0x80000000

// Harden applies the hardened-derivation bit to an index.
// Applying it to an already-hardened index is a no-op.
func Harden(i uint32) uint32 {
	return i | HardenedFlag
}

// IsHardened reports whether an index carries the hardened bit.
func IsHardened(i uint32) bool {
	return i&HardenedFlag != 0
}

// ParsePath converts a path string such as m/44'/0'/0'/0/0 into an ordered
// sequence of key indexes. Components suffixed with ', h or H are hardened.
// An empty path (or a bare "m") denotes the master node and yields no indexes.
func ParsePath(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "/")
	if s == "" || s == "m" || s == "M" {
		return []uint32{}, nil
	}
	if strings.HasPrefix(s, "m/") || strings.HasPrefix(s, "M/") {
		s = s[2:]
	}

	parts := strings.Split(s, "/")
	path := make([]uint32, 0, len(parts))
	for _, part := range parts {
		idx, err := parseComponent(part)
		if err != nil {
			return nil, derrors.NewPathSyntaxError(s, fmt.Sprintf("invalid path component %q", part), err)
		}
		path = append(path, idx)
	}
	return path, nil
}

func parseComponent(part string) (uint32, error) {
	if part == "" {
		return 0, fmt.Errorf("empty component")
	}

	hardened := false
	switch part[len(part)-1] {
	case '\'', 'h', 'H':
		hardened = true
		part = part[:len(part)-1]
	}

	v, err := strconv.ParseUint(part, 10, 32)
	if err != nil {
		return 0, err
	}
	if hardened && v >= uint64(HardenedFlag) {
		return 0, fmt.Errorf("index %d out of range for hardened derivation", v)
	}

	idx := uint32(v)
	if hardened {
		idx = Harden(idx)
	}
	return idx, nil
}

// FormatPath renders a sequence of key indexes back to the m/44'/0'/... form.
func FormatPath(path []uint32) string {
	var b strings.Builder
	b.WriteString("m")
	for _, idx := range path {
		b.WriteString("/")
		if IsHardened(idx) {
			b.WriteString(strconv.FormatUint(uint64(idx&^HardenedFlag), 10))
			b.WriteString("'")
		} else {
			b.WriteString(strconv.FormatUint(uint64(idx), 10))
		}
	}
	return b.String()
}
