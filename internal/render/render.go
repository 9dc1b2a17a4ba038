// Package render formats device responses for human or machine consumption.
// Both modes render the same normalized value, so no information is lost by
// switching between them.
package render

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hideez/hideezctl/pkg/hideez"
)

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("15"))
)

// Render writes a response value to w, as indented JSON when asJSON is set
// and as human-readable text otherwise.
func Render(w io.Writer, v any, asJSON bool) error {
	n := normalize(v)
	if asJSON {
		out, err := json.MarshalIndent(n, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode response: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	return renderText(w, n)
}

// normalize converts a response into the shape both output modes share:
// protocol messages become their field mappings, byte slices hex-encode,
// and containers are normalized recursively.
func normalize(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case hideez.Message:
		return normalize(val.Fields())
	case []byte:
		return hex.EncodeToString(val)
	case map[string]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[k] = normalize(inner)
		}
		return m
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		seq := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			seq[i] = normalize(rv.Index(i).Interface())
		}
		return seq
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	}
	return v
}

func renderText(w io.Writer, v any) error {
	var b strings.Builder

	switch val := v.(type) {
	case map[string]any:
		writeMapping(&b, val)
	case []any:
		for _, elem := range val {
			b.WriteString(stringify(elem))
			b.WriteString("\n")
		}
	default:
		b.WriteString(stringify(v))
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeMapping prints key: value pairs sorted by key. Values that are
// themselves mappings flatten one level to outer.inner: value.
func writeMapping(b *strings.Builder, m map[string]any) {
	for _, k := range sortedKeys(m) {
		switch inner := m[k].(type) {
		case map[string]any:
			for _, ik := range sortedKeys(inner) {
				writePair(b, k + "." + ik, inner[ik])
			}
		default:
			writePair(b, k, m[k])
		}
	}
}

func writePair(b *strings.Builder, key string, value any) {
	b.WriteString(keyStyle.Render(key + ":"))
	b.WriteString(" ")
	b.WriteString(valueStyle.Render(stringify(value)))
	b.WriteString("\n")
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
