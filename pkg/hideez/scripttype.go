package hideez

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hideez/hideezctl/internal/bip32"
)

// ScriptType is the spending-condition category of a transaction input or
// output, as selected on the command line.
type ScriptType string

// Supported script types.
const (
	ScriptAddress    ScriptType = "address"
	ScriptSegwit     ScriptType = "segwit"
	ScriptP2SHSegwit ScriptType = "p2sh-segwit"
)

// inputScriptTypes maps CLI choices to the wire enumeration for inputs.
var inputScriptTypes = map[ScriptType]string{
	ScriptAddress:    "SPENDADDRESS",
	ScriptSegwit:     "SPENDWITNESS",
	ScriptP2SHSegwit: "SPENDP2SHWITNESS",
}

// outputScriptTypes maps CLI choices to the wire enumeration for outputs.
var outputScriptTypes = map[ScriptType]string{
	ScriptAddress:    "PAYTOADDRESS",
	ScriptSegwit:     "PAYTOWITNESS",
	ScriptP2SHSegwit: "PAYTOP2SHWITNESS",
}

// ParseScriptType validates a CLI script-type choice.
func ParseScriptType(s string) (ScriptType, error) {
	t := ScriptType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := inputScriptTypes[t]; !ok {
		return "", fmt.Errorf("unknown script type %q, supported: %s", s, strings.Join(ScriptTypeNames(), ", "))
	}
	return t, nil
}

// InputType returns the wire enumeration value for spending an input.
func (t ScriptType) InputType() string {
	return inputScriptTypes[t]
}

// OutputType returns the wire enumeration value for paying an output.
func (t ScriptType) OutputType() string {
	return outputScriptTypes[t]
}

// ScriptTypeNames returns the supported CLI choices, sorted.
func ScriptTypeNames() []string {
	names := make([]string, 0, len(inputScriptTypes))
	for t := range inputScriptTypes {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// DefaultScriptType selects the script type implied by a derivation path:
// p2sh-segwit when the first component is the hardened purpose 49 (BIP-49),
// plain address otherwise.
func DefaultScriptType(path []uint32) ScriptType {
	if len(path) > 0 && path[0] == bip32.Harden(49) {
		return ScriptP2SHSegwit
	}
	return ScriptAddress
}
