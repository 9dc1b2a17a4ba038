package cli

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hideez/hideezctl/internal/bip32"
	"github.com/hideez/hideezctl/internal/coins"
	"github.com/hideez/hideezctl/internal/derrors"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// defaultSequence is the sequence number applied to inputs when the prompt
// is left empty; it keeps replace-by-fee possible while opting out of
// relative locktime.
const defaultSequence uint32 = 0xFFFFFFFD

// SignTxParams contains parameters for the SignTx command
type SignTxParams struct {
	Common
	Coin     string
	Version  uint32
	LockTime uint32
}

// SignTx collects transaction inputs and outputs interactively, signs the
// transaction in a single device call, and prints the serialized result with
// a broadcast URL for the coin.
func SignTx(ctx context.Context, params SignTxParams) error {
	table, err := coins.LoadDefault()
	if err != nil {
		return err
	}
	coin, err := table.Lookup(params.Coin)
	if err != nil {
		return err
	}

	collector := newTxCollector(params.in(), params.out())
	inputs, err := collector.collectInputs()
	if err != nil {
		return err
	}
	outputs, err := collector.collectOutputs()
	if err != nil {
		return err
	}

	client, err := params.client()
	if err != nil {
		return err
	}
	// The signing flow holds the device for several confirmation rounds;
	// release it as soon as the call returns.
	defer func() { _ = client.Close() }()

	signed, err := client.SignTx(ctx, hideez.SignTxRequest{
		Coin:     coin.Name,
		Inputs:   inputs,
		Outputs:  outputs,
		Version:  params.Version,
		LockTime: params.LockTime,
	})
	if err != nil {
		return err
	}

	txHex := hex.EncodeToString(signed.SerializedTx)
	broadcastURL, err := coin.FormatBroadcastURL(txHex)
	if err != nil {
		return err
	}

	signatures := make([]string, len(signed.Signatures))
	for i, sig := range signed.Signatures {
		signatures[i] = hex.EncodeToString(sig)
	}

	return params.render(map[string]any{
		"serialized_tx": txHex,
		"signatures":    signatures,
		"broadcast_url": broadcastURL,
	})
}

// txCollector reads transaction inputs and outputs from interactive prompts.
// An empty answer to the leading prompt of an entry ends the loop.
type txCollector struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newTxCollector(in io.Reader, out io.Writer) *txCollector {
	return &txCollector{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *txCollector) prompt(label string) string {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(c.scanner.Text())
}

func (c *txCollector) collectInputs() ([]hideez.TxInput, error) {
	var inputs []hideez.TxInput
	for {
		prev := c.prompt("Previous output to spend (txid:vout, empty to finish)")
		if prev == "" {
			return inputs, nil
		}

		prevHash, prevIndex, err := parsePrevOutput(prev)
		if err != nil {
			return nil, err
		}

		path, err := bip32.ParsePath(c.prompt("BIP-32 path to derive the key"))
		if err != nil {
			return nil, err
		}

		amount, err := parseAmount(c.prompt("Amount (satoshis)"))
		if err != nil {
			return nil, err
		}

		sequence := defaultSequence
		if s := c.prompt(fmt.Sprintf("Sequence number [%d]", defaultSequence)); s != "" {
			v, err := strconv.ParseUint(s, 10, 32)
			if err != nil {
				return nil, derrors.NewPayloadError("sequence", "invalid sequence number", err)
			}
			sequence = uint32(v)
		}

		scriptType, err := c.promptScriptType(hideez.DefaultScriptType(path))
		if err != nil {
			return nil, err
		}

		inputs = append(inputs, hideez.TxInput{
			PrevHash:   prevHash,
			PrevIndex:  prevIndex,
			AddressN:   path,
			Amount:     amount,
			Sequence:   sequence,
			ScriptType: scriptType.InputType(),
		})
	}
}

func (c *txCollector) collectOutputs() ([]hideez.TxOutput, error) {
	var outputs []hideez.TxOutput
	for {
		output := hideez.TxOutput{}
		defaultType := hideez.ScriptAddress

		address := c.prompt("Output address (empty for a change output)")
		if address == "" {
			pathStr := c.prompt("BIP-32 path of the change output (empty to finish)")
			if pathStr == "" {
				return outputs, nil
			}
			path, err := bip32.ParsePath(pathStr)
			if err != nil {
				return nil, err
			}
			output.AddressN = path
			defaultType = hideez.DefaultScriptType(path)
		} else {
			output.Address = address
		}

		amount, err := parseAmount(c.prompt("Amount to send (satoshis)"))
		if err != nil {
			return nil, err
		}
		output.Amount = amount

		scriptType, err := c.promptScriptType(defaultType)
		if err != nil {
			return nil, err
		}
		output.ScriptType = scriptType.OutputType()

		outputs = append(outputs, output)
	}
}

func (c *txCollector) promptScriptType(def hideez.ScriptType) (hideez.ScriptType, error) {
	label := fmt.Sprintf("Script type (%s) [%s]", strings.Join(hideez.ScriptTypeNames(), ", "), def)
	if s := c.prompt(label); s != "" {
		return hideez.ParseScriptType(s)
	}
	return def, nil
}

// parsePrevOutput splits a txid:vout reference into the transaction hash and
// output index.
func parsePrevOutput(s string) ([]byte, uint32, error) {
	idx := strings.LastIndex(s, ":")
	if idx < 0 {
		return nil, 0, derrors.NewPayloadError("prev-output", "expected txid:vout", nil)
	}

	hash, err := hex.DecodeString(s[:idx])
	if err != nil || len(hash) != 32 {
		return nil, 0, derrors.NewPayloadError("prev-output", "transaction id must be 32 hex-encoded bytes", err)
	}

	vout, err := strconv.ParseUint(s[idx+1:], 10, 32)
	if err != nil {
		return nil, 0, derrors.NewPayloadError("prev-output", "invalid output index", err)
	}

	return hash, uint32(vout), nil
}

func parseAmount(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, derrors.NewPayloadError("amount", "amount must be a whole number of satoshis", err)
	}
	return v, nil
}
