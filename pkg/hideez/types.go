// Package hideez exposes a typed client for the Hideez hardware wallet.
// All protocol framing, session handling and cryptography live behind the
// Transport; this package only shapes requests and responses.
package hideez

import (
	"encoding/hex"
	"fmt"
)

// Message is a structured device response that can describe itself as a
// field mapping for rendering. Binary fields are hex-encoded.
type Message interface {
	Fields() map[string]any
}

// DeviceInfo describes one enumerated device.
type DeviceInfo struct {
	Path    string `json:"path"`
	Vendor  string `json:"vendor"`
	Product string `json:"product"`
	Session string `json:"session,omitempty"`
}

func (d DeviceInfo) String() string {
	s := fmt.Sprintf("%s - %s %s", d.Path, d.Vendor, d.Product)
	if d.Session != "" {
		s += fmt.Sprintf(" (session %s)", d.Session)
	}
	return s
}

// Features is the device feature/status report.
type Features struct {
	Vendor               string `json:"vendor"`
	MajorVersion         uint32 `json:"major_version"`
	MinorVersion         uint32 `json:"minor_version"`
	PatchVersion         uint32 `json:"patch_version"`
	DeviceID             string `json:"device_id"`
	Label                string `json:"label"`
	Initialized          bool   `json:"initialized"`
	BootloaderMode       bool   `json:"bootloader_mode"`
	PinProtection        bool   `json:"pin_protection"`
	PassphraseProtection bool   `json:"passphrase_protection"`
	Revision             []byte `json:"revision"`
	BootloaderHash       []byte `json:"bootloader_hash"`
}

// Fields returns the feature report as a display mapping with binary
// fields hex-encoded.
func (f *Features) Fields() map[string]any {
	return map[string]any{
		"vendor":                f.Vendor,
		"version":               fmt.Sprintf("%d.%d.%d", f.MajorVersion, f.MinorVersion, f.PatchVersion),
		"device_id":             f.DeviceID,
		"label":                 f.Label,
		"initialized":           f.Initialized,
		"bootloader_mode":       f.BootloaderMode,
		"pin_protection":        f.PinProtection,
		"passphrase_protection": f.PassphraseProtection,
		"revision":              hex.EncodeToString(f.Revision),
		"bootloader_hash":       hex.EncodeToString(f.BootloaderHash),
	}
}

// Address is a derived receive address.
type Address struct {
	Address string `json:"address"`
}

// PublicNode is an exported BIP-32 public node with its serialized form.
type PublicNode struct {
	Depth       uint32 `json:"depth"`
	Fingerprint uint32 `json:"fingerprint"`
	ChildNum    uint32 `json:"child_num"`
	ChainCode   []byte `json:"chain_code"`
	PublicKey   []byte `json:"public_key"`
	Xpub        string `json:"xpub"`
}

// Fields returns the node as a nested mapping, node details under "node".
func (n *PublicNode) Fields() map[string]any {
	return map[string]any{
		"node": map[string]any{
			"depth":       n.Depth,
			"fingerprint": n.Fingerprint,
			"child_num":   n.ChildNum,
			"chain_code":  hex.EncodeToString(n.ChainCode),
			"public_key":  hex.EncodeToString(n.PublicKey),
		},
		"xpub": n.Xpub,
	}
}

// TxInput is a previous output being spent.
type TxInput struct {
	PrevHash   []byte   `json:"prev_hash"`
	PrevIndex  uint32   `json:"prev_index"`
	AddressN   []uint32 `json:"address_n"`
	Amount     uint64   `json:"amount"`
	Sequence   uint32   `json:"sequence"`
	ScriptType string   `json:"script_type"`
}

// TxOutput is a destination of the transaction being built. Exactly one of
// Address and AddressN is set; AddressN marks a change output.
type TxOutput struct {
	Address    string   `json:"address,omitempty"`
	AddressN   []uint32 `json:"address_n,omitempty"`
	Amount     uint64   `json:"amount"`
	ScriptType string   `json:"script_type"`
}

// SignedTx is the result of a transaction-signing flow.
type SignedTx struct {
	Signatures   [][]byte `json:"signatures"`
	SerializedTx []byte   `json:"serialized_tx"`
}

// MessageSignature is the result of signing a message.
type MessageSignature struct {
	Address   string `json:"address"`
	Signature []byte `json:"signature"`
}

// Fields returns the signature as a display mapping, signature base64-free
// hex for symmetric round-tripping with the CLI's hex decoding.
func (m *MessageSignature) Fields() map[string]any {
	return map[string]any{
		"address":   m.Address,
		"signature": hex.EncodeToString(m.Signature),
	}
}

// CipheredKeyValue is the result of a key-value encrypt or decrypt.
type CipheredKeyValue struct {
	Value []byte `json:"value"`
}

// EncryptedMessage is an ECIES-encrypted message envelope.
type EncryptedMessage struct {
	Nonce   []byte `json:"nonce"`
	Message []byte `json:"message"`
	HMAC    []byte `json:"hmac"`
}

// Fields returns the envelope as a display mapping, fields hex-encoded.
func (e *EncryptedMessage) Fields() map[string]any {
	return map[string]any{
		"nonce":   hex.EncodeToString(e.Nonce),
		"message": hex.EncodeToString(e.Message),
		"hmac":    hex.EncodeToString(e.HMAC),
	}
}

// DecryptedMessage is a decrypted message and the signer address, when signed.
type DecryptedMessage struct {
	Message []byte `json:"message"`
	Address string `json:"address,omitempty"`
}

// Fields returns the decrypted payload as a display mapping.
func (d *DecryptedMessage) Fields() map[string]any {
	return map[string]any{
		"message": string(d.Message),
		"address": d.Address,
	}
}

// CosiCommitment is the commit-phase result of a collaborative signature.
type CosiCommitment struct {
	Commitment []byte `json:"commitment"`
	Pubkey     []byte `json:"pubkey"`
}

// Fields returns the commitment as a display mapping, fields hex-encoded.
func (c *CosiCommitment) Fields() map[string]any {
	return map[string]any{
		"commitment": hex.EncodeToString(c.Commitment),
		"pubkey":     hex.EncodeToString(c.Pubkey),
	}
}

// CosiSignature is the sign-phase result of a collaborative signature.
type CosiSignature struct {
	Signature []byte `json:"signature"`
}

// Fields returns the signature as a display mapping, hex-encoded.
func (c *CosiSignature) Fields() map[string]any {
	return map[string]any{
		"signature": hex.EncodeToString(c.Signature),
	}
}
