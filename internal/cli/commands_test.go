package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hideez/hideezctl/pkg/hideez"
)

func TestPing(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.Ping": map[string]any{"message": "are you alive"},
	}}
	common, out := testCommon(t, stub)

	err := Ping(context.Background(), PingParams{
		Common:           common,
		Message:          "are you alive",
		ButtonProtection: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "are you alive\n", out.String())

	req, ok := stub.params[0].(hideez.PingRequest)
	require.True(t, ok)
	assert.True(t, req.ButtonProtection)
	assert.False(t, req.PinProtection)
}

func TestFeatures_TextAndJSONCarrySameFields(t *testing.T) {
	response := &hideez.Features{
		Vendor:       "hideez.com",
		MajorVersion: 2,
		MinorVersion: 1,
		PatchVersion: 0,
		DeviceID:     "A13F",
		Label:        "my key",
		Initialized:  true,
		Revision:     []byte{0xde, 0xad},
	}

	stub := &stubTransport{responses: map[string]any{"Hideez.GetFeatures": response}}
	common, out := testCommon(t, stub)

	require.NoError(t, Features(context.Background(), FeaturesParams{Common: common}))
	text := out.String()
	assert.Contains(t, text, "device_id:")
	assert.Contains(t, text, "A13F")
	assert.Contains(t, text, "2.1.0")
	assert.Contains(t, text, "dead")

	stub = &stubTransport{responses: map[string]any{"Hideez.GetFeatures": response}}
	common, out = testCommon(t, stub)
	common.JSON = true

	require.NoError(t, Features(context.Background(), FeaturesParams{Common: common}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, "A13F", decoded["device_id"])
	assert.Equal(t, "2.1.0", decoded["version"])
	assert.Equal(t, "dead", decoded["revision"])
}

func TestAddress_DefaultScriptTypeFromPath(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.GetAddress": &hideez.Address{Address: "3P14159f73E4gFr7JterCCQh9QjiTjiZrG"},
	}}
	common, out := testCommon(t, stub)

	err := Address(context.Background(), AddressParams{
		Common: common,
		Coin:   "Bitcoin",
		Path:   "m/49'/0'/0'/0/0",
	})
	require.NoError(t, err)

	req, ok := stub.params[0].(hideez.AddressRequest)
	require.True(t, ok)
	assert.Equal(t, "SPENDP2SHWITNESS", req.ScriptType)
	assert.Equal(t, "3P14159f73E4gFr7JterCCQh9QjiTjiZrG\n", out.String())
}

func TestAddress_ExplicitScriptType(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.GetAddress": &hideez.Address{Address: "bc1qxy"},
	}}
	common, _ := testCommon(t, stub)

	err := Address(context.Background(), AddressParams{
		Common:     common,
		Coin:       "Bitcoin",
		Path:       "m/84'/0'/0'/0/0",
		ScriptType: "segwit",
	})
	require.NoError(t, err)

	req, ok := stub.params[0].(hideez.AddressRequest)
	require.True(t, ok)
	assert.Equal(t, "SPENDWITNESS", req.ScriptType)
}

func TestPublicKey_RendersNodeAndXpub(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.GetPublicKey": &hideez.PublicNode{
			Depth:     5,
			ChainCode: []byte{0xca, 0xfe},
			PublicKey: []byte{0x02, 0x88},
			Xpub:      "xpub661MyMwAqRbcF",
		},
	}}
	common, out := testCommon(t, stub)

	err := PublicKey(context.Background(), PublicKeyParams{
		Common: common,
		Coin:   "Bitcoin",
		Path:   "m/44'/0'/0'",
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "node.chain_code:")
	assert.Contains(t, text, "cafe")
	assert.Contains(t, text, "xpub661MyMwAqRbcF")
}

func TestCipherKeyValue_EncryptPrintsHex(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.CipherKeyValue": &hideez.CipheredKeyValue{Value: []byte{0xab, 0xcd}},
	}}
	common, out := testCommon(t, stub)

	err := CipherKeyValue(context.Background(), CipherKeyValueParams{
		Common:  common,
		Path:    "m/10016'/0",
		Key:     "my secret note",
		Value:   "plaintext",
		Encrypt: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "abcd\n", out.String())

	req, ok := stub.params[0].(hideez.CipherKeyValueRequest)
	require.True(t, ok)
	assert.True(t, req.Encrypt)
	assert.Equal(t, []byte("plaintext"), req.Value)
}

func TestCipherKeyValue_DecryptRequiresHexValue(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.CipherKeyValue": &hideez.CipheredKeyValue{Value: []byte("plaintext")},
	}}
	common, out := testCommon(t, stub)

	err := CipherKeyValue(context.Background(), CipherKeyValueParams{
		Common:  common,
		Path:    "m/10016'/0",
		Key:     "my secret note",
		Value:   "abcd",
		Encrypt: false,
	})
	require.NoError(t, err)
	assert.Equal(t, "plaintext\n", out.String())

	common, _ = testCommon(t, stub)
	err = CipherKeyValue(context.Background(), CipherKeyValueParams{
		Common:  common,
		Path:    "m/10016'/0",
		Key:     "my secret note",
		Value:   "not hex at all",
		Encrypt: false,
	})
	require.Error(t, err)
}

func TestCosiCommit(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.CosiCommit": &hideez.CosiCommitment{
			Commitment: []byte{0x11},
			Pubkey:     []byte{0x22},
		},
	}}
	common, out := testCommon(t, stub)

	err := CosiCommit(context.Background(), CosiCommitParams{
		Common: common,
		Path:   "m/10018'/0'",
		Data:   "deadbeef",
	})
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "commitment:")
	assert.Contains(t, text, "11")
	assert.Contains(t, text, "pubkey:")
	assert.Contains(t, text, "22")
}

func TestCosiSign_DecodesAllPayloads(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.CosiSign": &hideez.CosiSignature{Signature: []byte{0x33}},
	}}
	common, _ := testCommon(t, stub)

	err := CosiSign(context.Background(), CosiSignParams{
		Common:           common,
		Path:             "m/10018'/0'",
		Data:             "dead",
		GlobalCommitment: "beef",
		GlobalPubkey:     "cafe",
	})
	require.NoError(t, err)

	req, ok := stub.params[0].(hideez.CosiSignRequest)
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad}, req.Data)
	assert.Equal(t, []byte{0xbe, 0xef}, req.GlobalCommitment)
	assert.Equal(t, []byte{0xca, 0xfe}, req.GlobalPubkey)
}

func TestVersion(t *testing.T) {
	out := &bytes.Buffer{}

	require.NoError(t, Version(VersionParams{Common: Common{Out: out}}))
	text := out.String()
	assert.Contains(t, text, "version:")
	assert.Contains(t, text, "build_time:")
	assert.Contains(t, text, "git_commit:")
}
