package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hideez/hideezctl/internal/derrors"
	"github.com/hideez/hideezctl/pkg/hideez"
)

func TestSignMessage(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.SignMessage": &hideez.MessageSignature{
			Address:   "1BitcoinEaterAddressDontSendf59kuE",
			Signature: []byte{0xde, 0xad},
		},
	}}
	common, out := testCommon(t, stub)

	err := SignMessage(context.Background(), SignMessageParams{
		Common:  common,
		Coin:    "Bitcoin",
		Path:    "m/44'/0'/0'/0/0",
		Message: "hello world",
	})
	require.NoError(t, err)

	require.Equal(t, []string{"Hideez.SignMessage"}, stub.calls)
	req, ok := stub.params[0].(hideez.SignMessageRequest)
	require.True(t, ok)
	assert.Equal(t, []byte("hello world"), req.Message)
	assert.Equal(t, []uint32{0x8000002C, 0x80000000, 0x80000000, 0, 0}, req.AddressN)

	assert.Contains(t, out.String(), "dead")
	assert.Contains(t, out.String(), "1BitcoinEaterAddressDontSendf59kuE")
}

func TestVerifyMessage_Base64Signature(t *testing.T) {
	stub := &stubTransport{responses: map[string]any{
		"Hideez.VerifyMessage": map[string]any{"valid": true},
	}}
	common, out := testCommon(t, stub)

	err := VerifyMessage(context.Background(), VerifyMessageParams{
		Common:    common,
		Coin:      "Bitcoin",
		Address:   "1BitcoinEaterAddressDontSendf59kuE",
		Signature: "3q2+7w==",
		Message:   "hello world",
	})
	require.NoError(t, err)

	req, ok := stub.params[0].(hideez.VerifyMessageRequest)
	require.True(t, ok)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, req.Signature)
	assert.Contains(t, out.String(), "true")
}

func TestVerifyMessage_BadSignature(t *testing.T) {
	stub := &stubTransport{}
	common, _ := testCommon(t, stub)

	err := VerifyMessage(context.Background(), VerifyMessageParams{
		Common:    common,
		Coin:      "Bitcoin",
		Address:   "1BitcoinEaterAddressDontSendf59kuE",
		Signature: "!!bad!!",
		Message:   "hello world",
	})
	require.Error(t, err)

	var payloadErr *derrors.PayloadError
	require.ErrorAs(t, err, &payloadErr)
	assert.Empty(t, stub.calls)
}

func TestSignMessage_UnknownCoin(t *testing.T) {
	stub := &stubTransport{}
	common, _ := testCommon(t, stub)

	err := SignMessage(context.Background(), SignMessageParams{
		Common: common,
		Coin:   "NotACoin",
	})
	require.Error(t, err)

	var lookupErr *derrors.CoinLookupError
	require.ErrorAs(t, err, &lookupErr)
}
