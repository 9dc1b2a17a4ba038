package cli

import (
	"context"
	"encoding/hex"

	"github.com/hideez/hideezctl/internal/coins"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// CipherKeyValueParams contains parameters for the key-value cipher commands
type CipherKeyValueParams struct {
	Common
	Path    string
	Key     string
	Value   string
	Encrypt bool
}

// CipherKeyValue encrypts or decrypts a value under a named key derived at a
// path. Encrypted results print hex-encoded, decrypted results as text.
func CipherKeyValue(ctx context.Context, params CipherKeyValueParams) error {
	path, err := parsePath(params.Path)
	if err != nil {
		return err
	}

	value := []byte(params.Value)
	if !params.Encrypt {
		value, err = decodeHex("value", params.Value)
		if err != nil {
			return err
		}
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	result, err := client.CipherKeyValue(ctx, hideez.CipherKeyValueRequest{
		AddressN: path,
		Key:      params.Key,
		Value:    value,
		Encrypt:  params.Encrypt,
	})
	if err != nil {
		return err
	}

	if params.Encrypt {
		return params.render(hex.EncodeToString(result.Value))
	}
	return params.render(string(result.Value))
}

// EncryptMessageParams contains parameters for the EncryptMessage command
type EncryptMessageParams struct {
	Common
	Coin        string
	Pubkey      string
	Message     string
	DisplayOnly bool
	Path        string
}

// EncryptMessage encrypts and signs a message to a recipient public key.
func EncryptMessage(ctx context.Context, params EncryptMessageParams) error {
	table, err := coins.LoadDefault()
	if err != nil {
		return err
	}
	coin, err := table.Lookup(params.Coin)
	if err != nil {
		return err
	}

	pubkey, err := decodeHex("pubkey", params.Pubkey)
	if err != nil {
		return err
	}

	path, err := parsePath(params.Path)
	if err != nil {
		return err
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	envelope, err := client.EncryptMessage(ctx, hideez.EncryptMessageRequest{
		Coin:        coin.Name,
		Pubkey:      pubkey,
		Message:     []byte(params.Message),
		DisplayOnly: params.DisplayOnly,
		AddressN:    path,
	})
	if err != nil {
		return err
	}

	return params.render(envelope)
}

// DecryptMessageParams contains parameters for the DecryptMessage command
type DecryptMessageParams struct {
	Common
	Path    string
	Payload string
}

// DecryptMessage decrypts a received message envelope.
func DecryptMessage(ctx context.Context, params DecryptMessageParams) error {
	path, err := parsePath(params.Path)
	if err != nil {
		return err
	}

	payload, err := decodeHex("payload", params.Payload)
	if err != nil {
		return err
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	msg, err := client.DecryptMessage(ctx, hideez.DecryptMessageRequest{
		AddressN: path,
		Payload:  payload,
	})
	if err != nil {
		return err
	}

	return params.render(msg)
}
