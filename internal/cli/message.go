package cli

import (
	"context"

	"github.com/hideez/hideezctl/internal/coins"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// SignMessageParams contains parameters for the SignMessage command
type SignMessageParams struct {
	Common
	Coin    string
	Path    string
	Message string
}

// SignMessage signs a freeform message with the key at a derivation path.
func SignMessage(ctx context.Context, params SignMessageParams) error {
	table, err := coins.LoadDefault()
	if err != nil {
		return err
	}
	coin, err := table.Lookup(params.Coin)
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

	sig, err := client.SignMessage(ctx, hideez.SignMessageRequest{
		Coin:     coin.Name,
		AddressN: path,
		Message:  []byte(params.Message),
	})
	if err != nil {
		return err
	}

	return params.render(sig)
}

// VerifyMessageParams contains parameters for the VerifyMessage command
type VerifyMessageParams struct {
	Common
	Coin      string
	Address   string
	Signature string
	Message   string
}

// VerifyMessage checks a message signature against an address. The signature
// argument is base64, with hex accepted as a fallback.
func VerifyMessage(ctx context.Context, params VerifyMessageParams) error {
	table, err := coins.LoadDefault()
	if err != nil {
		return err
	}
	coin, err := table.Lookup(params.Coin)
	if err != nil {
		return err
	}

	sig, err := decodeSignature(params.Signature)
	if err != nil {
		return err
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	valid, err := client.VerifyMessage(ctx, hideez.VerifyMessageRequest{
		Coin:      coin.Name,
		Address:   params.Address,
		Signature: sig,
		Message:   []byte(params.Message),
	})
	if err != nil {
		return err
	}

	return params.render(valid)
}
