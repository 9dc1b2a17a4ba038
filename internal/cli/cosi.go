package cli

import (
	"context"

	"github.com/hideez/hideezctl/pkg/hideez"
)

// CosiCommitParams contains parameters for the CosiCommit command
type CosiCommitParams struct {
	Common
	Path string
	Data string
}

// CosiCommit runs the commit phase of a collaborative signature and prints
// the device's commitment and public key.
func CosiCommit(ctx context.Context, params CosiCommitParams) error {
	path, err := parsePath(params.Path)
	if err != nil {
		return err
	}

	data, err := decodeHex("data", params.Data)
	if err != nil {
		return err
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	commitment, err := client.CosiCommit(ctx, hideez.CosiCommitRequest{
		AddressN: path,
		Data:     data,
	})
	if err != nil {
		return err
	}

	return params.render(commitment)
}

// CosiSignParams contains parameters for the CosiSign command
type CosiSignParams struct {
	Common
	Path             string
	Data             string
	GlobalCommitment string
	GlobalPubkey     string
}

// CosiSign runs the sign phase of a collaborative signature using the
// aggregated commitment and public key from all participants.
func CosiSign(ctx context.Context, params CosiSignParams) error {
	path, err := parsePath(params.Path)
	if err != nil {
		return err
	}

	data, err := decodeHex("data", params.Data)
	if err != nil {
		return err
	}
	globalCommitment, err := decodeHex("global-commitment", params.GlobalCommitment)
	if err != nil {
		return err
	}
	globalPubkey, err := decodeHex("global-pubkey", params.GlobalPubkey)
	if err != nil {
		return err
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	sig, err := client.CosiSign(ctx, hideez.CosiSignRequest{
		AddressN:         path,
		Data:             data,
		GlobalCommitment: globalCommitment,
		GlobalPubkey:     globalPubkey,
	})
	if err != nil {
		return err
	}

	return params.render(sig)
}
