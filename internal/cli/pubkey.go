package cli

import (
	"context"

	"github.com/hideez/hideezctl/internal/coins"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// PublicKeyParams contains parameters for the PublicKey command
type PublicKeyParams struct {
	Common
	Coin        string
	Path        string
	Curve       string
	ShowDisplay bool
}

// PublicKey exports the BIP-32 public node at a derivation path.
func PublicKey(ctx context.Context, params PublicKeyParams) error {
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

	node, err := client.PublicKey(ctx, hideez.PublicKeyRequest{
		Coin:        coin.Name,
		AddressN:    path,
		Curve:       params.Curve,
		ShowDisplay: params.ShowDisplay,
	})
	if err != nil {
		return err
	}

	return params.render(node)
}
