package cli

import (
	"context"

	"github.com/hideez/hideezctl/internal/coins"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// AddressParams contains parameters for the Address command
type AddressParams struct {
	Common
	Coin        string
	Path        string
	ScriptType  string
	ShowDisplay bool
}

// Address derives a receive address at a derivation path and prints it.
// When no script type is given, the path's purpose component selects one.
func Address(ctx context.Context, params AddressParams) error {
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

	scriptType := hideez.DefaultScriptType(path)
	if params.ScriptType != "" {
		scriptType, err = hideez.ParseScriptType(params.ScriptType)
		if err != nil {
			return err
		}
	}

	client, err := params.client()
	if err != nil {
		return err
	}

	addr, err := client.Address(ctx, hideez.AddressRequest{
		Coin:        coin.Name,
		AddressN:    path,
		ScriptType:  scriptType.InputType(),
		ShowDisplay: params.ShowDisplay,
	})
	if err != nil {
		return err
	}

	return params.render(addr.Address)
}
