package cli

import (
	"context"

	"github.com/hideez/hideezctl/pkg/hideez"
)

// PingParams contains parameters for the Ping command
type PingParams struct {
	Common
	Message              string
	ButtonProtection     bool
	PinProtection        bool
	PassphraseProtection bool
}

// Ping round-trips a message through the device, exercising the selected
// protections, and prints the echoed message.
func Ping(ctx context.Context, params PingParams) error {
	client, err := params.client()
	if err != nil {
		return err
	}

	msg, err := client.Ping(ctx, hideez.PingRequest{
		Message:              params.Message,
		ButtonProtection:     params.ButtonProtection,
		PinProtection:        params.PinProtection,
		PassphraseProtection: params.PassphraseProtection,
	})
	if err != nil {
		return err
	}

	return params.render(msg)
}
