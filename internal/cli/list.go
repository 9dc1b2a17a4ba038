package cli

import (
	"context"

	"github.com/hideez/hideezctl/internal/transport"
)

// ListParams contains parameters for the List command
type ListParams struct {
	Common
}

// List enumerates connected devices, one per line.
func List(ctx context.Context, params ListParams) error {
	devices, err := transport.Enumerate(ctx, params.Device, params.logger())
	if err != nil {
		return err
	}

	return params.render(devices)
}
