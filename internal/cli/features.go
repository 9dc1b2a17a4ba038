package cli

import "context"

// FeaturesParams contains parameters for the Features command
type FeaturesParams struct {
	Common
}

// Features queries and prints the device feature/status report.
func Features(ctx context.Context, params FeaturesParams) error {
	client, err := params.client()
	if err != nil {
		return err
	}

	features, err := client.Features(ctx)
	if err != nil {
		return err
	}

	return params.render(features)
}
