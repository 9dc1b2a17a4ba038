package cli

import "github.com/hideez/hideezctl/pkg/version"

// VersionParams contains parameters for the Version command
type VersionParams struct {
	Common
}

// Version prints the client build identity. No device is contacted.
func Version(params VersionParams) error {
	return params.render(version.Info())
}
