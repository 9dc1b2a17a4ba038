package cli

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"os"

	"github.com/hideez/hideezctl/internal/bip32"
	"github.com/hideez/hideezctl/internal/derrors"
	"github.com/hideez/hideezctl/internal/logger"
	"github.com/hideez/hideezctl/internal/render"
	"github.com/hideez/hideezctl/internal/transport"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// Common holds the global options shared by every sub-command.
type Common struct {
	Device  string
	Verbose bool
	JSON    bool

	// Client bypasses device resolution when set; used by tests.
	Client *hideez.Client
	// Out and In default to stdout/stdin when nil.
	Out io.Writer
	In  io.Reader
}

func (c *Common) out() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

func (c *Common) in() io.Reader {
	if c.In != nil {
		return c.In
	}
	return os.Stdin
}

func (c *Common) logger() *logger.Logger {
	return logger.New(c.Verbose, os.Stderr)
}

// client resolves the device selector into a connected client. The caller
// owns the returned client for the rest of the invocation.
func (c *Common) client() (*hideez.Client, error) {
	if c.Client != nil {
		return c.Client, nil
	}

	log := c.logger()
	t, err := transport.Connect(c.Device, log)
	if err != nil {
		return nil, err
	}
	return hideez.NewClient(t, log), nil
}

func (c *Common) render(v any) error {
	return render.Render(c.out(), v, c.JSON)
}

// parsePath converts a derivation path argument, tolerating an empty string
// (master node).
func parsePath(s string) ([]uint32, error) {
	return bip32.ParsePath(s)
}

// decodeHex decodes a hex CLI argument, naming the field in the error.
func decodeHex(field, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, derrors.NewPayloadError(field, "expected hex-encoded " + field, err)
	}
	return b, nil
}

// decodeSignature decodes a signature argument: base64 first, the
// conventional interchange encoding for signed messages, hex as fallback.
func decodeSignature(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, derrors.NewPayloadError("signature", "expected base64 or hex-encoded signature", err)
	}
	return b, nil
}
