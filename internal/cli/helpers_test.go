package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hideez/hideezctl/internal/logger"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// stubTransport records calls and replays canned responses by method name.
type stubTransport struct {
	calls     []string
	params    []any
	responses map[string]any
	err       error
	closed    bool
}

func (s *stubTransport) Call(_ context.Context, method string, params, result any) error {
	s.calls = append(s.calls, method)
	s.params = append(s.params, params)
	if s.err != nil {
		return s.err
	}
	if resp, ok := s.responses[method]; ok {
		b, err := json.Marshal(resp)
		if err != nil {
			return err
		}
		return json.Unmarshal(b, result)
	}
	return nil
}

func (s *stubTransport) Close() error {
	s.closed = true
	return nil
}

// testCommon wires a stubbed device client and an output buffer into Common.
func testCommon(t *testing.T, stub *stubTransport) (Common, *bytes.Buffer) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	out := &bytes.Buffer{}
	return Common{
		Client: hideez.NewClient(stub, logger.New(false, io.Discard)),
		Out:    out,
	}, out
}

func TestDecodeSignature(t *testing.T) {
	// base64 is preferred
	sig, err := decodeSignature("3q2+7w==")
	require.NoError(t, err)
	require.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, sig)

	// hex works as fallback for strings that are not valid base64
	sig, err = decodeSignature("00ffab")
	require.NoError(t, err)
	require.Equal(t, []byte{0x00, 0xff, 0xab}, sig)

	_, err = decodeSignature("!!not-a-signature!!")
	require.Error(t, err)
}

func TestDecodeHex(t *testing.T) {
	b, err := decodeHex("payload", "cafe")
	require.NoError(t, err)
	require.Equal(t, []byte{0xca, 0xfe}, b)

	_, err = decodeHex("payload", "xyz")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}
