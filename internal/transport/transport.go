// Package transport resolves device selectors and connects to the Hideez
// bridge daemon over JSON-RPC. Protocol framing beyond JSON-RPC, session
// handshakes and USB/HID specifics all live in the bridge.
package transport

import (
	"context"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"

	"github.com/hideez/hideezctl/internal/derrors"
	"github.com/hideez/hideezctl/internal/logger"
	"github.com/hideez/hideezctl/pkg/hideez"
)

// DefaultBridgeSocket is where the bridge daemon listens when no device
// selector is given.
const DefaultBridgeSocket = "/run/hideez/bridge.sock"

// defaultBridgeSocket is swapped out by tests that run their own bridge.
var defaultBridgeSocket = DefaultBridgeSocket

// endpoint is a parsed device selector.
type endpoint struct {
	network string
	address string
}

// parseSelector maps a device selector to a dialable endpoint.
// Supported forms: tcp:host:port, unix:/path, bare filesystem path.
func parseSelector(selector string) (endpoint, error) {
	selector = strings.TrimSpace(selector)
	switch {
	case selector == "":
		return endpoint{network: "unix", address: defaultBridgeSocket}, nil
	case strings.HasPrefix(selector, "tcp:"):
		addr := selector[len("tcp:"):]
		if _, _, err := net.SplitHostPort(addr); err != nil {
			return endpoint{}, err
		}
		return endpoint{network: "tcp", address: addr}, nil
	case strings.HasPrefix(selector, "unix:"):
		return endpoint{network: "unix", address: selector[len("unix:"):]}, nil
	default:
		return endpoint{network: "unix", address: selector}, nil
	}
}

// rpcTransport adapts a net/rpc client to the hideez.Transport contract.
type rpcTransport struct {
	client *rpc.Client
}

func (t *rpcTransport) Call(ctx context.Context, method string, params, result any) error {
	call := t.client.Go(method, params, result, nil)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case done := <-call.Done:
		return done.Error
	}
}

func (t *rpcTransport) Close() error {
	return t.client.Close()
}

// dial opens the JSON-RPC connection for a parsed endpoint.
func dial(ep endpoint) (hideez.Transport, error) {
	conn, err := net.Dial(ep.network, ep.address)
	if err != nil {
		return nil, err
	}
	return &rpcTransport{client: jsonrpc.NewClient(conn)}, nil
}

// Connect resolves a device selector and returns a connected transport.
// Selector and dial failures surface as device-not-found errors; the caller
// is not expected to distinguish a bad selector from an unplugged device.
// An empty selector asks the default bridge for its device list and accepts
// only when exactly one device is attached.
func Connect(selector string, log *logger.Logger) (hideez.Transport, error) {
	ep, err := parseSelector(selector)
	if err != nil {
		return nil, derrors.NewDeviceNotFoundError(selector, err)
	}

	log.Debug().Str("network", ep.network).Str("address", ep.address).Msg("connecting to device")

	t, err := dial(ep)
	if err != nil {
		return nil, derrors.NewDeviceNotFoundError(selector, err)
	}

	if strings.TrimSpace(selector) == "" {
		if err := requireSingleDevice(t, ep, log); err != nil {
			_ = t.Close()
			return nil, err
		}
	}
	return t, nil
}

// requireSingleDevice enumerates over an already-connected transport and
// rejects the connection unless the bridge reports exactly one device.
func requireSingleDevice(t hideez.Transport, ep endpoint, log *logger.Logger) error {
	var devices []hideez.DeviceInfo
	if err := t.Call(context.Background(), "Hideez.Enumerate", struct{}{}, &devices); err != nil {
		return derrors.NewTransportError(ep.address, "device enumeration failed", err)
	}
	log.Debug().Int("devices", len(devices)).Msg("enumerated bridge")

	if len(devices) != 1 {
		return derrors.NewDeviceNotFoundError("", nil)
	}
	return nil
}

// Enumerate lists devices known to the bridge. With a non-empty selector it
// asks the bridge at that endpoint, otherwise the default socket. An empty
// device list is a valid answer here, unlike in Connect.
func Enumerate(ctx context.Context, selector string, log *logger.Logger) ([]hideez.DeviceInfo, error) {
	ep, err := parseSelector(selector)
	if err != nil {
		return nil, derrors.NewDeviceNotFoundError(selector, err)
	}

	t, err := dial(ep)
	if err != nil {
		return nil, derrors.NewDeviceNotFoundError(selector, err)
	}
	defer func() { _ = t.Close() }()

	var devices []hideez.DeviceInfo
	if err := t.Call(ctx, "Hideez.Enumerate", struct{}{}, &devices); err != nil {
		return nil, derrors.NewTransportError(ep.address, "device enumeration failed", err)
	}
	return devices, nil
}
