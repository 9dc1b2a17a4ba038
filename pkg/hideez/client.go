package hideez

import (
	"context"
	"time"

	"github.com/hideez/hideezctl/internal/logger"
)

// Transport carries one RPC exchange with a device. Implementations own the
// wire protocol; the client never sees framing or session state.
type Transport interface {
	Call(ctx context.Context, method string, params, result any) error
	Close() error
}

// Client exposes one typed method per device operation. A Client owns its
// Transport for the lifetime of the invocation.
type Client struct {
	t   Transport
	log *logger.Logger
}

// NewClient wraps a connected transport.
func NewClient(t Transport, log *logger.Logger) *Client {
	return &Client{t: t, log: log}
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.t.Close()
}

func (c *Client) call(ctx context.Context, op string, params, result any) error {
	start := time.Now()
	err := c.t.Call(ctx, "Hideez." + op, params, result)
	c.log.Debug().Str("method", op).Dur("took", time.Since(start)).Err(err).Msg("device call")
	return err
}

// PingRequest selects the protections exercised by a ping.
type PingRequest struct {
	Message              string `json:"message"`
	ButtonProtection     bool   `json:"button_protection"`
	PinProtection        bool   `json:"pin_protection"`
	PassphraseProtection bool   `json:"passphrase_protection"`
}

// Ping round-trips a message through the device.
func (c *Client) Ping(ctx context.Context, req PingRequest) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.call(ctx, "Ping", req, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Features queries the device feature/status report.
func (c *Client) Features(ctx context.Context) (*Features, error) {
	var resp Features
	if err := c.call(ctx, "GetFeatures", struct{}{}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddressRequest derives a receive address.
type AddressRequest struct {
	Coin        string   `json:"coin_name"`
	AddressN    []uint32 `json:"address_n"`
	ScriptType  string   `json:"script_type"`
	ShowDisplay bool     `json:"show_display"`
}

// Address derives and optionally displays an address.
func (c *Client) Address(ctx context.Context, req AddressRequest) (*Address, error) {
	var resp Address
	if err := c.call(ctx, "GetAddress", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// PublicKeyRequest exports a BIP-32 public node.
type PublicKeyRequest struct {
	Coin        string   `json:"coin_name"`
	AddressN    []uint32 `json:"address_n"`
	Curve       string   `json:"ecdsa_curve_name,omitempty"`
	ShowDisplay bool     `json:"show_display"`
}

// PublicKey exports the public node at a derivation path.
func (c *Client) PublicKey(ctx context.Context, req PublicKeyRequest) (*PublicNode, error) {
	var resp PublicNode
	if err := c.call(ctx, "GetPublicKey", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignTxRequest carries a fully collected transaction for signing.
type SignTxRequest struct {
	Coin     string     `json:"coin_name"`
	Inputs   []TxInput  `json:"inputs"`
	Outputs  []TxOutput `json:"outputs"`
	Version  uint32     `json:"version"`
	LockTime uint32     `json:"lock_time"`
}

// SignTx signs a transaction in one call; all interaction with the user
// happens before, all confirmation prompting happens on the device.
func (c *Client) SignTx(ctx context.Context, req SignTxRequest) (*SignedTx, error) {
	var resp SignedTx
	if err := c.call(ctx, "SignTx", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SignMessageRequest signs a freeform message with an address key.
type SignMessageRequest struct {
	Coin     string   `json:"coin_name"`
	AddressN []uint32 `json:"address_n"`
	Message  []byte   `json:"message"`
}

// SignMessage signs a message with the key at a derivation path.
func (c *Client) SignMessage(ctx context.Context, req SignMessageRequest) (*MessageSignature, error) {
	var resp MessageSignature
	if err := c.call(ctx, "SignMessage", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// VerifyMessageRequest checks a message signature against an address.
type VerifyMessageRequest struct {
	Coin      string `json:"coin_name"`
	Address   string `json:"address"`
	Signature []byte `json:"signature"`
	Message   []byte `json:"message"`
}

// VerifyMessage reports whether the signature is valid for the address.
func (c *Client) VerifyMessage(ctx context.Context, req VerifyMessageRequest) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := c.call(ctx, "VerifyMessage", req, &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

// CipherKeyValueRequest encrypts or decrypts a value under a named key
// derived at a path. Encrypt selects the direction.
type CipherKeyValueRequest struct {
	AddressN []uint32 `json:"address_n"`
	Key      string   `json:"key"`
	Value    []byte   `json:"value"`
	Encrypt  bool     `json:"encrypt"`
}

// CipherKeyValue runs the symmetric key-value cipher on the device.
func (c *Client) CipherKeyValue(ctx context.Context, req CipherKeyValueRequest) (*CipheredKeyValue, error) {
	var resp CipheredKeyValue
	if err := c.call(ctx, "CipherKeyValue", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// EncryptMessageRequest encrypts a message to a public key.
type EncryptMessageRequest struct {
	Coin        string   `json:"coin_name"`
	Pubkey      []byte   `json:"pubkey"`
	Message     []byte   `json:"message"`
	DisplayOnly bool     `json:"display_only"`
	AddressN    []uint32 `json:"address_n"`
}

// EncryptMessage encrypts and signs a message to a recipient public key.
func (c *Client) EncryptMessage(ctx context.Context, req EncryptMessageRequest) (*EncryptedMessage, error) {
	var resp EncryptedMessage
	if err := c.call(ctx, "EncryptMessage", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DecryptMessageRequest decrypts a received message envelope.
type DecryptMessageRequest struct {
	AddressN []uint32 `json:"address_n"`
	Payload  []byte   `json:"payload"`
}

// DecryptMessage decrypts a message envelope with the key at a path.
func (c *Client) DecryptMessage(ctx context.Context, req DecryptMessageRequest) (*DecryptedMessage, error) {
	var resp DecryptedMessage
	if err := c.call(ctx, "DecryptMessage", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CosiCommitRequest runs the commit phase of a collaborative signature.
type CosiCommitRequest struct {
	AddressN []uint32 `json:"address_n"`
	Data     []byte   `json:"data"`
}

// CosiCommit obtains the device's commitment for a collaborative signature.
func (c *Client) CosiCommit(ctx context.Context, req CosiCommitRequest) (*CosiCommitment, error) {
	var resp CosiCommitment
	if err := c.call(ctx, "CosiCommit", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CosiSignRequest runs the sign phase of a collaborative signature.
type CosiSignRequest struct {
	AddressN         []uint32 `json:"address_n"`
	Data             []byte   `json:"data"`
	GlobalCommitment []byte   `json:"global_commitment"`
	GlobalPubkey     []byte   `json:"global_pubkey"`
}

// CosiSign produces the device's share of a collaborative signature.
func (c *Client) CosiSign(ctx context.Context, req CosiSignRequest) (*CosiSignature, error) {
	var resp CosiSignature
	if err := c.call(ctx, "CosiSign", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
