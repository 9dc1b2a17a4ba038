// Package main is the entry point for the hideezctl CLI application.
package main

import (
	"context"
	"fmt"
	"os"

	hzcli "github.com/hideez/hideezctl/internal/cli"
	"github.com/hideez/hideezctl/pkg/version"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func common(cmd *cli.Command) hzcli.Common {
	return hzcli.Common{
		Device:  cmd.String("device"),
		Verbose: cmd.Bool("verbose"),
		JSON:    cmd.Bool("json"),
	}
}

//nolint:gocyclo // One flag-to-params mapping per device operation
func newApp() *cli.Command {
	return &cli.Command{
		Name:                  "hideezctl",
		Usage:                 "Command-line client for the Hideez hardware wallet",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "device",
				Aliases: []string{"p"},
				Usage:   "Device path selector (tcp:host:port, unix:/path, empty for auto)",
				Sources: cli.EnvVars("HIDEEZ_PATH"),
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log device communication",
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Print responses as JSON",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List connected devices",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.List(ctx, hzcli.ListParams{Common: common(cmd)})
				},
			},
			{
				Name:      "ping",
				Usage:     "Send a ping message to the device",
				ArgsUsage: "<message>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "button-protection",
						Aliases: []string{"b"},
						Usage:   "Require a button press to confirm",
					},
					&cli.BoolFlag{
						Name:  "pin-protection",
						Usage: "Require the PIN",
					},
					&cli.BoolFlag{
						Name:  "passphrase-protection",
						Usage: "Require the passphrase",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.Ping(ctx, hzcli.PingParams{
						Common:               common(cmd),
						Message:              cmd.Args().First(),
						ButtonProtection:     cmd.Bool("button-protection"),
						PinProtection:        cmd.Bool("pin-protection"),
						PassphraseProtection: cmd.Bool("passphrase-protection"),
					})
				},
			},
			{
				Name:  "features",
				Usage: "Show device features and status",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.Features(ctx, hzcli.FeaturesParams{Common: common(cmd)})
				},
			},
			{
				Name:  "get-address",
				Usage: "Derive a receive address",
				Flags: []cli.Flag{
					coinFlag(),
					pathFlag("BIP-32 path to derive the address"),
					&cli.StringFlag{
						Name:    "script-type",
						Aliases: []string{"t"},
						Usage:   "Script type: address, segwit or p2sh-segwit (default from path)",
					},
					showDisplayFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.Address(ctx, hzcli.AddressParams{
						Common:      common(cmd),
						Coin:        cmd.String("coin"),
						Path:        cmd.String("address"),
						ScriptType:  cmd.String("script-type"),
						ShowDisplay: cmd.Bool("show-display"),
					})
				},
			},
			{
				Name:  "get-public-key",
				Usage: "Export the public node at a derivation path",
				Flags: []cli.Flag{
					coinFlag(),
					pathFlag("BIP-32 path to the node"),
					&cli.StringFlag{
						Name:    "curve",
						Aliases: []string{"e"},
						Usage:   "ECDSA curve name",
					},
					showDisplayFlag(),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.PublicKey(ctx, hzcli.PublicKeyParams{
						Common:      common(cmd),
						Coin:        cmd.String("coin"),
						Path:        cmd.String("address"),
						Curve:       cmd.String("curve"),
						ShowDisplay: cmd.Bool("show-display"),
					})
				},
			},
			{
				Name:  "sign-tx",
				Usage: "Sign a transaction built from interactive prompts",
				Flags: []cli.Flag{
					coinFlag(),
					&cli.UintFlag{
						Name:  "tx-version",
						Value: 1,
						Usage: "Transaction version",
					},
					&cli.UintFlag{
						Name:  "lock-time",
						Value: 0,
						Usage: "Transaction locktime",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.SignTx(ctx, hzcli.SignTxParams{
						Common:   common(cmd),
						Coin:     cmd.String("coin"),
						Version:  uint32(cmd.Uint("tx-version")),
						LockTime: uint32(cmd.Uint("lock-time")),
					})
				},
			},
			{
				Name:      "sign-message",
				Usage:     "Sign a message with an address key",
				ArgsUsage: "<message>",
				Flags: []cli.Flag{
					coinFlag(),
					pathFlag("BIP-32 path of the signing key"),
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.SignMessage(ctx, hzcli.SignMessageParams{
						Common:  common(cmd),
						Coin:    cmd.String("coin"),
						Path:    cmd.String("address"),
						Message: cmd.Args().First(),
					})
				},
			},
			{
				Name:      "verify-message",
				Usage:     "Verify a message signature",
				ArgsUsage: "<address> <signature> <message>",
				Flags:     []cli.Flag{coinFlag()},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 3 {
						return fmt.Errorf("expected <address> <signature> <message>")
					}
					return hzcli.VerifyMessage(ctx, hzcli.VerifyMessageParams{
						Common:    common(cmd),
						Coin:      cmd.String("coin"),
						Address:   cmd.Args().Get(0),
						Signature: cmd.Args().Get(1),
						Message:   cmd.Args().Get(2),
					})
				},
			},
			{
				Name:      "encrypt-keyvalue",
				Usage:     "Encrypt a value under a named key",
				ArgsUsage: "<key> <value>",
				Flags:     []cli.Flag{pathFlag("BIP-32 path of the cipher key")},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("expected <key> <value>")
					}
					return hzcli.CipherKeyValue(ctx, hzcli.CipherKeyValueParams{
						Common:  common(cmd),
						Path:    cmd.String("address"),
						Key:     cmd.Args().Get(0),
						Value:   cmd.Args().Get(1),
						Encrypt: true,
					})
				},
			},
			{
				Name:      "decrypt-keyvalue",
				Usage:     "Decrypt a value under a named key",
				ArgsUsage: "<key> <value-hex>",
				Flags:     []cli.Flag{pathFlag("BIP-32 path of the cipher key")},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("expected <key> <value-hex>")
					}
					return hzcli.CipherKeyValue(ctx, hzcli.CipherKeyValueParams{
						Common:  common(cmd),
						Path:    cmd.String("address"),
						Key:     cmd.Args().Get(0),
						Value:   cmd.Args().Get(1),
						Encrypt: false,
					})
				},
			},
			{
				Name:      "encrypt-message",
				Usage:     "Encrypt a message to a public key",
				ArgsUsage: "<pubkey-hex> <message>",
				Flags: []cli.Flag{
					coinFlag(),
					pathFlag("BIP-32 path of the signing key"),
					&cli.BoolFlag{
						Name:  "display-only",
						Usage: "Only decryptable on the device display",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("expected <pubkey-hex> <message>")
					}
					return hzcli.EncryptMessage(ctx, hzcli.EncryptMessageParams{
						Common:      common(cmd),
						Coin:        cmd.String("coin"),
						Pubkey:      cmd.Args().Get(0),
						Message:     cmd.Args().Get(1),
						DisplayOnly: cmd.Bool("display-only"),
						Path:        cmd.String("address"),
					})
				},
			},
			{
				Name:      "decrypt-message",
				Usage:     "Decrypt a received message envelope",
				ArgsUsage: "<payload-hex>",
				Flags:     []cli.Flag{pathFlag("BIP-32 path of the decryption key")},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.DecryptMessage(ctx, hzcli.DecryptMessageParams{
						Common:  common(cmd),
						Path:    cmd.String("address"),
						Payload: cmd.Args().First(),
					})
				},
			},
			{
				Name:      "cosi-commit",
				Usage:     "Commit phase of a collaborative signature",
				ArgsUsage: "<data-hex>",
				Flags:     []cli.Flag{pathFlag("BIP-32 path of the signing key")},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return hzcli.CosiCommit(ctx, hzcli.CosiCommitParams{
						Common: common(cmd),
						Path:   cmd.String("address"),
						Data:   cmd.Args().First(),
					})
				},
			},
			{
				Name:      "cosi-sign",
				Usage:     "Sign phase of a collaborative signature",
				ArgsUsage: "<data-hex> <global-commitment-hex> <global-pubkey-hex>",
				Flags:     []cli.Flag{pathFlag("BIP-32 path of the signing key")},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 3 {
						return fmt.Errorf("expected <data-hex> <global-commitment-hex> <global-pubkey-hex>")
					}
					return hzcli.CosiSign(ctx, hzcli.CosiSignParams{
						Common:           common(cmd),
						Path:             cmd.String("address"),
						Data:             cmd.Args().Get(0),
						GlobalCommitment: cmd.Args().Get(1),
						GlobalPubkey:     cmd.Args().Get(2),
					})
				},
			},
			{
				Name:      "schema",
				Usage:     "Display or export the JSON Schema for coin override files",
				ArgsUsage: "[output-file]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (prints to stdout if not specified)",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					outputPath := cmd.String("output")
					if outputPath == "" && cmd.Args().Len() > 0 {
						outputPath = cmd.Args().Get(0)
					}
					return hzcli.Schema(hzcli.SchemaParams{
						Common:     common(cmd),
						OutputPath: outputPath,
					})
				},
			},
			{
				Name:  "version",
				Usage: "Show client version",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return hzcli.Version(hzcli.VersionParams{Common: common(cmd)})
				},
			},
		},
	}
}

func coinFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "coin",
		Aliases: []string{"c"},
		Value:   "Bitcoin",
		Usage:   "Coin name",
	}
}

func pathFlag(usage string) cli.Flag {
	return &cli.StringFlag{
		Name:    "address",
		Aliases: []string{"n"},
		Usage:   usage,
	}
}

func showDisplayFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    "show-display",
		Aliases: []string{"d"},
		Usage:   "Also show the result on the device display",
	}
}
