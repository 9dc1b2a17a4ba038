package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewApp_CommandSurface(t *testing.T) {
	app := newApp()

	want := []string{
		"list",
		"ping",
		"features",
		"get-address",
		"get-public-key",
		"sign-tx",
		"sign-message",
		"verify-message",
		"encrypt-keyvalue",
		"decrypt-keyvalue",
		"encrypt-message",
		"decrypt-message",
		"cosi-commit",
		"cosi-sign",
		"schema",
		"version",
	}

	names := make(map[string]bool)
	for _, cmd := range app.Commands {
		names[cmd.Name] = true
	}

	for _, name := range want {
		assert.True(t, names[name], "expected sub-command %q", name)
	}
	assert.Len(t, app.Commands, len(want))
}

func TestNewApp_GlobalFlags(t *testing.T) {
	app := newApp()

	flagNames := make(map[string]bool)
	for _, f := range app.Flags {
		for _, name := range f.Names() {
			flagNames[name] = true
		}
	}

	for _, name := range []string{"device", "p", "verbose", "v", "json", "j"} {
		assert.True(t, flagNames[name], "expected global flag %q", name)
	}
}
