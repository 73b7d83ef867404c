package main

import "embed"

// configFS holds the default game.yaml shipped inside the binary
//
//go:embed configs
var configFS embed.FS
