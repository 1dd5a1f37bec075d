package config

import (
	_ "embed"
)

//go:embed schema/schema.cue
var configSchemaCUE []byte
