// Package config defines the root command line of signalgen.
package config

import (
	"github.com/alecthomas/kong"

	"github.com/gnvim/signalgen/internal/cmd"
)

type LogConfig struct {
	Level  string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"SIGNALGEN_LOG_LEVEL"`
	File   string `help:"Also write logs to this file" type:"path" env:"SIGNALGEN_LOG_FILE"`
	Format string `help:"Log format; auto picks text on a terminal and json otherwise" enum:"auto,text,json" default:"auto" env:"SIGNALGEN_LOG_FORMAT"`
}

type CLI struct {
	Config  string           `help:"Configuration file (json, yaml or toml)" type:"path" env:"SIGNALGEN_CONFIG"`
	Log     LogConfig        `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print version and exit"`

	Generate  cmd.Generate      `cmd:"" help:"Render signal declarations or adapter registrations into a template"`
	Table     cmd.Table         `cmd:"" help:"Print the event table"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Configuration helpers"`
}
