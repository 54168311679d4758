// Package cmd defines the kvmlink command line surface.
package cmd

// LogFlags configures logging for every command.
type LogFlags struct {
	Level    string `help:"Log level (trace, debug, info, warn, error)" default:"info" env:"KVMLINK_LOG_LEVEL"`
	File     string `help:"Also write logs to this file" env:"KVMLINK_LOG_FILE"`
	WireFile string `help:"Write hex dumps of received wire chunks to this file" env:"KVMLINK_LOG_WIRE_FILE"`
}

// CLI is the root kong grammar. The client command is the default so plain
// `kvmlink [config-path]` connects.
type CLI struct {
	Log LogFlags `embed:"" prefix:"log."`

	ConfigFile string `name:"config" help:"Flag-configuration file (json, yaml or toml)" type:"path" env:"KVMLINK_CONFIG"`

	Client  Client         `cmd:"" default:"withargs" help:"Connect to a server and replay forwarded input"`
	Config  ConfigCommand  `cmd:"" help:"Configuration utilities"`
	Service ServiceCommand `cmd:"" help:"Manage the client systemd service"`
}
