// Package commands defines the scaffolding CLI and wires dependencies for subcommands.
//
// Commands
//
//   - home           Show the home screen (interactive on a terminal)
//   - releases       Print the fixed release list
//   - user create    Create a user (not implemented; aborts)
//
// # Implementation
//
// The root command loads the YAML config, applies flag overrides and builds
// the dependency graph (logger, metrics, producers) before any subcommand
// runs, so handlers share one app.Wire.
package commands
