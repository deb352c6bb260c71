// Package driving defines the driving ports (primary interfaces) of
// the hexagonal architecture: operations the CLI, TUI and MCP adapters
// invoke on the core.
package driving
