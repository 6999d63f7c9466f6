// Package driving defines the primary (driving) ports for quantio.
//
// Driving ports are the service interfaces the adapters (CLI, TUI, MCP)
// call into. Implementations live in internal/core/services.
package driving
