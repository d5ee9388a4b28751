// Package service wires the MCP protocol transport to the launch tools.
//
// It is the transport adapter layer: the package runs MCP over stdio and
// delegates tool meaning to the handlers in the domain package.
package service
