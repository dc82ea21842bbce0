// Package decl provides the declaration model shared by the binding
// generator and the CLI.
//
// This package contains type definitions only. Other internal packages
// import decl; decl imports nothing internal. This keeps the declaration
// model the foundational layer with no circular dependencies.
package decl
