// Package environment provides read-only access to environment variables
// behind a small interface, so that code deriving build metadata can be
// tested against a fixed set of variables instead of the live process
// environment.
//
// OS reads the real environment. Map and Layered let callers combine the
// real environment with an overlay file loaded by LoadFile (JSONC or YAML).
package environment
