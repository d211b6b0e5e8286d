// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the processing lifecycle for a batch of
// stylesheets, decoupled from any specific entrypoint like a CLI.
package app
