// Package cli provides the interactive study guide terminal client.
//
// It wires configuration, the local preferences store, API services and a
// full-screen bubbletea UI. Screens follow the navigation table in package
// shell; each screen entry re-runs its loader against the server, and one
// request runs at a time. Connectivity is checked in the background and
// shown in the header.
//
// The UI is started via App.Run(ctx), which blocks until the user quits.
package cli
