// Package cli provides the interactive agrostock command-line client.
//
// It wires configuration, the configured key/value store, the credential and
// inventory services, and a REPL. On start the persisted session (if any) is
// restored, so a user stays logged in across runs until they log out.
//
// Commands:
//   - register / login / logout
//   - categories, list, add: browse and extend the inventory
//   - profile, editprofile: show and edit the logged-in user
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
