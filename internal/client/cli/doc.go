// Package cli provides the interactive prover command-line client.
//
// It wires configuration, the gRPC client and the authentication service
// into a small REPL. Typical flow: register once, then login to prove
// knowledge of the password and receive a session id.
//
// Commands:
//   - register  publish commitments for a username and password
//   - login     run the challenge-response and print the session id
//   - logout    forget the local session
//   - whoami    show the current user and session
//   - help, exit | quit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
