// Package cli provides the interactive QuickChat terminal client.
//
// It wires configuration, storage and the chat core, then runs a REPL. Each
// handler gathers input, builds a chat.Command and prints the Result text.
//
// Commands:
//   - register, login, logout
//   - compose, sent, total
//   - populate, senders, longest, find, recipient, delete, report, import, stats
//   - help, exit | quit
package cli
