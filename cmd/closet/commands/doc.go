// Package commands defines the closet CLI.
//
// Commands
//
//   - menu           Interactive numbered menu over the catalog
//   - list           Filter and sort the catalog once and print it
//   - show           Print one product by id
//   - hash-password  Print a bcrypt hash for ADMIN_PASSWORD_HASH
//
// The root command loads configuration and the first catalog snapshot before
// any subcommand that needs it runs.
package commands
