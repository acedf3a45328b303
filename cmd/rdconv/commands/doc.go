// Package commands defines the rdconv CLI.
//
// # Commands
//
//   - to-date      Decode a Rata Die into a calendar date
//   - to-ordinal   Decode a Rata Die into (year, day-of-year, leap)
//   - to-rata-die  Encode a calendar date into a Rata Die
//   - leap         Query the leap-year oracle
//   - variants     List the registered codec variants and their domains
//
// # Implementation
//
// The root command resolves the codec variant before any subcommand
// runs: an optional TOML config file names a default, and the
// --variant flag overrides it. Conversions then go through the
// package-level ratadie functions.
package commands
