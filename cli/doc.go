// Package cli parses the wordgrid command line into a validated config.Config.
package cli
