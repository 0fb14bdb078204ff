// Package config assembles the run configuration for the wordgrid command.
//
// Sources, lowest precedence first:
//
//   - Default()                built-in defaults
//   - LoadFile(path, cfg)      an HCL file; every block is optional
//   - ApplyEnv(cfg, lookup)    WORDGRID_* variables, after LoadDotEnv
//   - command-line flags       applied by package cli
//
// HCL expressions can read the process environment through the env object:
//
//	dictionary {
//	  path = "${env.HOME}/wordlists/swedish.txt"
//	}
package config
