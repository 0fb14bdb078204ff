// Package app wires the wordgrid pipeline together: grid source, path
// enumeration, dictionary loading, reporting and persistence, with
// structured logging and timing around each stage.
package app
