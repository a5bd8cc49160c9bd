// Package config loads a device + bridge-list routing job description from
// YAML, for the cmd/slotroute CLI.
package config
