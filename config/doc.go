// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration structure:
// runtime environment, log level and the cast of actors with their behaviors.
// With no file present the defaults reproduce the standard demonstration.
package config
