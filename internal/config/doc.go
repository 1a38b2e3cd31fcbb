// Package config defines the server's settings and loads them with viper
// from defaults, an optional config.yaml and ASKR_-prefixed environment
// variables. Loaded values are checked with go-playground/validator before
// they are handed to any component.
package config
