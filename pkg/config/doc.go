// Package config loads environment-sourced configuration into typed
// structs using caarlos0/env tags, with optional .env file support for
// local development via godotenv.
package config
