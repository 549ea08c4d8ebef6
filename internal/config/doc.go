// Package config provides configuration loading, merging, and validation
// facilities for the application.
//
// Configuration is assembled from multiple sources in the following priority
// order (earlier sources win for conflicting fields):
//  1. Environment variables
//  2. Command-line overrides collected by the cmd layer
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. After merging, missing
// optional fields are filled with defaults and the result is validated.
package config
