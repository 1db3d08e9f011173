// Package config provides configuration loading, merging, and validation
// facilities for the relay.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON config file
//
// The record field map has no defaults: backend field identifiers differ
// between host applications and are always supplied by the deployment.
package config
