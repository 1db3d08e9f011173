// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the relay command-line flags from args.
//
// Flags:
//
//	-a relay address in format [host]:[port]
//	-c/-config json file path with configs
//	-knack-url record API base URL
//	-knack-app-id host application id
//	-knack-api-key record API key
//	-knack-object object key holding user records
//	-request-timeout record API request timeout (e.g., "15s")
//	-allowed-origins comma separated host page origins
//	-app-origins comma separated embedded application origins
//	-log-level minimum log level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		address        NetAddress
		jsonConfigPath string
		baseURL        string
		appID          string
		apiKey         string
		objectKey      string
		requestTimeout time.Duration
		allowedOrigins string
		appOrigins     string
		logLevel       string
	)

	fs := flag.NewFlagSet("flashcard-bridge", flag.ContinueOnError)
	fs.Var(&address, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&baseURL, "knack-url", "", "Record API base URL")
	fs.StringVar(&appID, "knack-app-id", "", "Host application id")
	fs.StringVar(&apiKey, "knack-api-key", "", "Record API key")
	fs.StringVar(&objectKey, "knack-object", "", "Object key holding user records")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.StringVar(&allowedOrigins, "allowed-origins", "", "Comma separated host page origins")
	fs.StringVar(&appOrigins, "app-origins", "", "Comma separated embedded app origins")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Knack: Knack{
			BaseURL:        baseURL,
			AppID:          appID,
			APIKey:         apiKey,
			ObjectKey:      objectKey,
			RequestTimeout: requestTimeout,
		},
		Server: Server{
			HTTPAddress:    address.String(),
			AllowedOrigins: splitList(allowedOrigins),
			AppOrigins:     splitList(appOrigins),
		},
		LogLevel:     logLevel,
		JSONFilePath: jsonConfigPath,
	}, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host binds every interface. Any other host must be "localhost" or
// a valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
