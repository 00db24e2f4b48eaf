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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-p server port
//	-origins comma-separated CORS allow-list
//	-env environment name
//	-provider-url provider base URL
//	-anon-key provider public key
//	-service-key provider service-role key
//	-jwt-secret provider JWT secret
//	-provider-timeout provider request timeout (e.g. "10s")
//	-storage storage backend (rest|postgres)
//	-d database DSN
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("divelog", flag.ContinueOnError)

	var address NetAddress
	var port int
	var origins string
	var environment string
	var providerURL, anonKey, serviceKey, jwtSecret string
	var providerTimeout time.Duration
	var backend, databaseDSN string
	var jsonConfigPath string

	fs.Var(&address, "a", "Net address host:port")
	fs.IntVar(&port, "p", 0, "Listening port")
	fs.StringVar(&origins, "origins", "", "Comma-separated CORS origins")
	fs.StringVar(&environment, "env", "", "Environment name")
	fs.StringVar(&providerURL, "provider-url", "", "Provider base URL")
	fs.StringVar(&anonKey, "anon-key", "", "Provider anon key")
	fs.StringVar(&serviceKey, "service-key", "", "Provider service-role key")
	fs.StringVar(&jwtSecret, "jwt-secret", "", "Provider JWT secret")
	fs.DurationVar(&providerTimeout, "provider-timeout", 0, "Provider request timeout (e.g., 10s)")
	fs.StringVar(&backend, "storage", "", "Storage backend: rest or postgres")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if port == 0 {
		port = address.Port
	}

	cfg := &StructuredConfig{
		Provider: Provider{
			URL:            providerURL,
			AnonKey:        anonKey,
			ServiceRoleKey: serviceKey,
			JWTSecret:      jwtSecret,
			Timeout:        providerTimeout,
		},
		App: App{
			Environment: environment,
		},
		Server: Server{
			Host: address.Host,
			Port: port,
		},
		Storage: Storage{
			Backend: backend,
			DSN:     databaseDSN,
		},
		JSONFilePath: jsonConfigPath,
	}
	if origins != "" {
		cfg.Server.AllowedOrigins = strings.Split(origins, ",")
	}

	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
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

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
