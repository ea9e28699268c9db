package config

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress is the flag.Value behind -a.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line flags shared by the server and the
// terminal client. Unset flags leave their fields zero so that later
// sources can fill them.
//
// Flags:
//
//	-a server listen address in format [host]:[port]
//	-d database DSN
//	-c/-config config file path (.json, .yaml, .yml, .toml)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-server REST server URL used by the client
//	-cache client cache SQLite file
//	-log-file client log file
//	-log-level minimum log level
//	-shipping-inline push shipping entries immediately
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var configPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var adapterAddress string
	var cacheDSN string
	var logFile string
	var logLevel string
	var shippingInline bool

	fs := flag.NewFlagSet("hitime", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&configPath, "c", "", "Config file path")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&adapterAddress, "server", "", "REST server URL used by the client")
	fs.StringVar(&cacheDSN, "cache", "", "Client cache SQLite file")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&logLevel, "log-level", "", "Minimum log level")
	fs.BoolVar(&shippingInline, "shipping-inline", false, "Push shipping entries immediately")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Client: Client{
			CacheDSN: cacheDSN,
			LogFile:  logFile,
		},
		Sync: Sync{
			ShippingInline: shippingInline,
		},
		ConfigFilePath: configPath,
	}, nil
}

// String renders the address as host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses host:port. The host may be empty (all interfaces), localhost or
// an IP literal; IPv6 literals need brackets.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("%w: port %q is not in 1-65535", ErrInvalidAddress, rawPort)
	}

	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return fmt.Errorf("%w: host %q is not an IP address", ErrInvalidAddress, host)
	}

	a.Host, a.Port = host, port
	return nil
}
