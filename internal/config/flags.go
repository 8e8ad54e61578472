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

// parseFlags parses command line arguments into a partial config.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-f upload directory
//	-c/-config json file path with configs
//	-session-ttl session lifetime (e.g., "24h")
//	-cookie-secure mark the session cookie Secure
//	-max-upload-size upload request size limit in bytes
//	-request-timeout request timeout (e.g., "30s", "1m")
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var uploadDir string
	var databaseDSN string
	var jsonConfigPath string
	var sessionTTL time.Duration
	var cookieSecure bool
	var maxUploadSize int64
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("doc-manager", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&uploadDir, "f", "", "Upload directory")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Session lifetime (e.g., 24h)")
	fs.BoolVar(&cookieSecure, "cookie-secure", false, "Send the session cookie over HTTPS only")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Upload size limit in bytes")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionTTL:    sessionTTL,
			CookieSecure:  cookieSecure,
			MaxUploadSize: maxUploadSize,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				UploadDir: uploadDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
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
// An empty host listens on all interfaces. Any other host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
