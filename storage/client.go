package storage

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
	"go.uber.org/zap"
)

// DefaultAPIAddr is the HTTP API of a local IPFS daemon.
const DefaultAPIAddr = "localhost:5001"

// Config for an IPFS storage client
type Config struct {
	// APIAddr is the IPFS HTTP API, as host:port or an http(s) URL.
	APIAddr string
	// Timeout bounds every request to the daemon. Zero means no limit.
	Timeout time.Duration
}

// Client uploads task videos and downloads rendered frames through an IPFS
// daemon.
type Client struct {
	sh     *shell.Shell
	config Config
	logger *zap.Logger

	subMu   sync.RWMutex
	subs    map[EventType][]Handler
	subsAll []Handler
}

// New creates a new storage client. It does not contact the daemon; use
// Ping to check it is reachable.
func New(cfg Config, logger *zap.Logger) (*Client, error) {
	if cfg.APIAddr == "" {
		cfg.APIAddr = DefaultAPIAddr
	}
	if strings.ContainsAny(cfg.APIAddr, " \t") {
		return nil, fmt.Errorf("invalid ipfs api address %q", cfg.APIAddr)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	sh := shell.NewShellWithClient(cfg.APIAddr, &http.Client{
		Transport: &http.Transport{
			Proxy:             http.ProxyFromEnvironment,
			DisableKeepAlives: true,
		},
	})
	if cfg.Timeout > 0 {
		sh.SetTimeout(cfg.Timeout)
	}

	return &Client{
		sh:     sh,
		config: cfg,
		logger: logger,
		subs:   make(map[EventType][]Handler),
	}, nil
}

// Close releases the client. The IPFS shell keeps no open connections.
func (c *Client) Close() error {
	return nil
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.config
}
