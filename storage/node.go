package storage

import (
	"context"
	"fmt"
	"net"

	"github.com/ipfs/go-cid"
	shell "github.com/ipfs/go-ipfs-api"
)

// SwarmPort is the libp2p port workers announce.
const SwarmPort = 4001

// Ping checks that the daemon answers its identity endpoint.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.PeerID(ctx)
	if err != nil {
		return fmt.Errorf("ipfs node unreachable: %w", err)
	}
	return nil
}

// PeerID returns the libp2p identity of the daemon.
func (c *Client) PeerID(ctx context.Context) (string, error) {
	var out shell.IdOutput
	if err := c.sh.Request("id").Exec(ctx, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", fmt.Errorf("empty peer id")
	}
	return out.ID, nil
}

// Connect dials the daemon of a worker listening on ip.
func (c *Client) Connect(ctx context.Context, ip, peerID string) error {
	addr, err := SwarmAddress(ip, peerID)
	if err != nil {
		return err
	}
	if err := c.sh.SwarmConnect(ctx, addr); err != nil {
		return fmt.Errorf("swarm connect %s: %w", addr, err)
	}
	return nil
}

// SwarmAddress builds the multiaddr of a worker's IPFS node.
func SwarmAddress(ip, peerID string) (string, error) {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return "", fmt.Errorf("invalid ip %q", ip)
	}
	if peerID == "" {
		return "", fmt.Errorf("peer id is required")
	}
	proto := "ip4"
	if parsed.To4() == nil {
		proto = "ip6"
	}
	return fmt.Sprintf("/%s/%s/tcp/%d/p2p/%s", proto, ip, SwarmPort, peerID), nil
}

// ValidateCID reports whether s parses as a content identifier.
func ValidateCID(s string) error {
	if _, err := cid.Decode(s); err != nil {
		return fmt.Errorf("invalid cid %q: %w", s, err)
	}
	return nil
}
