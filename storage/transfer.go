package storage

import (
	"context"
	"fmt"
	"os"

	humanize "github.com/dustin/go-humanize"
	shell "github.com/ipfs/go-ipfs-api"
	"go.uber.org/zap"
)

// Upload adds the file or directory at path to IPFS and returns its root CID.
// Directories are added recursively.
func (c *Client) Upload(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	c.emit(ctx, Event{Type: EventUploadStarted, Path: path})
	fields := []zap.Field{zap.String("path", path), zap.Bool("dir", info.IsDir())}
	if !info.IsDir() {
		fields = append(fields, zap.String("size", humanize.Bytes(uint64(info.Size()))))
	}
	c.logger.Debug("ipfs upload started", fields...)

	var cid string
	if info.IsDir() {
		cid, err = c.sh.AddDir(path)
	} else {
		cid, err = c.addFile(path)
	}
	if err != nil {
		err = fmt.Errorf("upload %s: %w", path, err)
		c.emit(ctx, Event{Type: EventUploadFailed, Path: path, Err: err})
		return "", err
	}

	c.emit(ctx, Event{Type: EventUploadCompleted, Path: path, CID: cid})
	c.logger.Info("ipfs upload completed", zap.String("path", path), zap.String("cid", cid))
	return cid, nil
}

func (c *Client) addFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return c.sh.Add(f, shell.Pin(true))
}

// Download fetches cid into dir, creating dir when needed. The content is
// written to dir/<cid>.
func (c *Client) Download(ctx context.Context, cid, dir string) error {
	if err := ValidateCID(cid); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	c.emit(ctx, Event{Type: EventDownloadStarted, CID: cid, Path: dir})
	c.logger.Debug("ipfs download started", zap.String("cid", cid), zap.String("dir", dir))

	if err := c.sh.Get(cid, dir); err != nil {
		err = fmt.Errorf("download %s: %w", cid, err)
		c.emit(ctx, Event{Type: EventDownloadFailed, CID: cid, Path: dir, Err: err})
		return err
	}

	c.emit(ctx, Event{Type: EventDownloadCompleted, CID: cid, Path: dir})
	c.logger.Info("ipfs download completed", zap.String("cid", cid), zap.String("dir", dir))
	return nil
}

// List returns the entries of the directory at cid as filename to CID.
func (c *Client) List(ctx context.Context, cid string) (map[string]string, error) {
	if err := ValidateCID(cid); err != nil {
		return nil, err
	}

	var out struct {
		Objects []shell.LsObject
	}
	if err := c.sh.Request("ls", cid).Exec(ctx, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", cid, err)
	}
	if len(out.Objects) != 1 {
		return nil, fmt.Errorf("list %s: expected one object, got %d", cid, len(out.Objects))
	}

	entries := make(map[string]string, len(out.Objects[0].Links))
	for _, link := range out.Objects[0].Links {
		if link == nil {
			continue
		}
		entries[link.Name] = link.Hash
	}
	return entries, nil
}
