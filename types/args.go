package types

import (
	"fmt"
	"sort"
	"strings"
)

// EncodeKeyValues renders m as "key=value" entries sorted by key, the form
// worker messages carry signatures in.
func EncodeKeyValues(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k+"="+m[k])
	}
	return out
}

// DecodeKeyValues parses "key=value" entries. Values may contain '='.
func DecodeKeyValues(entries []string) (map[string]string, error) {
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		k, v, ok := strings.Cut(e, "=")
		if !ok {
			return nil, fmt.Errorf("invalid format: %s", e)
		}
		out[k] = v
	}
	return out, nil
}

// FramesToArgs renders frames as "filename=cid:hash" entries sorted by
// filename.
func FramesToArgs(frames []*Frame) []string {
	m := make(map[string]string, len(frames))
	for _, f := range frames {
		m[f.Filename] = f.CID + ":" + f.Hash
	}
	return EncodeKeyValues(m)
}

// FramesFromArgs parses "filename=cid:hash" entries into frames keyed by
// filename.
func FramesFromArgs(entries []string) (map[string]*Frame, error) {
	out := make(map[string]*Frame, len(entries))
	for _, e := range entries {
		filename, rest, ok := strings.Cut(e, "=")
		if !ok || filename == "" {
			return nil, fmt.Errorf("invalid frame entry: %s", e)
		}
		cid, hash, ok := strings.Cut(rest, ":")
		if !ok || cid == "" || hash == "" {
			return nil, fmt.Errorf("invalid cid:hash in frame entry: %s", e)
		}
		out[filename] = &Frame{Filename: filename, CID: cid, Hash: hash}
	}
	return out, nil
}
