package crypto

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	_ "image/jpeg" // decoders for rendered frames
	_ "image/png"
	"os"
	"path/filepath"
	"sort"

	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/crypto/keys/secp256k1"
	cryptotypes "github.com/cosmos/cosmos-sdk/crypto/types"
	signingtypes "github.com/cosmos/cosmos-sdk/types/tx/signing"
)

type signableMessage struct {
	Hash          string `json:"hash"`
	WorkerAddress string `json:"worker_address"`
}

// SignableMessage returns the digest a worker signs to vouch for a frame
// hash: sha256 over the JSON object {"hash", "worker_address"}.
func SignableMessage(hash, workerAddr string) ([]byte, error) {
	bz, err := json.Marshal(signableMessage{Hash: hash, WorkerAddress: workerAddr})
	if err != nil {
		return nil, fmt.Errorf("marshal signable message: %w", err)
	}
	sum := sha256.Sum256(bz)
	return sum[:], nil
}

// SignFrameHash signs the frame hash for workerAddr with keyName and returns
// the base64 signature together with the signing key.
func SignFrameHash(kr keyring.Keyring, keyName, hash, workerAddr string) (string, cryptotypes.PubKey, error) {
	if kr == nil {
		return "", nil, fmt.Errorf("keyring is required")
	}
	msg, err := SignableMessage(hash, workerAddr)
	if err != nil {
		return "", nil, err
	}
	sig, pub, err := kr.Sign(keyName, msg, signingtypes.SignMode_SIGN_MODE_DIRECT)
	if err != nil {
		return "", nil, fmt.Errorf("sign frame hash: %w", err)
	}
	return base64.StdEncoding.EncodeToString(sig), pub, nil
}

// SignFrameHashes signs every filename to hash entry and returns the
// "filename=signature" entries sorted by filename, plus the base64 public key
// to submit alongside them.
func SignFrameHashes(kr keyring.Keyring, keyName, workerAddr string, hashes map[string]string) ([]string, string, error) {
	filenames := make([]string, 0, len(hashes))
	for f := range hashes {
		filenames = append(filenames, f)
	}
	sort.Strings(filenames)

	var (
		out []string
		pub cryptotypes.PubKey
	)
	for _, f := range filenames {
		sig, pk, err := SignFrameHash(kr, keyName, hashes[f], workerAddr)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", f, err)
		}
		pub = pk
		out = append(out, f+"="+sig)
	}
	if pub == nil {
		rec, err := kr.Key(keyName)
		if err != nil {
			return nil, "", fmt.Errorf("load key %q: %w", keyName, err)
		}
		if pub, err = rec.GetPubKey(); err != nil {
			return nil, "", fmt.Errorf("get pubkey: %w", err)
		}
	}
	return out, EncodePublicKey(pub), nil
}

// VerifyFrameSignature checks a base64 signature over the frame hash as
// signed by workerAddr.
func VerifyFrameSignature(pubKeyB64, hash, workerAddr, sigB64 string) (bool, error) {
	pub, err := DecodePublicKey(pubKeyB64)
	if err != nil {
		return false, err
	}
	sig, err := base64.StdEncoding.DecodeString(sigB64)
	if err != nil {
		return false, fmt.Errorf("decode signature: %w", err)
	}
	msg, err := SignableMessage(hash, workerAddr)
	if err != nil {
		return false, err
	}
	return pub.VerifySignature(msg, sig), nil
}

// EncodePublicKey renders a public key as base64 of its raw bytes.
func EncodePublicKey(pub cryptotypes.PubKey) string {
	if pub == nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(pub.Bytes())
}

// DecodePublicKey parses a base64 compressed secp256k1 public key.
func DecodePublicKey(b64 string) (cryptotypes.PubKey, error) {
	bz, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(bz) != secp256k1.PubKeySize {
		return nil, fmt.Errorf("public key has %d bytes, want %d", len(bz), secp256k1.PubKeySize)
	}
	return &secp256k1.PubKey{Key: bz}, nil
}

// HashImagePixels hashes the decoded RGBA pixels of an image, so frames that
// differ only in encoding metadata hash the same.
func HashImagePixels(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	b := img.Bounds()
	h := sha256.New()
	px := make([]byte, 4)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			px[0], px[1], px[2], px[3] = byte(r>>8), byte(g>>8), byte(bl>>8), byte(a>>8)
			h.Write(px)
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// HashDirectory pixel-hashes every file under dir, keyed by path relative
// to dir.
func HashDirectory(dir string) (map[string]string, error) {
	hashes := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		hash, err := HashImagePixels(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		hashes[rel] = hash
		return nil
	})
	if err != nil {
		return nil, err
	}
	return hashes, nil
}
