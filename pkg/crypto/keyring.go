package crypto

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cosmos/cosmos-sdk/codec"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	"github.com/cosmos/cosmos-sdk/std"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
)

const (
	// DefaultAppName is the keyring namespace used by janctiond.
	DefaultAppName = "janction"
	// DefaultAccountHRP is the bech32 prefix of janction accounts.
	DefaultAccountHRP = "janction"
	defaultDirName    = ".janctiond"
)

// KeyringParams holds configuration for initializing a Cosmos keyring.
type KeyringParams struct {
	// AppName names the keyring namespace. Default: "janction"
	AppName string
	// Backend selects the keyring backend ("os" | "file" | "test"). Default: "os"
	Backend string
	// Dir is the root directory for the keyring (if Backend="file"). Default: $HOME/.janctiond
	Dir string
	// Input is an optional io.Reader for interactive backends (nil for non-interactive)
	Input io.Reader
}

// DefaultKeyringParams returns sensible defaults:
//   - AppName: "janction"
//   - Backend: "os"
//   - Dir: $HOME/.janctiond
func DefaultKeyringParams() KeyringParams {
	return KeyringParams{
		AppName: DefaultAppName,
		Backend: keyring.BackendOS,
		Dir:     defaultDir(),
	}
}

func defaultDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, defaultDirName)
}

// NewKeyring creates a new Cosmos keyring with the provided parameters.
func NewKeyring(p KeyringParams) (keyring.Keyring, error) {
	app := p.AppName
	if app == "" {
		app = DefaultAppName
	}
	backend := p.Backend
	if backend == "" {
		backend = keyring.BackendOS
	}
	dir := p.Dir
	if dir == "" {
		dir = defaultDir()
	} else if strings.HasPrefix(dir, "~/") {
		home, _ := os.UserHomeDir()
		dir = filepath.Join(home, dir[2:])
	}
	in := p.Input
	if in == nil {
		in = bufio.NewReader(os.Stdin)
	}

	// Create a proto codec for keyring operations
	reg := codectypes.NewInterfaceRegistry()
	std.RegisterInterfaces(reg)
	cdc := codec.NewProtoCodec(reg)

	return keyring.New(app, backend, dir, in, cdc)
}

// GetKey returns metadata for the named key in the provided keyring.
func GetKey(kr keyring.Keyring, keyName string) (*keyring.Record, error) {
	if kr == nil {
		return nil, fmt.Errorf("keyring is required")
	}
	return kr.Key(keyName)
}

// LoadKeyringFromMnemonic creates a throwaway test keyring, imports the
// mnemonic, and returns the keyring, pubkey bytes, and address for hrp.
func LoadKeyringFromMnemonic(keyName, mnemonicFile, hrp string) (keyring.Keyring, []byte, string, error) {
	if keyName == "" {
		return nil, nil, "", fmt.Errorf("key name is required")
	}
	if hrp == "" {
		hrp = DefaultAccountHRP
	}
	mnemonic, err := readMnemonicFile(mnemonicFile)
	if err != nil {
		return nil, nil, "", err
	}

	krDir, err := os.MkdirTemp("", "janction-keyring-*")
	if err != nil {
		return nil, nil, "", fmt.Errorf("create keyring dir: %w", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	cryptocodec.RegisterInterfaces(registry)
	krCodec := codec.NewProtoCodec(registry)
	kr, err := keyring.New(DefaultAppName, keyring.BackendTest, krDir, strings.NewReader(""), krCodec)
	if err != nil {
		return nil, nil, "", fmt.Errorf("create keyring: %w", err)
	}

	pub, addr, err := ImportKeyFromMnemonic(kr, keyName, mnemonic, hrp)
	if err != nil {
		return nil, nil, "", err
	}
	return kr, pub, addr, nil
}

// ImportKeyFromMnemonicFile reads a mnemonic from disk and imports it with
// ImportKeyFromMnemonic.
func ImportKeyFromMnemonicFile(kr keyring.Keyring, keyName, mnemonicFile, hrp string) ([]byte, string, error) {
	mnemonic, err := readMnemonicFile(mnemonicFile)
	if err != nil {
		return nil, "", err
	}
	return ImportKeyFromMnemonic(kr, keyName, mnemonic, hrp)
}

// ImportKeyFromMnemonic imports the mnemonic into an existing keyring (if needed),
// returning the pubkey bytes and address for the provided HRP.
func ImportKeyFromMnemonic(kr keyring.Keyring, keyName, mnemonic, hrp string) ([]byte, string, error) {
	if kr == nil {
		return nil, "", fmt.Errorf("keyring is nil")
	}
	if keyName == "" {
		return nil, "", fmt.Errorf("key name is required")
	}
	mnemonic = strings.TrimSpace(mnemonic)
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, "", fmt.Errorf("invalid mnemonic")
	}

	if _, err := kr.Key(keyName); err != nil {
		if _, err := kr.NewAccount(keyName, mnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1); err != nil {
			return nil, "", fmt.Errorf("import key: %w", err)
		}
	}

	addr, err := AddressFromKey(kr, keyName, hrp)
	if err != nil {
		return nil, "", fmt.Errorf("derive address: %w", err)
	}
	rec, err := kr.Key(keyName)
	if err != nil {
		return nil, "", fmt.Errorf("load key: %w", err)
	}
	pub, err := rec.GetPubKey()
	if err != nil {
		return nil, "", fmt.Errorf("get pubkey: %w", err)
	}
	if pub == nil {
		return nil, "", fmt.Errorf("pubkey is nil")
	}
	return pub.Bytes(), addr, nil
}

func readMnemonicFile(mnemonicFile string) (string, error) {
	mnemonicRaw, err := os.ReadFile(mnemonicFile)
	if err != nil {
		return "", fmt.Errorf("read mnemonic file: %w", err)
	}
	mnemonic := strings.TrimSpace(string(mnemonicRaw))
	if mnemonic == "" {
		return "", fmt.Errorf("mnemonic file is empty")
	}
	return mnemonic, nil
}
