package crypto

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cosmos/cosmos-sdk/crypto/hd"
	"github.com/cosmos/cosmos-sdk/crypto/keyring"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/go-bip39"
	"github.com/stretchr/testify/require"

	sdkcrypto "github.com/janction/sdk-go/internal/crypto"
)

var testMnemonic = func() string {
	entropy := make([]byte, 32)
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		panic(err)
	}
	return mnemonic
}()

func TestDefaultKeyringParams(t *testing.T) {
	params := DefaultKeyringParams()
	require.Equal(t, "janction", params.AppName)
	require.Equal(t, "os", params.Backend)
	if home, err := os.UserHomeDir(); err == nil {
		require.Equal(t, filepath.Join(home, ".janctiond"), params.Dir)
	}
}

func TestNewKeyring(t *testing.T) {
	kr := newTestKeyring(t)
	require.NotNil(t, kr)
	_, err := GetKey(kr, "missing")
	require.Error(t, err)
	_, err = GetKey(nil, "missing")
	require.Error(t, err)
}

func TestAddressFromKey(t *testing.T) {
	kr := newTestKeyring(t)
	_, err := kr.NewAccount("alice", testMnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1)
	require.NoError(t, err)

	addr, err := AddressFromKey(kr, "alice", "janction")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(addr, "janction1"))
	require.NoError(t, ValidateAddress(addr, "janction"))
	require.Error(t, ValidateAddress(addr, "cosmos"))
	require.Error(t, ValidateAddress("janction1garbage", "janction"))

	_, err = AddressFromKey(nil, "alice", "janction")
	require.Error(t, err)
	_, err = AddressFromKey(kr, "", "janction")
	require.Error(t, err)
	_, err = AddressFromKey(kr, "missing", "janction")
	require.Error(t, err)
}

func TestLoadKeyringFromMnemonic(t *testing.T) {
	mnemonicFile := writeMnemonicFile(t, testMnemonic)
	kr, pub, addr, err := LoadKeyringFromMnemonic("alice", mnemonicFile, "")
	require.NoError(t, err)
	require.NotNil(t, kr)
	require.NotEmpty(t, pub)
	require.True(t, strings.HasPrefix(addr, "janction"))

	_, err = kr.Key("alice")
	require.NoError(t, err)

	_, _, _, err = LoadKeyringFromMnemonic("", mnemonicFile, "")
	require.Error(t, err)
}

func TestImportKeyFromMnemonic(t *testing.T) {
	kr := newTestKeyring(t)
	mnemonicFile := writeMnemonicFile(t, testMnemonic)

	pub, addr, err := ImportKeyFromMnemonicFile(kr, "alice", mnemonicFile, "cosmos")
	require.NoError(t, err)
	require.NotEmpty(t, pub)
	require.True(t, strings.HasPrefix(addr, "cosmos"))

	pub2, addr2, err := ImportKeyFromMnemonic(kr, "alice", testMnemonic, "cosmos")
	require.NoError(t, err)
	require.Equal(t, addr, addr2)
	require.Equal(t, pub, pub2)

	_, _, err = ImportKeyFromMnemonic(kr, "bob", "not a mnemonic", "cosmos")
	require.Error(t, err)

	_, _, err = ImportKeyFromMnemonicFile(kr, "carol", writeMnemonicFile(t, "  "), "cosmos")
	require.Error(t, err)
}

func TestTxSignerSignAndEncode(t *testing.T) {
	kr := newTestKeyring(t)
	_, err := kr.NewAccount("alice", testMnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1)
	require.NoError(t, err)

	txCfg, err := sdkcrypto.NewDefaultTxConfig("janction")
	require.NoError(t, err)
	signer := TxSigner{Keyring: kr, KeyName: "alice", ChainID: "janction-1", AccountHRP: "janction"}

	addr, err := signer.Address()
	require.NoError(t, err)
	want, err := AddressFromKey(kr, "alice", "janction")
	require.NoError(t, err)
	require.Equal(t, want, addr)

	builder := txCfg.NewTxBuilder()
	bz, err := signer.SignAndEncode(context.Background(), txCfg, builder, Account{Number: 1, Sequence: 4})
	require.NoError(t, err)
	require.NotEmpty(t, bz)

	sigs, err := builder.GetTx().GetSignaturesV2()
	require.NoError(t, err)
	require.Len(t, sigs, 1)
	require.Equal(t, uint64(4), sigs[0].Sequence)

	decoded, err := txCfg.TxDecoder()(bz)
	require.NoError(t, err)
	require.NotNil(t, decoded)
}

func TestTxSignerRequiresIdentity(t *testing.T) {
	kr := newTestKeyring(t)
	txCfg, err := sdkcrypto.NewDefaultTxConfig("janction")
	require.NoError(t, err)

	cases := map[string]TxSigner{
		"keyring":  {KeyName: "alice", ChainID: "janction-1"},
		"key name": {Keyring: kr, ChainID: "janction-1"},
		"chain id": {Keyring: kr, KeyName: "alice"},
	}
	for name, signer := range cases {
		err := signer.Sign(context.Background(), txCfg, txCfg.NewTxBuilder(), Account{})
		require.ErrorContains(t, err, name, name)
	}

	err = TxSigner{Keyring: kr, KeyName: "missing", ChainID: "janction-1"}.Sign(context.Background(), txCfg, txCfg.NewTxBuilder(), Account{})
	require.ErrorContains(t, err, "missing")
}

func TestSignableMessageIsDeterministic(t *testing.T) {
	a, err := SignableMessage("abc", "janction1w")
	require.NoError(t, err)
	b, err := SignableMessage("abc", "janction1w")
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 32)

	c, err := SignableMessage("abc", "janction1v")
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

func TestFrameSignatureRoundTrip(t *testing.T) {
	kr := newTestKeyring(t)
	_, err := kr.NewAccount("worker", testMnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1)
	require.NoError(t, err)
	worker, err := AddressFromKey(kr, "worker", "janction")
	require.NoError(t, err)

	sig, pub, err := SignFrameHash(kr, "worker", "deadbeef", worker)
	require.NoError(t, err)
	pubB64 := EncodePublicKey(pub)

	ok, err := VerifyFrameSignature(pubB64, "deadbeef", worker, sig)
	require.NoError(t, err)
	require.True(t, ok)

	// signature is bound to both the hash and the worker address
	ok, err = VerifyFrameSignature(pubB64, "cafebabe", worker, sig)
	require.NoError(t, err)
	require.False(t, ok)
	ok, err = VerifyFrameSignature(pubB64, "deadbeef", "janction1other", sig)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = VerifyFrameSignature("!!", "deadbeef", worker, sig)
	require.Error(t, err)
	_, err = DecodePublicKey("AAAA")
	require.Error(t, err)
}

func TestSignFrameHashes(t *testing.T) {
	kr := newTestKeyring(t)
	_, err := kr.NewAccount("worker", testMnemonic, "", sdk.FullFundraiserPath, hd.Secp256k1)
	require.NoError(t, err)

	entries, pubB64, err := SignFrameHashes(kr, "worker", "janction1w", map[string]string{
		"frame_0002.png": "h2",
		"frame_0001.png": "h1",
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.True(t, strings.HasPrefix(entries[0], "frame_0001.png="))

	sig := strings.TrimPrefix(entries[1], "frame_0002.png=")
	ok, err := VerifyFrameSignature(pubB64, "h2", "janction1w", sig)
	require.NoError(t, err)
	require.True(t, ok)

	empty, pubOnly, err := SignFrameHashes(kr, "worker", "janction1w", nil)
	require.NoError(t, err)
	require.Empty(t, empty)
	require.Equal(t, pubB64, pubOnly)
}

func TestHashImagePixels(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"), color.RGBA{R: 255, A: 255})
	writePNG(t, filepath.Join(dir, "b.png"), color.RGBA{R: 255, A: 255})
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub"), 0o755))
	writePNG(t, filepath.Join(dir, "sub", "c.png"), color.RGBA{B: 255, A: 255})

	a, err := HashImagePixels(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	b, err := HashImagePixels(filepath.Join(dir, "b.png"))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 64)

	hashes, err := HashDirectory(dir)
	require.NoError(t, err)
	require.Len(t, hashes, 3)
	require.Equal(t, a, hashes["a.png"])
	require.NotEqual(t, a, hashes[filepath.Join("sub", "c.png")])

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))
	_, err = HashDirectory(dir)
	require.Error(t, err)
}

func newTestKeyring(t *testing.T) keyring.Keyring {
	t.Helper()
	kr, err := NewKeyring(KeyringParams{
		AppName: "janction",
		Backend: "test",
		Dir:     t.TempDir(),
	})
	require.NoError(t, err)
	return kr
}

func writeMnemonicFile(t *testing.T, mnemonic string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mnemonic.txt")
	require.NoError(t, os.WriteFile(path, []byte(mnemonic), 0o600))
	return path
}

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}
