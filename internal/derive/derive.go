package derive

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	bip32 "github.com/vcvvvc/go-wallet-sdk/crypto/go-bip32"
	bip39 "github.com/vcvvvc/go-wallet-sdk/crypto/go-bip39"

	"FLOWADDR/internal/hdpath"
	"FLOWADDR/internal/keybuf"
)

var (
	ErrInvalidMnemonic  = errors.New("invalid mnemonic")
	ErrInvalidPath      = errors.New("invalid path")
	ErrDerivation       = errors.New("derivation failed")
	ErrInvalidPublicKey = errors.New("invalid public key")
)

// Why(中文): 派生入口只接受规范化助记词与已校验路径，错误只暴露三类语义。
// Why(English): The derivation entrypoint takes a canonical mnemonic and a validated path and exposes only three error kinds.
func DerivePublicKey(mnemonicCanonical string, path hdpath.Path) ([]byte, error) {
	if mnemonicCanonical == "" {
		return nil, ErrInvalidMnemonic
	}
	if path.Validate() != nil {
		return nil, ErrInvalidPath
	}
	seed, err := bip39.NewSeedWithErrorChecking(mnemonicCanonical, "")
	if err != nil {
		return nil, ErrInvalidMnemonic
	}
	master, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, ErrDerivation
	}
	child, err := master.NewChildKeyByPathString(path.String())
	if err != nil {
		return nil, ErrDerivation
	}
	if len(child.Key) != 32 {
		return nil, ErrDerivation
	}
	_, pub := btcec.PrivKeyFromBytes(child.Key)
	out := pub.SerializeUncompressed()
	if len(out) != keybuf.PublicKeyLen {
		return nil, ErrDerivation
	}
	return out, nil
}

// ParsePublicKey accepts a compressed or uncompressed secp256k1 key in hex,
// with or without a 0x prefix, and returns its 65-byte uncompressed form.
func ParsePublicKey(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	pub, err := secp256k1.ParsePubKey(raw)
	if err != nil {
		return nil, ErrInvalidPublicKey
	}
	return pub.SerializeUncompressed(), nil
}

// CanonicalizeMnemonic folds whitespace and case so equivalent spellings of
// one mnemonic derive the same keys.
func CanonicalizeMnemonic(raw string) (string, bool) {
	parts := strings.Fields(raw)
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	out := strings.Join(parts, " ")
	return out, out != ""
}
