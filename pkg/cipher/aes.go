// Package cipher encrypts the payload hidden by the image codec with AES-256 in CBC mode and PKCS#7 padding. The
// 256-bit key is derived from the password with HKDF-SHA256.
package cipher

import (
	"bytes"
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	KeySize   = 32
	BlockSize = aes.BlockSize
)

// IVMode selects how the initialization vector is chosen.
type IVMode string

const (
	// ZeroIV always uses an all-zero IV. The same message and password always produce the same ciphertext, which is
	// weak, but keeps images readable by tools that expect it.
	ZeroIV IVMode = "zero"
	// RandomIV draws a fresh IV per message and prepends it to the ciphertext.
	RandomIV IVMode = "random"
)

var (
	ErrEncrypt           = errors.New("unable to encrypt message")
	ErrDecrypt           = errors.New("unable to decrypt message")
	ErrInvalidCiphertext = errors.New("ciphertext length is not a positive multiple of the AES block size")
	ErrUnknownIVMode     = errors.New("unknown IV mode")
)

var (
	hkdfInfoPayloadKey = []byte("stegano.payload.aes256cbc.v1")
	zeroIV             = make([]byte, BlockSize)
)

func ParseIVMode(s string) (IVMode, error) {
	switch IVMode(s) {
	case "", ZeroIV:
		return ZeroIV, nil
	case RandomIV:
		return RandomIV, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownIVMode, s)
	}
}

// AES implements the payload cipher used by the image encoder and decoder.
type AES struct {
	mode       IVMode
	randReader io.Reader
}

func NewAES(mode IVMode) (*AES, error) {
	if _, err := ParseIVMode(string(mode)); err != nil {
		return nil, err
	}
	if mode == "" {
		mode = ZeroIV
	}
	return &AES{mode: mode, randReader: rand.Reader}, nil
}

func (a *AES) Mode() IVMode {
	return a.mode
}

// Overhead returns the number of bytes the IV adds in front of every ciphertext.
func (a *AES) Overhead() int {
	if a.mode == RandomIV {
		return BlockSize
	}
	return 0
}

// CiphertextLen returns the size of the ciphertext produced for a plaintext of the given length.
func (a *AES) CiphertextLen(plaintextLen int) int {
	return a.Overhead() + (plaintextLen/BlockSize+1)*BlockSize
}

// MaxPlaintextLen returns the longest plaintext whose ciphertext fits in ciphertextLen bytes, or -1 if none does.
func (a *AES) MaxPlaintextLen(ciphertextLen int) int {
	blocks := (ciphertextLen - a.Overhead()) / BlockSize
	if blocks < 1 {
		return -1
	}
	return blocks*BlockSize - 1
}

func (a *AES) Encrypt(plaintext []byte, password string) ([]byte, error) {
	block, err := newBlock(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncrypt, err)
	}

	iv := zeroIV
	if a.mode == RandomIV {
		iv = make([]byte, BlockSize)
		if _, err = io.ReadFull(a.randReader, iv); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncrypt, err)
		}
	}

	padded := pkcs7Pad(plaintext)
	ciphertext := make([]byte, a.Overhead()+len(padded))
	if a.mode == RandomIV {
		copy(ciphertext, iv)
	}
	stdcipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext[a.Overhead():], padded)
	return ciphertext, nil
}

func (a *AES) Decrypt(ciphertext []byte, password string) ([]byte, error) {
	iv := zeroIV
	if a.mode == RandomIV {
		if len(ciphertext) < BlockSize {
			return nil, ErrInvalidCiphertext
		}
		iv, ciphertext = ciphertext[:BlockSize], ciphertext[BlockSize:]
	}
	if len(ciphertext) == 0 || len(ciphertext)%BlockSize != 0 {
		return nil, ErrInvalidCiphertext
	}

	block, err := newBlock(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecrypt, err)
	}

	// The padding only depends on the last two blocks, check it before decrypting everything
	previous := iv
	if len(ciphertext) > BlockSize {
		previous = ciphertext[len(ciphertext)-2*BlockSize : len(ciphertext)-BlockSize]
	}
	lastBlock := make([]byte, BlockSize)
	stdcipher.NewCBCDecrypter(block, previous).CryptBlocks(lastBlock, ciphertext[len(ciphertext)-BlockSize:])
	if _, err = pkcs7Unpad(lastBlock); err != nil {
		return nil, err
	}

	plaintext := make([]byte, len(ciphertext))
	stdcipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, ciphertext)
	return pkcs7Unpad(plaintext)
}

func newBlock(password string) (stdcipher.Block, error) {
	key, err := deriveKey(password)
	if err != nil {
		return nil, err
	}
	return aes.NewCipher(key)
}

func deriveKey(password string) ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(password), nil, hkdfInfoPayloadKey), key); err != nil {
		return nil, err
	}
	return key, nil
}

func pkcs7Pad(data []byte) []byte {
	padLen := BlockSize - len(data)%BlockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > BlockSize || padLen > len(data) {
		return nil, ErrDecrypt
	}
	for _, p := range data[len(data)-padLen:] {
		if int(p) != padLen {
			return nil, ErrDecrypt
		}
	}
	return data[:len(data)-padLen], nil
}
