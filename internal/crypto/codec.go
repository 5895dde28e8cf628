package crypto

import (
	"bytes"
	"compress/zlib"
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDecryption indicates a wrong key or a corrupted ciphertext
	ErrDecryption = errors.New("failed to decrypt payload")

	// ErrDecompression indicates that the decrypted payload is not a zlib stream
	ErrDecompression = errors.New("failed to decompress payload")
)

// Параметры транспортного шифрования по умолчанию (общие для всех клиентов)
const (
	DefaultTransportKey = "a>32bVP7v<63BVLkY[xM>daZ1s9MBP<R"
	DefaultTransportIV  = "d6xHIKq]1J]Dt^ue"
)

// zlibHeader - первые байты zlib потока с уровнем сжатия по умолчанию
var zlibHeader = []byte{0x78, 0x9c}

// Codec кодирует тела запросов и ответов игрового сервера:
// AES-CBC(PKCS7(zlib(json)))
type Codec struct {
	block cipher.Block
	iv    []byte
}

// NewCodec создает кодек с фиксированными ключом и IV
func NewCodec(key, iv []byte) (*Codec, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("iv must be %d bytes, got %d", aes.BlockSize, len(iv))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	return &Codec{
		block: block,
		iv:    bytes.Clone(iv),
	}, nil
}

// Encode сжимает, дополняет и шифрует payload
func (c *Codec) Encode(plain []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(plain); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress payload: %w", err)
	}

	padded := pkcs7Pad(buf.Bytes(), aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, c.iv).CryptBlocks(out, padded)

	return out, nil
}

// Decode расшифровывает и распаковывает ответ сервера.
// Возвращает ErrDecryption или ErrDecompression в зависимости от этапа.
func (c *Codec) Decode(ciphertext []byte) ([]byte, error) {
	decrypted, err := decryptCBC(c.block, c.iv, ciphertext)
	if err != nil {
		return nil, err
	}

	if !bytes.HasPrefix(decrypted, zlibHeader) {
		return nil, fmt.Errorf("%w: missing zlib header", ErrDecompression)
	}

	zr, err := zlib.NewReader(bytes.NewReader(decrypted))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}
	defer func() {
		_ = zr.Close()
	}()

	plain, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecompression, err)
	}

	return plain, nil
}

func decryptCBC(block cipher.Block, iv, ciphertext []byte) ([]byte, error) {
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a multiple of the block size", ErrDecryption, len(ciphertext))
	}

	out := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(out, ciphertext)

	unpadded, err := pkcs7Unpad(out, aes.BlockSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryption, err)
	}
	return unpadded, nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, errors.New("invalid padding size")
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, errors.New("invalid padding bytes")
		}
	}

	return data[:len(data)-n], nil
}
