package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// AuthLite использует отдельный ключ и нулевой IV.
// Открытый текст предваряется 32 нулевыми байтами, из ответа отбрасываются первые 16.
var (
	authLiteKey = []byte{47, 63, 106, 111, 43, 34, 76, 38, 92, 67, 114, 57, 40, 61, 107, 71}
	authLiteIV  = make([]byte, aes.BlockSize)
)

const authLitePrefix = 2 * aes.BlockSize

func authLiteBlock() (cipher.Block, error) {
	block, err := aes.NewCipher(authLiteKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return block, nil
}

// AuthLiteEncrypt шифрует запрос к delivery-серверу
func AuthLiteEncrypt(plain []byte) ([]byte, error) {
	block, err := authLiteBlock()
	if err != nil {
		return nil, err
	}

	data := make([]byte, authLitePrefix, authLitePrefix+len(plain))
	data = append(data, plain...)

	padded := pkcs7Pad(data, aes.BlockSize)
	out := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, authLiteIV).CryptBlocks(out, padded)
	return out, nil
}

// AuthLiteDecrypt расшифровывает ответ delivery-сервера
func AuthLiteDecrypt(ciphertext []byte) ([]byte, error) {
	block, err := authLiteBlock()
	if err != nil {
		return nil, err
	}

	plain, err := decryptCBC(block, authLiteIV, ciphertext)
	if err != nil {
		return nil, err
	}
	if len(plain) < aes.BlockSize {
		return nil, fmt.Errorf("%w: payload shorter than header", ErrDecryption)
	}

	return plain[aes.BlockSize:], nil
}
