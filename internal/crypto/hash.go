package crypto

import (
	"crypto/md5" //nolint:gosec // протокол сервера требует MD5
	"encoding/hex"
)

// Параметры хеширования имени API по умолчанию
const (
	DefaultAPISalt        = "MaimaiChn"
	DefaultObfuscateParam = "B44df8yT"
)

// APIHash вычисляет обфусцированное имя API:
// md5(apiName + salt + obfuscateParam) в нижнем регистре hex
func APIHash(apiName, salt, obfuscateParam string) string {
	sum := md5.Sum([]byte(apiName + salt + obfuscateParam))
	return hex.EncodeToString(sum[:])
}
