package api

import (
	"strconv"
	"strings"

	"github.com/iudanet/sdgb/internal/crypto"
)

// Endpoint описывает адрес конкретного вызова API
type Endpoint struct {
	APIName   string
	Hash      string
	URL       string
	UserAgent string
}

// Resolver вычисляет хеш API, URL и User-Agent
type Resolver struct {
	baseURL        string
	salt           string
	obfuscateParam string
}

// NewResolver создает Resolver. baseURL дополняется завершающим "/".
func NewResolver(baseURL, salt, obfuscateParam string) *Resolver {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Resolver{
		baseURL:        baseURL,
		salt:           salt,
		obfuscateParam: obfuscateParam,
	}
}

// Resolve детерминированно строит Endpoint для apiName от имени userID
func (r *Resolver) Resolve(apiName string, userID int64) Endpoint {
	hash := crypto.APIHash(apiName, r.salt, r.obfuscateParam)
	return Endpoint{
		APIName:   apiName,
		Hash:      hash,
		URL:       r.baseURL + hash,
		UserAgent: hash + "#" + strconv.FormatInt(userID, 10),
	}
}
