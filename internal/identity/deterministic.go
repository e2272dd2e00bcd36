package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Keys must be prefixed by domain so different entity kinds never collide.
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// MissingTranslationUUID fingerprints a missed lookup so repeated misses for
// the same document field and locale share an ID.
func MissingTranslationUUID(documentID, fieldName, locale string) uuid.UUID {
	return UUID("go-localize:missing:" + strings.TrimSpace(documentID) + ":" + strings.TrimSpace(fieldName) + ":" + strings.TrimSpace(locale))
}

// CorpusRunUUID identifies a coverage run over a corpus for a locale.
func CorpusRunUUID(locale string, documentIDs []string) uuid.UUID {
	return UUID("go-localize:coverage:" + strings.TrimSpace(locale) + ":" + strings.Join(documentIDs, ","))
}
