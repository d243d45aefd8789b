package checksum

import (
	"strings"

	"github.com/google/uuid"
)

// NamespaceEntryIdentity is the UUID namespace for deterministic entry ids,
// derived from "dirtree/entry-identity/v1" within the URL namespace.
var NamespaceEntryIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("dirtree/entry-identity/v1"))

// EntryID returns a UUID v5 for a slash-separated relative path.
// The same path always yields the same id. Case is folded and a leading "./"
// dropped so ids survive case-insensitive filesystems:
//
//	"./docs/README.md" and "docs/readme.md" share an id
func EntryID(path string) uuid.UUID {
	normalized := strings.TrimPrefix(strings.ToLower(path), "./")
	return uuid.NewSHA1(NamespaceEntryIdentity, []byte(normalized))
}
