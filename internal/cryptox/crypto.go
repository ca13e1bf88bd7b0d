// Package cryptox holds content hashing helpers.
package cryptox

import (
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// DigestSize is the length in hex characters of a Digest.
const DigestSize = blake2b.Size256 * 2

// Digest returns the hex BLAKE2b-256 of data. Avatar objects are stored
// under their digest, so identical images share one key.
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ValidDigest reports whether s looks like a Digest output.
func ValidDigest(s string) bool {
	if len(s) != DigestSize {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil && strings.ToLower(s) == s
}

var extByType = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// ObjectKey builds the object-storage key for an avatar owned by userID.
func ObjectKey(userID, digest, contentType string) (string, error) {
	if !ValidDigest(digest) {
		return "", fmt.Errorf("invalid digest %q", digest)
	}
	ext, ok := extByType[contentType]
	if !ok {
		return "", fmt.Errorf("unsupported avatar type %q", contentType)
	}
	return "avatars/" + userID + "/" + digest + ext, nil
}

// OwnsKey reports whether key was issued to userID by ObjectKey.
func OwnsKey(userID, key string) bool {
	return userID != "" && strings.HasPrefix(key, "avatars/"+userID+"/")
}
