package auth

import "fmt"

// AdminKey guards administrative operations with a shared key.
// Only the hash of the configured key is retained.
type AdminKey struct {
	hasher SecretHasher
	hash   string
}

// NewAdminKey hashes key with hasher. An empty key yields a disabled guard.
func NewAdminKey(hasher SecretHasher, key string) (*AdminKey, error) {
	if key == "" {
		return &AdminKey{hasher: hasher}, nil
	}
	hash, err := hasher.Hash(key)
	if err != nil {
		return nil, fmt.Errorf("hash admin key: %w", err)
	}
	return &AdminKey{hasher: hasher, hash: hash}, nil
}

// Enabled reports whether an admin key was configured.
func (k *AdminKey) Enabled() bool {
	return k.hash != ""
}

// Verify checks candidate against the configured key.
// A disabled guard rejects every candidate.
func (k *AdminKey) Verify(candidate string) bool {
	if !k.Enabled() || candidate == "" {
		return false
	}
	return k.hasher.Compare(k.hash, candidate) == nil
}
