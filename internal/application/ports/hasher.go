package ports

type Hasher interface {
	Hash(secret string) (string, error)
	Verify(digest, secret string) bool
}
