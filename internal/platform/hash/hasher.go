package hash

// Hasher is the contract for one-way password hashing.
type Hasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hashed string) (bool, error)
}
