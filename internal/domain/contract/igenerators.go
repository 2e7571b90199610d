package contract

// IUUIDGenerator produces unique document identifiers.
type IUUIDGenerator interface {
	NewUUID() string
}

// IRandomGenerator produces url-safe random tokens of n random bytes.
type IRandomGenerator interface {
	GenerateRandomToken(n int) (string, error)
}

// IHasher hashes and verifies passwords.
type IHasher interface {
	HashPassword(password string) (string, error)
	ComparePasswordHash(password, hashedPassword string) error
}
