package users

// Secret is a salted password hash. The pepper is server config and never
// stored next to the hash.
type Secret struct {
	PasswordHash []byte
	Salt         []byte
}

func (s Secret) Empty() bool {
	return len(s.PasswordHash) == 0
}
