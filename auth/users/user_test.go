package users

import "testing"

func TestSecretEmpty(t *testing.T) {
	t.Parallel()
	if !(Secret{}).Empty() {
		t.Error("zero Secret should be empty")
	}
	if (Secret{PasswordHash: []byte{1}}).Empty() {
		t.Error("Secret with a hash should not be empty")
	}
}
