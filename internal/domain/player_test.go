package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewPlayerAccount(t *testing.T) {
	hash := []byte{1, 2, 3}
	salt := []byte{4, 5, 6}

	acc, err := NewPlayerAccount("  John.Doe@Mail.COM ", hash, salt)
	if err != nil {
		t.Fatal(err)
	}
	if acc.Email != "john.doe@mail.com" {
		t.Errorf("email = %q, want normalized lowercase", acc.Email)
	}

	if _, err := NewPlayerAccount("not-an-email", hash, salt); !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("bad email = %v, want ErrInvalidEmail", err)
	}
	if _, err := NewPlayerAccount("a@b.cc", nil, nil); !errors.Is(err, ErrNoCredential) {
		t.Errorf("no secret = %v, want ErrNoCredential", err)
	}
}

func TestNewExternalPlayerAccount(t *testing.T) {
	acc, err := NewExternalPlayerAccount("a@b.cc", "provider|1234")
	if err != nil {
		t.Fatal(err)
	}
	if len(acc.PasswordHash) != 0 {
		t.Error("external account must not carry a password secret")
	}
	if _, err := NewExternalPlayerAccount("a@b.cc", ""); !errors.Is(err, ErrNoCredential) {
		t.Errorf("empty provider id = %v, want ErrNoCredential", err)
	}
}

func TestPlayerAccountJoinSquad(t *testing.T) {
	acc, err := NewExternalPlayerAccount("a@b.cc", "ext")
	if err != nil {
		t.Fatal(err)
	}
	squadID := uuid.New()
	if err := acc.JoinSquad(squadID); err != nil {
		t.Fatal(err)
	}
	if err := acc.JoinSquad(squadID); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("second join = %v, want ErrAlreadyMember", err)
	}
	if got := acc.SquadIDs(); len(got) != 1 || got[0] != squadID {
		t.Errorf("SquadIDs() = %v", got)
	}
	acc.LeaveSquad(squadID)
	if got := acc.SquadIDs(); len(got) != 0 {
		t.Errorf("SquadIDs() after leave = %v", got)
	}
}
