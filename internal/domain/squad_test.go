package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewSquad(t *testing.T) {
	creator := uuid.New()
	squad, err := NewSquad("wednesday five-a-side", creator)
	if err != nil {
		t.Fatal(err)
	}
	if !squad.IsAdmin(creator) {
		t.Error("creator must be admin right after creation")
	}
	if len(squad.Members()) != 0 {
		t.Error("new squad must have no members")
	}

	if _, err := NewSquad("", creator); !errors.Is(err, ErrEmptyName) {
		t.Errorf("empty name error = %v, want ErrEmptyName", err)
	}
	if _, err := NewSquad("x", uuid.Nil); !errors.Is(err, ErrEmptyID) {
		t.Errorf("nil creator error = %v, want ErrEmptyID", err)
	}
}

func TestSquadAdmins(t *testing.T) {
	creator := uuid.New()
	other := uuid.New()
	squad, err := NewSquad("squad", creator)
	if err != nil {
		t.Fatal(err)
	}

	if err := squad.RemoveAdmin(creator); !errors.Is(err, ErrLastAdmin) {
		t.Errorf("removing sole admin = %v, want ErrLastAdmin", err)
	}
	if err := squad.AddAdmin(other); err != nil {
		t.Fatal(err)
	}
	if err := squad.AddAdmin(other); !errors.Is(err, ErrAlreadyAdmin) {
		t.Errorf("duplicate admin = %v, want ErrAlreadyAdmin", err)
	}
	if err := squad.RemoveAdmin(creator); err != nil {
		t.Errorf("removing one of two admins = %v", err)
	}
	if err := squad.RemoveAdmin(creator); !errors.Is(err, ErrNotAdmin) {
		t.Errorf("removing non-admin = %v, want ErrNotAdmin", err)
	}
}

func TestSquadMembers(t *testing.T) {
	creator := uuid.New()
	player := uuid.New()
	squad, err := NewSquad("squad", creator)
	if err != nil {
		t.Fatal(err)
	}

	if err := squad.AddMember(player, 1000); err != nil {
		t.Fatal(err)
	}
	if err := squad.AddMember(player, 1000); !errors.Is(err, ErrAlreadyMember) {
		t.Errorf("second join = %v, want ErrAlreadyMember", err)
	}
	r, err := squad.MemberRating(player)
	if err != nil || r != 1000 {
		t.Errorf("MemberRating = %d, %v, want 1000", r, err)
	}

	if err := squad.ApplyRatingDelta(player, -8); err != nil {
		t.Fatal(err)
	}
	if r, _ := squad.MemberRating(player); r != 992 {
		t.Errorf("rating after delta = %d, want 992", r)
	}

	// Removing a member leaves admin status alone.
	if err := squad.AddAdmin(player); err != nil {
		t.Fatal(err)
	}
	if err := squad.RemoveMember(player); err != nil {
		t.Fatal(err)
	}
	if !squad.IsAdmin(player) {
		t.Error("member removal must not touch admin set")
	}
	if _, err := squad.MemberRating(player); !errors.Is(err, ErrNotMember) {
		t.Errorf("rating of removed member = %v, want ErrNotMember", err)
	}
	if err := squad.RemoveMember(player); !errors.Is(err, ErrNotMember) {
		t.Errorf("double removal = %v, want ErrNotMember", err)
	}
}
