package web

import (
	"testing"

	"github.com/google/uuid"
)

func Test_createMatchRequest_Validate(t *testing.T) {
	squadID := uuid.NameSpaceDNS
	p1 := uuid.NameSpaceURL
	p2 := uuid.NameSpaceOID
	p3 := uuid.NameSpaceX500
	tests := []struct {
		name    string
		req     createMatchRequest
		wantErr bool
	}{
		{
			name: "two players",
			req: createMatchRequest{
				SquadID:   squadID,
				PlayerIDs: []uuid.UUID{p1, p2},
			},
			wantErr: false,
		},
		{
			name: "missing squad",
			req: createMatchRequest{
				PlayerIDs: []uuid.UUID{p1, p2},
			},
			wantErr: true,
		},
		{
			name: "odd players",
			req: createMatchRequest{
				SquadID:   squadID,
				PlayerIDs: []uuid.UUID{p1, p2, p3},
			},
			wantErr: true,
		},
		{
			name: "duplicate player",
			req: createMatchRequest{
				SquadID:   squadID,
				PlayerIDs: []uuid.UUID{p1, p1},
			},
			wantErr: true,
		},
		{
			name: "nil participant",
			req: createMatchRequest{
				SquadID:   squadID,
				PlayerIDs: []uuid.UUID{p1, uuid.Nil},
			},
			wantErr: true,
		},
		{
			name: "empty list",
			req: createMatchRequest{
				SquadID: squadID,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_recordResultRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		winner  string
		wantErr bool
	}{
		{name: "team a", winner: "team_a", wantErr: false},
		{name: "team b", winner: "team_b", wantErr: false},
		{name: "draw", winner: "draw", wantErr: false},
		{name: "empty", winner: "", wantErr: true},
		{name: "garbage", winner: "team_c", wantErr: true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := recordResultRequest{Winner: tt.winner}
			if err := req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func Test_signUpRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     signUpRequest
		wantErr bool
	}{
		{
			name:    "ok",
			req:     signUpRequest{Email: "a@b.cc", Password: "pw", PasswordRepeat: "pw"},
			wantErr: false,
		},
		{
			name:    "empty email",
			req:     signUpRequest{Password: "pw", PasswordRepeat: "pw"},
			wantErr: true,
		},
		{
			name:    "empty password",
			req:     signUpRequest{Email: "a@b.cc"},
			wantErr: true,
		},
		{
			name:    "mismatch",
			req:     signUpRequest{Email: "a@b.cc", Password: "pw", PasswordRepeat: "pw2"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if err := tt.req.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
