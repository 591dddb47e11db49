package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"squadmatch/gen/model"
	"squadmatch/gen/table"
	"squadmatch/internal/domain"
	"squadmatch/internal/storage"
)

// Storage implements all three aggregate stores over one sqlite database.
// Aggregates come back through the domain Restore* factories; nothing here
// reaches into aggregate internals.
type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.PlayerStorage = (*Storage)(nil)
var _ storage.SquadStorage = (*Storage)(nil)
var _ storage.MatchStorage = (*Storage)(nil)

func New(db *sql.DB, log *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: log.WithField("name", "sqlite"),
	}
}

func Open(file string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", "file:"+file+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, err
	}
	return db, nil
}

func (s *Storage) GetPlayer(ctx context.Context, id uuid.UUID) (domain.PlayerAccount, error) {
	return s.getPlayer(ctx, table.Players.ID.EQ(sqlite.String(id.String())))
}

func (s *Storage) GetPlayerByEmail(ctx context.Context, email string) (domain.PlayerAccount, error) {
	return s.getPlayer(ctx, table.Players.Email.EQ(sqlite.String(email)))
}

func (s *Storage) GetPlayerByExternalID(ctx context.Context, externalID string) (domain.PlayerAccount, error) {
	return s.getPlayer(ctx, table.Players.ExternalID.EQ(sqlite.String(externalID)))
}

func (s *Storage) getPlayer(ctx context.Context, where sqlite.BoolExpression) (domain.PlayerAccount, error) {
	var row model.Players
	err := table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		WHERE(where).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return domain.PlayerAccount{}, domain.ErrPlayerNotFound
		}
		return domain.PlayerAccount{}, err
	}
	squadIDs, err := s.playerSquadIDs(ctx, row.ID)
	if err != nil {
		return domain.PlayerAccount{}, err
	}
	return convertPlayerToDomain(row, squadIDs)
}

// playerSquadIDs reads the membership join table. The account aggregate
// exposes the squad id list; where it lives is this adapter's business.
func (s *Storage) playerSquadIDs(ctx context.Context, playerID string) ([]uuid.UUID, error) {
	var memberRows []model.SquadMembers
	err := table.SquadMembers.
		SELECT(table.SquadMembers.AllColumns).
		FROM(table.SquadMembers).
		WHERE(table.SquadMembers.PlayerID.EQ(sqlite.String(playerID))).
		ORDER_BY(table.SquadMembers.JoinedAt.ASC()).
		QueryContext(ctx, s.db, &memberRows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	squadIDs := make([]uuid.UUID, 0, len(memberRows))
	for _, m := range memberRows {
		id, err := uuid.Parse(m.SquadID)
		if err != nil {
			return nil, err
		}
		squadIDs = append(squadIDs, id)
	}
	return squadIDs, nil
}

func (s *Storage) AddPlayer(ctx context.Context, account domain.PlayerAccount) error {
	row := convertPlayerFromDomain(account)
	_, err := table.Players.
		INSERT(table.Players.AllColumns).
		MODEL(row).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("insert player: %w", err)
	}
	return nil
}

func (s *Storage) UpdatePlayer(ctx context.Context, account domain.PlayerAccount) error {
	row := convertPlayerFromDomain(account)
	_, err := table.Players.
		UPDATE(table.Players.MutableColumns).
		MODEL(row).
		WHERE(table.Players.ID.EQ(sqlite.String(row.ID))).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("update player: %w", err)
	}
	return nil
}

func (s *Storage) GetSquad(ctx context.Context, id uuid.UUID) (*domain.Squad, error) {
	var row model.Squads
	err := table.Squads.
		SELECT(table.Squads.AllColumns).
		FROM(table.Squads).
		WHERE(table.Squads.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, domain.ErrSquadNotFound
		}
		return nil, err
	}

	var admins []model.SquadAdmins
	err = table.SquadAdmins.
		SELECT(table.SquadAdmins.AllColumns).
		FROM(table.SquadAdmins).
		WHERE(table.SquadAdmins.SquadID.EQ(sqlite.String(row.ID))).
		QueryContext(ctx, s.db, &admins)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	var members []model.SquadMembers
	err = table.SquadMembers.
		SELECT(table.SquadMembers.AllColumns).
		FROM(table.SquadMembers).
		WHERE(table.SquadMembers.SquadID.EQ(sqlite.String(row.ID))).
		ORDER_BY(table.SquadMembers.JoinedAt.ASC()).
		QueryContext(ctx, s.db, &members)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}

	return convertSquadToDomain(row, admins, members)
}

func (s *Storage) ListSquadsForPlayer(ctx context.Context, playerID uuid.UUID) ([]*domain.Squad, error) {
	squadIDs, err := s.playerSquadIDs(ctx, playerID.String())
	if err != nil {
		return nil, err
	}
	squads := make([]*domain.Squad, 0, len(squadIDs))
	for _, id := range squadIDs {
		squad, err := s.GetSquad(ctx, id)
		if err != nil {
			return nil, err
		}
		squads = append(squads, squad)
	}
	return squads, nil
}

func (s *Storage) AddSquad(ctx context.Context, squad *domain.Squad) error {
	row, admins, members := convertSquadFromDomain(squad)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = table.Squads.INSERT(table.Squads.AllColumns).MODEL(row).ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("insert squad: %w", err)
	}
	if err := insertSquadRelations(ctx, tx, admins, members); err != nil {
		return err
	}
	return tx.Commit()
}

// UpdateSquad rewrites the squad's relation rows wholesale. Squads are
// small, the simple sync beats tracking row-level diffs.
func (s *Storage) UpdateSquad(ctx context.Context, squad *domain.Squad) error {
	row, admins, members := convertSquadFromDomain(squad)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = table.Squads.
		UPDATE(table.Squads.MutableColumns).
		MODEL(row).
		WHERE(table.Squads.ID.EQ(sqlite.String(row.ID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("update squad: %w", err)
	}
	_, err = table.SquadAdmins.DELETE().
		WHERE(table.SquadAdmins.SquadID.EQ(sqlite.String(row.ID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("clear squad admins: %w", err)
	}
	_, err = table.SquadMembers.DELETE().
		WHERE(table.SquadMembers.SquadID.EQ(sqlite.String(row.ID))).
		ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("clear squad members: %w", err)
	}
	if err := insertSquadRelations(ctx, tx, admins, members); err != nil {
		return err
	}
	return tx.Commit()
}

func insertSquadRelations(ctx context.Context, tx *sql.Tx, admins []model.SquadAdmins, members []model.SquadMembers) error {
	if len(admins) > 0 {
		_, err := table.SquadAdmins.INSERT(table.SquadAdmins.AllColumns).MODELS(admins).ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("insert squad admins: %w", err)
		}
	}
	if len(members) > 0 {
		_, err := table.SquadMembers.INSERT(table.SquadMembers.AllColumns).MODELS(members).ExecContext(ctx, tx)
		if err != nil {
			return fmt.Errorf("insert squad members: %w", err)
		}
	}
	return nil
}

func (s *Storage) GetMatch(ctx context.Context, id uuid.UUID) (*domain.Match, error) {
	var row model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.ID.EQ(sqlite.String(id.String()))).
		QueryContext(ctx, s.db, &row)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return s.loadMatch(ctx, row)
}

func (s *Storage) loadMatch(ctx context.Context, row model.Matches) (*domain.Match, error) {
	var participants []model.MatchParticipants
	err := table.MatchParticipants.
		SELECT(table.MatchParticipants.AllColumns).
		FROM(table.MatchParticipants).
		WHERE(table.MatchParticipants.MatchID.EQ(sqlite.String(row.ID))).
		ORDER_BY(table.MatchParticipants.Team.ASC(), table.MatchParticipants.Position.ASC()).
		QueryContext(ctx, s.db, &participants)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	return convertMatchToDomain(row, participants)
}

func (s *Storage) ListMatchesForSquad(ctx context.Context, squadID uuid.UUID) ([]*domain.Match, error) {
	var rows []model.Matches
	err := table.Matches.
		SELECT(table.Matches.AllColumns).
		FROM(table.Matches).
		WHERE(table.Matches.SquadID.EQ(sqlite.String(squadID.String()))).
		ORDER_BY(table.Matches.CreatedAt.ASC()).
		QueryContext(ctx, s.db, &rows)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, err
	}
	matches := make([]*domain.Match, 0, len(rows))
	for _, row := range rows {
		match, err := s.loadMatch(ctx, row)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	return matches, nil
}

func (s *Storage) AddMatch(ctx context.Context, match *domain.Match) error {
	row, participants := convertMatchFromDomain(match)
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = table.Matches.INSERT(table.Matches.AllColumns).MODEL(row).ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	_, err = table.MatchParticipants.INSERT(table.MatchParticipants.AllColumns).MODELS(participants).ExecContext(ctx, tx)
	if err != nil {
		return fmt.Errorf("insert match participants: %w", err)
	}
	return tx.Commit()
}

// UpdateMatch persists the result fields. The WHERE clause keeps the
// status check and the transition in one statement, so of two concurrent
// recordings exactly one wins; the loser sees ErrMatchCompleted.
// Participants are a frozen snapshot and are never rewritten.
func (s *Storage) UpdateMatch(ctx context.Context, match *domain.Match) error {
	row, _ := convertMatchFromDomain(match)
	res, err := table.Matches.
		UPDATE(
			table.Matches.Status,
			table.Matches.Winner,
			table.Matches.Feedback,
			table.Matches.RecordedAt,
		).
		MODEL(row).
		WHERE(table.Matches.ID.EQ(sqlite.String(row.ID)).
			AND(table.Matches.Status.EQ(sqlite.String(string(domain.MatchPending))))).
		ExecContext(ctx, s.db)
	if err != nil {
		return fmt.Errorf("update match: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := s.GetMatch(ctx, match.ID); err != nil {
			return err
		}
		return domain.ErrMatchCompleted
	}
	return nil
}
