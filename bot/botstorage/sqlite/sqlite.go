package sqlite

import (
	"database/sql"
	"strings"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"

	"squadmatch/bot/botstorage"
	dbmodel "squadmatch/bot/gen/model"
	"squadmatch/bot/gen/table"
	"squadmatch/bot/model"
	"squadmatch/internal/config"
	sqlite3 "squadmatch/internal/migrate"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ botstorage.BotStorage = (*Storage)(nil)

func New(l *logrus.Logger, cfg config.TgBot) (*Storage, error) {
	log := l.WithField("name", "bot-storage")
	db, err := sql.Open("sqlite3", "file:"+cfg.SqliteFile+"?cache=shared")
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	err = sqlite3.UpBotDB(db)
	if err != nil {
		return nil, err
	}

	err = db.Ping()
	if err != nil {
		return nil, err
	}
	log.Info("bot storage connected")
	return &Storage{
		db:  db,
		log: log,
	}, nil
}

func (s *Storage) NewUser(user model.User) (model.User, error) {
	var dbuser dbmodel.BotUsers
	err := table.BotUsers.
		INSERT(table.BotUsers.AllColumns).
		MODEL(convertUserFromDomain(user)).
		RETURNING(table.BotUsers.AllColumns).
		Query(s.db, &dbuser)
	if err != nil {
		return model.User{}, err
	}
	return convertUserToDomain(dbuser), nil
}

type getUserModel struct {
	dbmodel.BotUsers
	Subscriptions []struct {
		dbmodel.Subscriptions
	}
}

func (s *Storage) GetUser(chatID int64) (model.User, error) {
	var dest getUserModel
	err := table.BotUsers.
		SELECT(table.BotUsers.AllColumns, table.Subscriptions.AllColumns).
		FROM(table.BotUsers.
			LEFT_JOIN(table.Subscriptions, table.Subscriptions.ChatID.EQ(table.BotUsers.ChatID)),
		).
		WHERE(table.BotUsers.ChatID.EQ(sqlite.Int(chatID))).
		Query(s.db, &dest)
	if err != nil {
		return model.User{}, err
	}
	return convertGetUserModelToDomain(dest), nil
}

func (s *Storage) ListUsers() ([]model.User, error) {
	var dest []getUserModel
	err := table.BotUsers.
		SELECT(table.BotUsers.AllColumns, table.Subscriptions.AllColumns).
		FROM(table.BotUsers.
			LEFT_JOIN(table.Subscriptions, table.Subscriptions.ChatID.EQ(table.BotUsers.ChatID)),
		).
		Query(s.db, &dest)
	if err != nil {
		return nil, err
	}
	users := make([]model.User, 0, len(dest))
	for i := range dest {
		users = append(users, convertGetUserModelToDomain(dest[i]))
	}
	return users, nil
}

func (s *Storage) Subscribe(user model.User, event model.EventType) error {
	sub := dbmodel.Subscriptions{
		ChatID:    user.ChatID,
		EventType: string(event),
	}
	_, err := table.Subscriptions.
		INSERT(table.Subscriptions.AllColumns).
		MODEL(sub).
		Exec(s.db)
	if err != nil {
		if strings.HasPrefix(err.Error(), "UNIQUE constraint failed") {
			return nil
		}
		return err
	}
	return nil
}

func (s *Storage) Unsubscribe(user model.User, event model.EventType) error {
	_, err := table.Subscriptions.
		DELETE().
		WHERE(
			table.Subscriptions.ChatID.EQ(sqlite.Int(user.ChatID)).
				AND(table.Subscriptions.EventType.EQ(sqlite.String(string(event)))),
		).Exec(s.db)
	if err != nil {
		return err
	}
	return nil
}

func convertUserFromDomain(user model.User) dbmodel.BotUsers {
	return dbmodel.BotUsers{
		ChatID:    user.ChatID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func convertUserToDomain(user dbmodel.BotUsers) model.User {
	return model.User{
		ChatID:    user.ChatID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

func convertGetUserModelToDomain(user getUserModel) model.User {
	converted := convertUserToDomain(user.BotUsers)
	for i := range user.Subscriptions {
		converted.Subscriptions = append(converted.Subscriptions, model.EventType(user.Subscriptions[i].EventType))
	}
	return converted
}
