package web

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	authservice "squadmatch/auth/service"
	"squadmatch/internal/config"
	"squadmatch/internal/domain"
	"squadmatch/internal/service"
	"squadmatch/internal/web/webpath"
)

type Server struct {
	auth         *authservice.Service
	squadService *service.Service
	app          *fiber.App
	cfg          config.Server
	log          *logrus.Entry
}

func New(ss *service.Service, cfg config.Server, authService *authservice.Service, log *logrus.Logger) *Server {
	server := Server{
		squadService: ss,
		auth:         authService,
		cfg:          cfg,
		log:          log.WithField("name", "web"),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: server.handleError,
	})
	app.Use(webpath.Api, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie)
		if err != nil {
			return err
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Post(webpath.Signup, server.handleSignUp)
	app.Post(webpath.Signin, server.handleSignIn)
	app.Get(webpath.Signout, server.handleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.ApiSquads)
	})

	app.Post(webpath.ApiSquads, server.handleCreateSquad)
	app.Get(webpath.ApiSquads, server.handleListSquads)
	app.Get(webpath.ApiSquad, server.handleGetSquad)
	app.Post(webpath.ApiSquadJoin, server.handleJoinSquad)
	app.Post(webpath.ApiSquadAdmins, server.handleAddAdmin)
	app.Delete(webpath.ApiSquadAdmin, server.handleRemoveAdmin)
	app.Delete(webpath.ApiSquadMember, server.handleRemoveMember)
	app.Get(webpath.ApiSquadMatches, server.handleSquadMatches)
	app.Get(webpath.ApiLeaderboard, server.handleLeaderboard)
	app.Get(webpath.ApiMemberRating, server.handleMemberRating)
	app.Post(webpath.ApiMatches, server.handleCreateMatch)
	app.Get(webpath.ApiMatch, server.handleGetMatch)
	app.Post(webpath.ApiMatchResult, server.handleRecordResult)
	server.app = app
	return &server
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

const userKey = "user"

func currentUser(ctx *fiber.Ctx) domain.PlayerAccount {
	user, _ := ctx.Context().UserValue(userKey).(domain.PlayerAccount)
	return user
}

// handleError is the single place where service errors become HTTP
// statuses. Anything unrecognized is logged and reported as a 500.
func (s *Server) handleError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrPlayerNotFound),
		errors.Is(err, domain.ErrSquadNotFound),
		errors.Is(err, domain.ErrMatchNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrNotAdmin):
		status = fiber.StatusForbidden
	case errors.Is(err, authservice.ErrNotAuthorized),
		errors.Is(err, authservice.ErrInvalidToken),
		errors.Is(err, authservice.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrAlreadyAdmin),
		errors.Is(err, domain.ErrLastAdmin),
		errors.Is(err, domain.ErrAlreadyMember),
		errors.Is(err, domain.ErrNotMember),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrMatchCompleted):
		status = fiber.StatusConflict
	case errors.Is(err, domain.ErrEmptyName),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrInvalidPlayerCount),
		errors.Is(err, domain.ErrInvalidTeamSize),
		errors.Is(err, domain.ErrInvalidWinner),
		isRequestError(err):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		s.log.WithError(err).Error("request failed")
	}
	return ctx.Status(status).JSON(fiber.Map{
		"errors": errorStrings(err),
	})
}

func isRequestError(err error) bool {
	for _, target := range []error{
		ErrEmptyEmail,
		ErrEmptyPassword,
		ErrPasswordMismatch,
		ErrEmptySquadName,
		ErrMissingPlayer,
		ErrMissingSquad,
		ErrOddPlayers,
		ErrDuplicatePlayer,
		ErrUnknownWinner,
		ErrMalformedBody,
		ErrBadID,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type multierr interface {
	Unwrap() []error
}

func errorStrings(err error) []string {
	var merr multierr
	if errors.As(err, &merr) {
		var msgs []string
		for _, err := range merr.Unwrap() {
			msgs = append(msgs, errorStrings(err)...)
		}
		return msgs
	}
	return []string{err.Error()}
}

func (s *Server) handleSignUp(ctx *fiber.Ctx) error {
	var req signUpRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	account, err := s.auth.SignUp(ctx.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(account.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Status(fiber.StatusCreated).JSON(convertAccount(account))
}

func (s *Server) handleSignIn(ctx *fiber.Ctx) error {
	var req signInRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	account, err := s.auth.Login(ctx.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(account.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.JSON(convertAccount(account))
}

func (s *Server) handleSignOut(ctx *fiber.Ctx) error {
	ctx.ClearCookie("token")
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleCreateSquad(ctx *fiber.Ctx) error {
	var req createSquadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	user := currentUser(ctx)
	squad, err := s.squadService.CreateSquad(ctx.Context(), req.Name, user.ID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertSquad(squad))
}

func (s *Server) handleListSquads(ctx *fiber.Ctx) error {
	user := currentUser(ctx)
	squads, err := s.squadService.ListSquadsForPlayer(ctx.Context(), user.ID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertSquads(squads))
}

func (s *Server) handleGetSquad(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	squad, err := s.squadService.GetSquad(ctx.Context(), squadID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertSquad(squad))
}

func (s *Server) handleJoinSquad(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	user := currentUser(ctx)
	if err := s.squadService.JoinSquad(ctx.Context(), user.ID, squadID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleAddAdmin(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	var req squadAdminRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	user := currentUser(ctx)
	if err := s.squadService.AddSquadAdmin(ctx.Context(), squadID, user.ID, req.PlayerID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleRemoveAdmin(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	playerID, err := uuid.Parse(ctx.Params("playerID"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	user := currentUser(ctx)
	if err := s.squadService.RemoveSquadAdmin(ctx.Context(), squadID, user.ID, playerID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleRemoveMember(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	playerID, err := uuid.Parse(ctx.Params("playerID"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	user := currentUser(ctx)
	if err := s.squadService.RemoveSquadMember(ctx.Context(), squadID, user.ID, playerID); err != nil {
		return err
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

func (s *Server) handleSquadMatches(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	matches, err := s.squadService.ListMatchesForSquad(ctx.Context(), squadID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertMatches(matches))
}

func (s *Server) handleLeaderboard(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	board, err := s.squadService.Leaderboard(ctx.Context(), squadID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertMembers(board))
}

func (s *Server) handleMemberRating(ctx *fiber.Ctx) error {
	squadID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	playerID, err := uuid.Parse(ctx.Params("playerID"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	rating, err := s.squadService.PlayerRating(ctx.Context(), squadID, playerID)
	if err != nil {
		return err
	}
	return ctx.JSON(ratingResponse{
		PlayerID: playerID,
		SquadID:  squadID,
		Rating:   rating.Int(),
	})
}

func (s *Server) handleCreateMatch(ctx *fiber.Ctx) error {
	var req createMatchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	user := currentUser(ctx)
	match, err := s.squadService.CreateMatch(ctx.Context(), req.SquadID, req.ScheduledAt, req.PlayerIDs, req.TeamSize, user.ID)
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusCreated).JSON(convertMatch(match))
}

func (s *Server) handleGetMatch(ctx *fiber.Ctx) error {
	matchID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	match, err := s.squadService.GetMatch(ctx.Context(), matchID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertMatch(match))
}

func (s *Server) handleRecordResult(ctx *fiber.Ctx) error {
	matchID, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errors.Join(ErrBadID, err)
	}
	var req recordResultRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errors.Join(ErrMalformedBody, err)
	}
	if err := req.Validate(); err != nil {
		return err
	}
	user := currentUser(ctx)
	err = s.squadService.RecordMatchResult(ctx.Context(), matchID, domain.Winner(req.Winner), req.Feedback, user.ID)
	if err != nil {
		return err
	}
	match, err := s.squadService.GetMatch(ctx.Context(), matchID)
	if err != nil {
		return err
	}
	return ctx.JSON(convertMatch(match))
}
