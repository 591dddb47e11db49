package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	Api             = "/api"
	ApiSquads       = Api + "/squads"
	ApiSquad        = ApiSquads + "/:id"
	ApiSquadJoin    = ApiSquad + "/join"
	ApiSquadAdmins  = ApiSquad + "/admins"
	ApiSquadAdmin   = ApiSquadAdmins + "/:playerID"
	ApiSquadMember  = ApiSquad + "/members/:playerID"
	ApiSquadMatches = ApiSquad + "/matches"
	ApiLeaderboard  = ApiSquad + "/leaderboard"
	ApiMemberRating = ApiSquad + "/members/:playerID/rating"
	ApiMatches      = Api + "/matches"
	ApiMatch        = ApiMatches + "/:id"
	ApiMatchResult  = ApiMatch + "/result"
)
