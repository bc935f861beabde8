package auth

import (
	"net/http"

	"github.com/itacademy/dice-game-api/internal/apperrors"
)

// Role is the single role a user holds.
type Role string

const (
	RolePlayer Role = "player"
	RoleAdmin  Role = "admin"
)

// Principal is the authenticated identity acting on a request,
// resolved from the bearer token before any business logic runs.
type Principal struct {
	UserID uint
	Role   Role
}

type scope int

const (
	// scopeSelf actions are allowed only when the acting user is the
	// target user. The admin role grants no override.
	scopeSelf scope = iota
	// scopeAdmin actions ignore the target and require the admin role.
	scopeAdmin
)

// Action is one of the operations the policy knows how to judge.
type Action struct {
	Name  string
	scope scope
	deny  string
}

var (
	ActionRollDice = Action{
		Name:  "roll_dice",
		scope: scopeSelf,
		deny:  "You do not have permission to roll for this player.",
	}
	ActionDeleteGames = Action{
		Name:  "delete_games",
		scope: scopeSelf,
		deny:  "You do not have permission to delete games for this player.",
	}
	ActionViewGames = Action{
		Name:  "view_games",
		scope: scopeSelf,
		deny:  "You do not have permission to watch this user's play history.",
	}
	ActionUpdateName = Action{
		Name:  "update_name",
		scope: scopeSelf,
		deny:  "You do not have permission to update this user.",
	}
	ActionListPlayers = Action{
		Name:  "list_players",
		scope: scopeAdmin,
		deny:  "You do not have permission to access this resource.",
	}
	ActionViewRanking = Action{
		Name:  "view_ranking",
		scope: scopeAdmin,
		deny:  "You do not have permission to access this resource.",
	}
	ActionViewWinner = Action{
		Name:  "view_winner",
		scope: scopeAdmin,
		deny:  "You do not have permission to access this resource.",
	}
	ActionViewLoser = Action{
		Name:  "view_loser",
		scope: scopeAdmin,
		deny:  "You do not have permission to access this resource.",
	}
)

// Authorize decides whether the principal may perform action on the
// target user. It is a pure function over identity, role, action and
// target; it never touches persistence.
func Authorize(p *Principal, action Action, targetUserID uint) error {
	if p == nil {
		return apperrors.NewAppError(http.StatusUnauthorized, "Unauthenticated.", nil)
	}

	switch action.scope {
	case scopeSelf:
		if p.UserID != targetUserID {
			return apperrors.NewAppError(http.StatusForbidden, action.deny, nil)
		}
	case scopeAdmin:
		if p.Role != RoleAdmin {
			return apperrors.NewAppError(http.StatusForbidden, action.deny, nil)
		}
	}
	return nil
}
