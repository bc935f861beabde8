package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	api_middleware "github.com/itacademy/dice-game-api/api/middleware"
	"github.com/itacademy/dice-game-api/internal/auth"
	"github.com/itacademy/dice-game-api/internal/game"
	"github.com/itacademy/dice-game-api/internal/ranking"
	"github.com/itacademy/dice-game-api/internal/user"
)

// newContext builds an echo context for a direct handler call. Errors
// the handler returns are fed through the API error handler so the
// recorder sees the same body a client would.
func newContext(t *testing.T, method, body string) (*httptest.ResponseRecorder, echo.Context, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.HTTPErrorHandler = api_middleware.NewHTTPErrorHandler(zap.NewNop())

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return rec, e.NewContext(req, rec), e
}

func invoke(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}

func setPrincipal(c echo.Context, p *auth.Principal) {
	c.Set("user", p)
}

func setTarget(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func TestCreatePlayerHandler(t *testing.T) {
	mockRepo := &user.MockRepository{}
	Users = user.NewService(mockRepo, &user.MockTokenIssuer{})
	mockRepo.On("FindByEmail", "testuser@example.com").Return(nil, nil)
	mockRepo.On("FindByName", "TestUser").Return(nil, nil)
	mockRepo.On("Create", mock.AnythingOfType("*user.User")).Return(nil)

	rec, c, e := newContext(t, http.MethodPost,
		`{"email":"testuser@example.com","name":"TestUser","password":"securePassword"}`)
	invoke(e, c, CreatePlayerHandler)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "User created successfully")
	assert.Contains(t, rec.Body.String(), "testuser@example.com")
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestCreatePlayerHandler_DuplicateEmail(t *testing.T) {
	mockRepo := &user.MockRepository{}
	Users = user.NewService(mockRepo, &user.MockTokenIssuer{})
	mockRepo.On("FindByEmail", "testuser@example.com").Return(&user.User{ID: 1}, nil)

	rec, c, e := newContext(t, http.MethodPost,
		`{"email":"testuser@example.com","name":"Other","password":"securePassword"}`)
	invoke(e, c, CreatePlayerHandler)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "The email has already been taken.")
}

func TestLoginHandler(t *testing.T) {
	mockRepo := &user.MockRepository{}
	mockTokens := &user.MockTokenIssuer{}
	Users = user.NewService(mockRepo, mockTokens)

	hashed, err := bcrypt.GenerateFromPassword([]byte("securePassword"), bcrypt.MinCost)
	require.NoError(t, err)
	mockRepo.On("FindByEmail", "testuser@example.com").
		Return(&user.User{ID: 4, Password: string(hashed), Role: auth.RolePlayer}, nil)
	mockTokens.On("Issue", mock.Anything, uint(4), auth.RolePlayer).Return("token123", nil)

	rec, c, e := newContext(t, http.MethodPost,
		`{"email":"testuser@example.com","password":"securePassword"}`)
	invoke(e, c, LoginHandler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"token":"token123"}`, rec.Body.String())
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	mockRepo := &user.MockRepository{}
	Users = user.NewService(mockRepo, &user.MockTokenIssuer{})
	mockRepo.On("FindByEmail", "testuser@example.com").Return(nil, nil)

	rec, c, e := newContext(t, http.MethodPost,
		`{"email":"testuser@example.com","password":"wrong"}`)
	invoke(e, c, LoginHandler)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestUpdateNameHandler(t *testing.T) {
	mockRepo := &user.MockRepository{}
	Users = user.NewService(mockRepo, &user.MockTokenIssuer{})
	mockRepo.On("FindByID", uint(2)).Return(&user.User{ID: 2, Name: "old"}, nil)
	mockRepo.On("FindByName", "NewName").Return(nil, nil)
	mockRepo.On("UpdateName", uint(2), "NewName").Return(nil)

	rec, c, e := newContext(t, http.MethodPut, `{"name":"NewName"}`)
	setTarget(c, "2")
	setPrincipal(c, &auth.Principal{UserID: 2, Role: auth.RolePlayer})
	invoke(e, c, UpdateNameHandler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Name updated successfully.","name":"NewName"}`, rec.Body.String())
}

func TestUpdateNameHandler_OtherUser(t *testing.T) {
	mockRepo := &user.MockRepository{}
	Users = user.NewService(mockRepo, &user.MockTokenIssuer{})

	rec, c, e := newContext(t, http.MethodPut, `{"name":"NewName"}`)
	setTarget(c, "3")
	setPrincipal(c, &auth.Principal{UserID: 2, Role: auth.RolePlayer})
	invoke(e, c, UpdateNameHandler)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"You do not have permission to update this user."}`, rec.Body.String())
	mockRepo.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything)
}

func newRankingFixture(t *testing.T) {
	t.Helper()
	mockUsers := &user.MockRepository{}
	mockGames := &game.MockRepository{}
	mockUsers.On("ListAll").Return([]user.User{
		{ID: 1, Name: "A", Email: "a@example.com"},
		{ID: 2, Name: "B", Email: "b@example.com"},
	}, nil)
	mockGames.On("ListAll").Return([]game.Game{
		{ID: 1, UserID: 1, Win: true},
		{ID: 2, UserID: 1, Win: true},
		{ID: 3, UserID: 1, Win: false},
		{ID: 4, UserID: 2, Win: false},
	}, nil)
	Rankings = ranking.NewService(mockUsers, mockGames)
}

func TestListPlayersHandler_AsAdmin(t *testing.T) {
	newRankingFixture(t)

	rec, c, e := newContext(t, http.MethodGet, "")
	setPrincipal(c, &auth.Principal{UserID: 9, Role: auth.RoleAdmin})
	invoke(e, c, ListPlayersHandler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "average_success_percentage")
	assert.Contains(t, rec.Body.String(), "a@example.com")
	assert.Contains(t, rec.Body.String(), "b@example.com")
}

func TestListPlayersHandler_AsPlayer(t *testing.T) {
	newRankingFixture(t)

	rec, c, e := newContext(t, http.MethodGet, "")
	setPrincipal(c, &auth.Principal{UserID: 1, Role: auth.RolePlayer})
	invoke(e, c, ListPlayersHandler)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRankingHandler(t *testing.T) {
	newRankingFixture(t)

	rec, c, e := newContext(t, http.MethodGet, "")
	setPrincipal(c, &auth.Principal{UserID: 9, Role: auth.RoleAdmin})
	invoke(e, c, RankingHandler)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "average_success_percentage")
	assert.Contains(t, rec.Body.String(), "33.33")
}

func TestWinnerAndLoserHandlers(t *testing.T) {
	newRankingFixture(t)

	rec, c, e := newContext(t, http.MethodGet, "")
	setPrincipal(c, &auth.Principal{UserID: 9, Role: auth.RoleAdmin})
	invoke(e, c, WinnerHandler)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"A"`)

	rec, c, e = newContext(t, http.MethodGet, "")
	setPrincipal(c, &auth.Principal{UserID: 9, Role: auth.RoleAdmin})
	invoke(e, c, LoserHandler)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"B"`)
}

func TestWinnerHandler_NoPlayers(t *testing.T) {
	mockUsers := &user.MockRepository{}
	mockGames := &game.MockRepository{}
	mockUsers.On("ListAll").Return([]user.User{}, nil)
	mockGames.On("ListAll").Return([]game.Game{}, nil)
	Rankings = ranking.NewService(mockUsers, mockGames)

	rec, c, e := newContext(t, http.MethodGet, "")
	setPrincipal(c, &auth.Principal{UserID: 9, Role: auth.RoleAdmin})
	invoke(e, c, WinnerHandler)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"No players found."}`, rec.Body.String())
}
