package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/tuiter/internal/config"
	"github.com/sakif/tuiter/internal/model"
	sqliteRepo "github.com/sakif/tuiter/internal/repository/sqlite"
)

const testSecret = "test-secret-at-least-32-characters!!"

func newTestServer(t *testing.T, secret string) *httptest.Server {
	t.Helper()

	db, err := sqliteRepo.New(":memory:")
	require.NoError(t, err)

	cfg := config.Config{
		Port:          0,
		StorageDriver: config.DriverSQLite,
		DBPath:        ":memory:",
		JWTSecret:     secret,
		JWTTTL:        time.Hour,
		BcryptCost:    4,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewWithStore(cfg, db, logger)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(func() {
		ts.Close()
		srv.Close()
	})
	return ts
}

// do sends body (if non-nil) as JSON and decodes the response into out (if
// non-nil). It returns the response with its body already consumed.
func do(t *testing.T, ts *httptest.Server, method, path string, body, out any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func createUser(t *testing.T, ts *httptest.Server, username string) model.User {
	t.Helper()
	var u model.User
	resp := do(t, ts, http.MethodPost, "/api/users",
		map[string]string{"username": username, "password": "hunter22"}, &u)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(t, u.ID)
	return u
}

func createTuit(t *testing.T, ts *httptest.Server, uid, text string) model.Tuit {
	t.Helper()
	var tuit model.Tuit
	resp := do(t, ts, http.MethodPost, "/api/users/"+uid+"/tuits",
		map[string]string{"tuit": text}, &tuit)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return tuit
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, "")

	var body map[string]string
	resp := do(t, ts, http.MethodGet, "/health", nil, &body)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t, "")

	do(t, ts, http.MethodGet, "/api/users", nil, nil)

	resp, err := ts.Client().Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(b), `tuiter_http_request_duration_seconds_count{method="GET",route="/api/users",status="200"}`)
}

func TestUsers_CreateNeverEchoesPassword(t *testing.T) {
	ts := newTestServer(t, "")

	resp, err := ts.Client().Post(ts.URL+"/api/users", "application/json",
		strings.NewReader(`{"username":"alice","password":"hunter22"}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "hunter22")

	var u model.User
	require.NoError(t, json.Unmarshal(raw, &u))
	assert.Equal(t, "alice", u.Username)
	assert.Equal(t, float64(model.DefaultSalary), u.Salary)

	var got model.User
	resp = do(t, ts, http.MethodGet, "/api/users/"+u.ID, nil, &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, u.ID, got.ID)
	assert.Empty(t, got.Password)
}

func TestUsers_CreateValidation(t *testing.T) {
	ts := newTestServer(t, "")

	var body map[string]string
	resp := do(t, ts, http.MethodPost, "/api/users", map[string]string{"password": "x"}, &body)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "validation_error", body["error"])
	assert.Equal(t, "username", body["field"])
}

func TestUsers_DeleteByUsernameRemovesAll(t *testing.T) {
	ts := newTestServer(t, "")
	createUser(t, ts, "dup")
	createUser(t, ts, "dup")
	createUser(t, ts, "other")

	var res model.DeleteResult
	resp := do(t, ts, http.MethodDelete, "/api/users/username/dup", nil, &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(2), res.DeletedCount)

	var users []model.User
	do(t, ts, http.MethodGet, "/api/users", nil, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "other", users[0].Username)
}

func TestTuits_Lifecycle(t *testing.T) {
	ts := newTestServer(t, "")
	alice := createUser(t, ts, "alice")

	tuit := createTuit(t, ts, alice.ID, "first")
	assert.Equal(t, alice.ID, tuit.PostedBy)
	assert.False(t, tuit.PostedOn.IsZero())

	var res model.UpdateResult
	resp := do(t, ts, http.MethodPut, "/api/tuits/"+tuit.ID, map[string]string{"tuit": "edited"}, &res)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

	var got model.Tuit
	do(t, ts, http.MethodGet, "/api/tuits/"+tuit.ID, nil, &got)
	assert.Equal(t, "edited", got.Text)
	assert.Equal(t, alice.ID, got.PostedBy)
	assert.True(t, tuit.PostedOn.Equal(got.PostedOn), "postedOn must survive an update")

	var byUser []model.Tuit
	do(t, ts, http.MethodGet, "/api/users/"+alice.ID+"/tuits", nil, &byUser)
	assert.Len(t, byUser, 1)

	var del model.DeleteResult
	do(t, ts, http.MethodDelete, "/api/tuits/"+tuit.ID, nil, &del)
	assert.Equal(t, int64(1), del.DeletedCount)

	resp = do(t, ts, http.MethodGet, "/api/tuits/"+tuit.ID, nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTuits_UpdateMissingIsNotAnError(t *testing.T) {
	ts := newTestServer(t, "")

	var res model.UpdateResult
	resp := do(t, ts, http.MethodPut, "/api/tuits/nope", map[string]string{"tuit": "x"}, &res)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestLikes(t *testing.T) {
	ts := newTestServer(t, "")
	alice := createUser(t, ts, "alice")
	tuit := createTuit(t, ts, alice.ID, "likeable")

	resp := do(t, ts, http.MethodPost, "/api/users/"+alice.ID+"/likes/"+tuit.ID, nil, nil)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var byTuit []model.Like
	do(t, ts, http.MethodGet, "/api/tuits/"+tuit.ID+"/likes", nil, &byTuit)
	require.Len(t, byTuit, 1)
	assert.Equal(t, alice.ID, byTuit[0].LikedBy)

	var res model.DeleteResult
	do(t, ts, http.MethodDelete, "/api/users/"+alice.ID+"/likes/"+tuit.ID, nil, &res)
	assert.Equal(t, int64(1), res.DeletedCount)

	var all []model.Like
	do(t, ts, http.MethodGet, "/api/likes", nil, &all)
	assert.Empty(t, all)
}

func TestBookmarks_LatestNewestFirst(t *testing.T) {
	ts := newTestServer(t, "")
	alice := createUser(t, ts, "alice")

	var want []string
	for _, text := range []string{"one", "two", "three"} {
		tuit := createTuit(t, ts, alice.ID, text)
		resp := do(t, ts, http.MethodPost, "/api/users/"+alice.ID+"/bookmarks/"+tuit.ID, nil, nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		want = append([]string{tuit.ID}, want...)
	}

	var latest []model.Bookmark
	resp := do(t, ts, http.MethodGet, "/api/users/"+alice.ID+"/bookmarks/latest", nil, &latest)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, latest, 3)

	got := make([]string, len(latest))
	for i, b := range latest {
		got[i] = b.Tuit
	}
	assert.Equal(t, want, got)
}

func TestFollowers_TopFollowed(t *testing.T) {
	ts := newTestServer(t, "")

	// followee → number of distinct followers
	counts := map[string]int{"a": 6, "b": 5, "c": 4, "d": 3, "e": 2, "f": 1}
	ids := map[string]string{}
	for name := range counts {
		ids[name] = createUser(t, ts, name).ID
	}
	for name, n := range counts {
		for i := range n {
			follower := createUser(t, ts, name+"-fan-"+string(rune('0'+i))).ID
			resp := do(t, ts, http.MethodPost, "/api/users/"+follower+"/following/"+ids[name], nil, nil)
			require.Equal(t, http.StatusCreated, resp.StatusCode)
		}
	}

	var top []model.FollowCount
	resp := do(t, ts, http.MethodGet, "/api/followers/topFollowed", nil, &top)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	want := []model.FollowCount{
		{Followee: ids["a"], Count: 6},
		{Followee: ids["b"], Count: 5},
		{Followee: ids["c"], Count: 4},
		{Followee: ids["d"], Count: 3},
		{Followee: ids["e"], Count: 2},
	}
	assert.Equal(t, want, top)

	var followers []model.Follower
	do(t, ts, http.MethodGet, "/api/users/"+ids["c"]+"/followers", nil, &followers)
	assert.Len(t, followers, 4)
}

func TestMessages_RecentAndScopedDelete(t *testing.T) {
	ts := newTestServer(t, "")
	alice := createUser(t, ts, "alice")
	bob := createUser(t, ts, "bob")

	var sent []model.Message
	for i := range 7 {
		var msg model.Message
		resp := do(t, ts, http.MethodPost, "/api/users/"+alice.ID+"/messages/"+bob.ID,
			map[string]string{"messageBody": "hi " + string(rune('0'+i))}, &msg)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		sent = append(sent, msg)
	}

	var recent []model.Message
	do(t, ts, http.MethodGet, "/api/users/"+bob.ID+"/messages/recent", nil, &recent)
	require.Len(t, recent, 5)
	assert.Equal(t, sent[6].ID, recent[0].ID)
	assert.Equal(t, sent[2].ID, recent[4].ID)

	// bob did not send it, so nothing matches
	var res model.DeleteResult
	do(t, ts, http.MethodDelete, "/api/users/"+bob.ID+"/messages/"+sent[0].ID, nil, &res)
	assert.Equal(t, int64(0), res.DeletedCount)

	do(t, ts, http.MethodDelete, "/api/users/"+alice.ID+"/messages/"+sent[0].ID, nil, &res)
	assert.Equal(t, int64(1), res.DeletedCount)

	var received []model.Message
	do(t, ts, http.MethodGet, "/api/users/"+bob.ID+"/messages/received", nil, &received)
	assert.Len(t, received, 6)
}

func TestMessages_EmptyBodyRejected(t *testing.T) {
	ts := newTestServer(t, "")

	resp := do(t, ts, http.MethodPost, "/api/users/a/messages/b", map[string]string{"messageBody": ""}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuth_DisabledWithoutSecret(t *testing.T) {
	ts := newTestServer(t, "")

	resp := do(t, ts, http.MethodPost, "/api/auth/login", map[string]string{"username": "a", "password": "b"}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuth_LoginAndProfile(t *testing.T) {
	ts := newTestServer(t, testSecret)
	alice := createUser(t, ts, "alice")

	var login struct {
		User  model.User `json:"user"`
		Token string     `json:"token"`
	}
	resp := do(t, ts, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "hunter22"}, &login)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, alice.ID, login.User.ID)
	assert.Empty(t, login.User.Password)
	require.NotEmpty(t, login.Token)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/auth/profile", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+login.Token)
	profileResp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer profileResp.Body.Close()

	var profile model.User
	require.NoError(t, json.NewDecoder(profileResp.Body).Decode(&profile))
	assert.Equal(t, http.StatusOK, profileResp.StatusCode)
	assert.Equal(t, "alice", profile.Username)
}

func TestAuth_WrongPassword(t *testing.T) {
	ts := newTestServer(t, testSecret)
	createUser(t, ts, "alice")

	var body map[string]string
	resp := do(t, ts, http.MethodPost, "/api/auth/login",
		map[string]string{"username": "alice", "password": "wrong"}, &body)

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "invalid username or password", body["message"])
}

func TestAuth_ProfileRequiresToken(t *testing.T) {
	ts := newTestServer(t, testSecret)

	resp := do(t, ts, http.MethodGet, "/api/auth/profile", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
