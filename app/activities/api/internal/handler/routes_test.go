package handler

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"school-activities/app/activities/api/internal/config"
	"school-activities/app/activities/api/internal/handler/public"
	"school-activities/app/activities/api/internal/handler/signup"
	"school-activities/app/activities/api/internal/svc"
	"school-activities/app/activities/api/internal/types"
	"school-activities/common/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

func TestMain(m *testing.M) {
	logx.Disable()
	// The server installs this before Start; tests need the same mapping.
	response.SetupGlobalErrorHandler()
	os.Exit(m.Run())
}

func newTestSvcCtx(t *testing.T) *svc.ServiceContext {
	t.Helper()
	return svc.NewServiceContext(config.Config{})
}

// postSignup invokes the signup (or unregister) handler the way the router
// would: path variable injected, email on the query string.
func postSignup(t *testing.T, svcCtx *svc.ServiceContext, op, activity, email string) *httptest.ResponseRecorder {
	t.Helper()

	target := "/activities/" + url.PathEscape(activity) + "/" + op + "?email=" + url.QueryEscape(email)
	r := httptest.NewRequest(http.MethodPost, target, nil)
	r = pathvar.WithVars(r, map[string]string{"activityName": activity})

	w := httptest.NewRecorder()
	switch op {
	case "signup":
		signup.SignupHandler(svcCtx)(w, r)
	case "unregister":
		signup.UnregisterHandler(svcCtx)(w, r)
	default:
		t.Fatalf("unknown op %q", op)
	}
	return w
}

func getActivities(t *testing.T, svcCtx *svc.ServiceContext) map[string]types.ActivityDetail {
	t.Helper()

	w := httptest.NewRecorder()
	public.ListActivitiesHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/activities", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var activities map[string]types.ActivityDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &activities))
	return activities
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func TestRootRedirectsToStaticIndex(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	w := httptest.NewRecorder()
	public.IndexHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Contains(t, w.Header().Get("Location"), "/static/index.html")
}

func TestHealth(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	w := httptest.NewRecorder()
	public.HealthHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
	assert.NotEmpty(t, resp.Uptime)
}

func TestGetActivities(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	activities := getActivities(t, svcCtx)
	require.NotEmpty(t, activities)

	tennis, ok := activities["Tennis Club"]
	require.True(t, ok)
	assert.NotEmpty(t, tennis.Description)
	assert.NotEmpty(t, tennis.Schedule)
	assert.Positive(t, tennis.MaxParticipants)
	assert.NotNil(t, tennis.Participants)
}

func TestSignupSuccess(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	w := postSignup(t, svcCtx, "signup", "Tennis Club", "newstudent@mergington.edu")
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "newstudent@mergington.edu")
	assert.Contains(t, resp.Message, "Tennis Club")
}

func TestSignupDuplicate(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	first := postSignup(t, svcCtx, "signup", "Tennis Club", "test@mergington.edu")
	require.Equal(t, http.StatusOK, first.Code)

	second := postSignup(t, svcCtx, "signup", "Tennis Club", "test@mergington.edu")
	assert.Equal(t, http.StatusBadRequest, second.Code)
	assert.Contains(t, detailOf(t, second), "already signed up")
}

func TestSignupNonexistentActivity(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	w := postSignup(t, svcCtx, "signup", "Nonexistent Activity", "test@mergington.edu")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Activity not found", detailOf(t, w))
}

func TestSignupMissingEmail(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	r := httptest.NewRequest(http.MethodPost, "/activities/Tennis%20Club/signup", nil)
	r = pathvar.WithVars(r, map[string]string{"activityName": "Tennis Club"})

	w := httptest.NewRecorder()
	signup.SignupHandler(svcCtx)(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSignupUpdatesParticipantList(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	email := "participant@mergington.edu"

	before := getActivities(t, svcCtx)["Art Studio"].Participants

	w := postSignup(t, svcCtx, "signup", "Art Studio", email)
	require.Equal(t, http.StatusOK, w.Code)

	after := getActivities(t, svcCtx)["Art Studio"].Participants
	assert.Len(t, after, len(before)+1)
	assert.Contains(t, after, email)
}

func TestUnregisterSuccess(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	email := "unreg@mergington.edu"

	require.Equal(t, http.StatusOK, postSignup(t, svcCtx, "signup", "Drama Club", email).Code)

	w := postSignup(t, svcCtx, "unregister", "Drama Club", email)
	require.Equal(t, http.StatusOK, w.Code)

	var resp types.UnregisterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, email)
}

func TestUnregisterNotRegistered(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	w := postSignup(t, svcCtx, "unregister", "Science Club", "notregistered@mergington.edu")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, detailOf(t, w), "not registered")
}

func TestUnregisterNonexistentActivity(t *testing.T) {
	svcCtx := newTestSvcCtx(t)

	w := postSignup(t, svcCtx, "unregister", "Fake Activity", "test@mergington.edu")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Activity not found", detailOf(t, w))
}

// ==========================
// Live router
// ==========================

// startTestServer registers the full route table on a real rest.Server bound
// to an ephemeral port, so requests exercise routing, middleware ordering and
// the URL-decoded path lookup rather than injected path vars.
func startTestServer(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())

	server := rest.MustNewServer(rest.RestConf{Host: "127.0.0.1", Port: port})
	RegisterHandlers(server, newTestSvcCtx(t))
	go server.Start()
	t.Cleanup(server.Stop)

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	client := &http.Client{Timeout: time.Second}
	deadline := time.Now().Add(5 * time.Second)
	for {
		resp, err := client.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return baseURL
			}
		}
		require.True(t, time.Now().Before(deadline), "server did not become ready")
		time.Sleep(20 * time.Millisecond)
	}
}

func TestRouterRootRedirect(t *testing.T) {
	baseURL := startTestServer(t)

	client := &http.Client{
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
	resp, err := client.Get(baseURL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTemporaryRedirect, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/static/index.html")
}

func TestRouterDecodesEscapedPath(t *testing.T) {
	baseURL := startTestServer(t)

	resp, err := http.Post(baseURL+"/activities/Tennis%20Club/signup?email=router@mergington.edu", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body types.SignupResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Message, "Tennis Club")
	assert.Contains(t, body.Message, "router@mergington.edu")

	// The request id middleware ran on the way through.
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
}

func TestRouterUnknownActivity(t *testing.T) {
	baseURL := startTestServer(t)

	resp, err := http.Post(baseURL+"/activities/Nonexistent%20Activity/signup?email=test@mergington.edu", "", nil)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body response.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Activity not found", body.Detail)
}

func TestUnregisterRemovesParticipant(t *testing.T) {
	svcCtx := newTestSvcCtx(t)
	email := "remove@mergington.edu"

	require.Equal(t, http.StatusOK, postSignup(t, svcCtx, "signup", "Basketball Team", email).Code)
	before := getActivities(t, svcCtx)["Basketball Team"].Participants
	require.Contains(t, before, email)

	require.Equal(t, http.StatusOK, postSignup(t, svcCtx, "unregister", "Basketball Team", email).Code)

	after := getActivities(t, svcCtx)["Basketball Team"].Participants
	assert.Len(t, after, len(before)-1)
	assert.NotContains(t, after, email)
}
