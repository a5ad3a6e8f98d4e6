package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"contact-api/config"
	"contact-api/models"
	"contact-api/routes"
	"contact-api/secureid"
	"contact-api/utils"
)

type memRevoker struct {
	mu      sync.Mutex
	revoked map[uint]time.Time
}

func (m *memRevoker) Revoke(_ context.Context, userID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[userID] = time.Now()
	return nil
}

func (m *memRevoker) RevokedAt(_ context.Context, userID uint) (time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.revoked[userID], nil
}

type testEnv struct {
	router  *gin.Engine
	db      *gorm.DB
	codec   *secureid.Codec
	revoker *memRevoker
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.JWTSecret = []byte("test-secret")
	utils.RegisterValidatorTagNames()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))

	codec, err := secureid.New(bytes.Repeat([]byte{7}, 32))
	require.NoError(t, err)

	revoker := &memRevoker{revoked: map[uint]time.Time{}}
	r := gin.New()
	routes.AuthRoutes(r, db, revoker)
	routes.ContactRoutes(r, db, codec, revoker)
	routes.FavoriteRoutes(r, db, codec, revoker)

	return &testEnv{router: r, db: db, codec: codec, revoker: revoker}
}

// seedUser bypasses the register endpoint with a cheap hash; the expensive
// production cost is covered by the register flow itself.
func (env *testEnv) seedUser(t *testing.T, email, password string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{Firstname: "Test", Lastname: "User", Email: email, Password: string(hash)}
	require.NoError(t, env.db.Create(&user).Error)
	return &user
}

func (env *testEnv) tokenFor(t *testing.T, userID uint) string {
	t.Helper()
	token, err := utils.IssueToken(userID)
	require.NoError(t, err)
	return token
}

func (env *testEnv) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Message    string          `json:"message"`
	StatusCode int             `json:"statusCode"`
	Error      bool            `json:"error"`
	Data       json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.Equal(t, w.Code, env.StatusCode, "envelope status must match HTTP status")
	return env
}

func fieldErrors(t *testing.T, env envelope) map[string][]string {
	t.Helper()
	var fields map[string][]string
	require.NoError(t, json.Unmarshal(env.Data, &fields))
	return fields
}
