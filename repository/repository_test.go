package repository

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"contact-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, models.Migrate(db))
	return db
}

// seedUser inserts a user row directly; password hashing is exercised by the
// user repository tests, not needed here.
func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := models.User{Firstname: "Test", Lastname: "User", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func strptr(s string) *string { return &s }
