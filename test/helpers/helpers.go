package helpers

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"cvgen_backend/database"
	"cvgen_backend/internal/app"
	"cvgen_backend/internal/auth"
	"cvgen_backend/internal/events"
	"cvgen_backend/internal/handlers"
	"cvgen_backend/internal/i18n"
	"cvgen_backend/internal/renderer"
	"cvgen_backend/internal/services"
)

// FakePDFRenderer replaces headless Chrome in tests: any HTML renders
// to a fixed byte stream instantly.
type FakePDFRenderer struct{}

func (FakePDFRenderer) RenderPDF(_ context.Context, _ string) ([]byte, error) {
	return []byte("%PDF-1.4\nfake"), nil
}

// OpenTestDB connects to the integration database, or skips the test
// when none is configured.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		dsn = os.Getenv("DATABASE_URL")
	}
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	return db
}

// BeginTx opens a transaction that is rolled back when the test ends,
// so tests never leak rows into the shared database.
func BeginTx(t *testing.T, db *gorm.DB) *gorm.DB {
	t.Helper()

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

// NewServer builds the full router over the given DB handle with the
// fake PDF renderer and an idle dispatcher.
func NewServer(t *testing.T, db *gorm.DB) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	auth.InitJWT("test-secret")

	translator := i18n.New("en-us")
	tmpl, err := renderer.NewCVTemplate(translator)
	require.NoError(t, err)

	sc := services.NewServiceContainer(services.ContainerDeps{
		JWTTTL:     time.Hour,
		RefreshTTL: 24 * time.Hour,
		Template:   tmpl,
		PDF:        FakePDFRenderer{},
		Dispatcher: events.NewDispatcher(8),
	})

	return app.SetupRouter(db, handlers.NewAppHandlers(sc), "test")
}
