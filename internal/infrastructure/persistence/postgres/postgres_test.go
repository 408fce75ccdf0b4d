package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fabriciolima31/webserviceSenapp/internal/domain/entities"
	"github.com/fabriciolima31/webserviceSenapp/internal/domain/valueobjects"
)

// setupTestDB abre um banco sqlite em memória com o mesmo schema do
// PostgreSQL, incluindo os índices únicos
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, Migrate(db))
	return db
}

func newTestUser(t *testing.T, emailAddr, apiKey string) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail(emailAddr)
	require.NoError(t, err)

	return &entities.User{
		Name:         "Usuário de Teste",
		Email:        email,
		PasswordHash: "$2a$10$fake-digest",
		APIKey:       apiKey,
		Status:       entities.UserActive,
		UF:           "SP",
		CreatedAt:    time.Now().UTC(),
	}
}

func seedConsulta(t *testing.T, db *gorm.DB, model *ConsultaModel) {
	t.Helper()
	require.NoError(t, db.Create(model).Error)
}
