package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/database"
	"github.com/ghuser/wardrobe/pkg/logger"
	wardrobedomain "github.com/ghuser/wardrobe/services/wardrobe/domain"
	"github.com/ghuser/wardrobe/services/wardrobe/domain/models"
)

var outfitCols = []string{"id", "user_id", "name", "season", "items", "created_at"}

func newMockOutfitRepo(t *testing.T) (*OutfitRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
		db.Close()
	})
	log := logger.New(&config.Config{LogLevel: "error"})
	return NewOutfitRepository(database.NewFromDB(db, log)), mock
}

func outfitRow(t *testing.T, o *models.Outfit) *sqlmock.Rows {
	t.Helper()
	items, err := json.Marshal(o.Items)
	if err != nil {
		t.Fatalf("marshal items: %v", err)
	}
	return sqlmock.NewRows(outfitCols).AddRow(
		o.ID.String(), o.UserID.String(), o.Name, o.Season.String(), items, o.CreatedAt,
	)
}

func TestOutfitRepository_Save(t *testing.T) {
	repo, mock := newMockOutfitRepo(t)
	o := models.NewOutfit(uuid.New(), "Friday casual", models.SeasonAll, []uuid.UUID{uuid.New()})

	mock.ExpectExec(`INSERT INTO outfits`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Save(context.Background(), o); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestOutfitRepository_GetByID(t *testing.T) {
	repo, mock := newMockOutfitRepo(t)
	userID := uuid.New()

	t.Run("keeps duplicate item references", func(t *testing.T) {
		garmentID := uuid.New()
		want := models.NewOutfit(userID, "Double denim", models.SeasonFall,
			[]uuid.UUID{garmentID, garmentID})

		mock.ExpectQuery(`SELECT (.+) FROM outfits WHERE id = \$1 AND user_id = \$2`).
			WithArgs(want.ID, userID).
			WillReturnRows(outfitRow(t, want))

		got, err := repo.GetByID(context.Background(), userID, want.ID)
		if err != nil {
			t.Fatalf("GetByID: %v", err)
		}
		if len(got.Items) != 2 || got.Items[0] != garmentID || got.Items[1] != garmentID {
			t.Errorf("items = %v, want duplicated %v", got.Items, garmentID)
		}
		if got.Season != models.SeasonFall {
			t.Errorf("season = %v, want fall", got.Season)
		}
	})

	t.Run("missing row maps to not found", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`SELECT (.+) FROM outfits WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnRows(sqlmock.NewRows(outfitCols))

		_, err := repo.GetByID(context.Background(), userID, id)
		if !errors.Is(err, wardrobedomain.ErrOutfitNotFound) {
			t.Errorf("err = %v, want ErrOutfitNotFound", err)
		}
	})
}

func TestOutfitRepository_FindByUserID(t *testing.T) {
	repo, mock := newMockOutfitRepo(t)
	userID := uuid.New()
	first := models.NewOutfit(userID, "Work", models.SeasonAll, nil)
	second := models.NewOutfit(userID, "Weekend", models.SeasonSummer, []uuid.UUID{uuid.New()})

	rows := outfitRow(t, first)
	items, _ := json.Marshal(second.Items)
	rows.AddRow(second.ID.String(), userID.String(), second.Name, second.Season.String(), items, second.CreatedAt)

	mock.ExpectQuery(`SELECT (.+) FROM outfits WHERE user_id = \$1`).
		WithArgs(userID).
		WillReturnRows(rows)

	got, err := repo.FindByUserID(context.Background(), userID)
	if err != nil {
		t.Fatalf("FindByUserID: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d outfits, want 2", len(got))
	}
	if len(got[0].Items) != 0 || len(got[1].Items) != 1 {
		t.Errorf("unexpected item lists: %v, %v", got[0].Items, got[1].Items)
	}
}

func TestOutfitRepository_Update(t *testing.T) {
	repo, mock := newMockOutfitRepo(t)
	o := models.NewOutfit(uuid.New(), "Work", models.SeasonAll, nil)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE outfits SET`).
			WillReturnResult(sqlmock.NewResult(0, 1))
		if err := repo.Update(context.Background(), o); err != nil {
			t.Fatalf("Update: %v", err)
		}
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE outfits SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		if err := repo.Update(context.Background(), o); !errors.Is(err, wardrobedomain.ErrOutfitNotFound) {
			t.Errorf("err = %v, want ErrOutfitNotFound", err)
		}
	})
}

func TestOutfitRepository_Delete(t *testing.T) {
	repo, mock := newMockOutfitRepo(t)
	userID, id := uuid.New(), uuid.New()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM outfits WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		if err := repo.Delete(context.Background(), userID, id); err != nil {
			t.Fatalf("Delete: %v", err)
		}
	})

	t.Run("zero rows maps to not found", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM outfits WHERE id = \$1 AND user_id = \$2`).
			WithArgs(id, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		if err := repo.Delete(context.Background(), userID, id); !errors.Is(err, wardrobedomain.ErrOutfitNotFound) {
			t.Errorf("err = %v, want ErrOutfitNotFound", err)
		}
	})
}
