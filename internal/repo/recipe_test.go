package repo

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

var recipeCols = []string{"id", "title", "ingredients", "instructions", "creator_id"}

func TestRecipeRepo_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO recipes \(title, ingredients, instructions, creator_id\)`).
		WithArgs("Soup", "salt", "boil", 1).
		WillReturnRows(sqlmock.NewRows(recipeCols).AddRow(1, "Soup", "salt", "boil", 1))

	repo := NewRecipeRepo(db)
	recipe, err := repo.Create(context.Background(), "Soup", "salt", "boil", 1)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if recipe.ID != 1 || recipe.Title != "Soup" || recipe.CreatorID != 1 {
		t.Errorf("unexpected recipe: %+v", recipe)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRecipeRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, ingredients, instructions, creator_id`).
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	repo := NewRecipeRepo(db)
	_, err = repo.GetByID(context.Background(), 999)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRecipeRepo_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, ingredients, instructions, creator_id FROM recipes ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(recipeCols).
			AddRow(1, "Soup", "salt", "boil", 1).
			AddRow(2, "Toast", "bread", "toast it", 2))

	repo := NewRecipeRepo(db)
	recipes, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(recipes) != 2 || recipes[0].Title != "Soup" || recipes[1].Title != "Toast" {
		t.Errorf("unexpected recipes: %+v", recipes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRecipeRepo_ListByCreator(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, ingredients, instructions, creator_id`).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows(recipeCols).AddRow(1, "Soup", "salt", "boil", 1))

	repo := NewRecipeRepo(db)
	recipes, err := repo.ListByCreator(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByCreator: %v", err)
	}
	if len(recipes) != 1 || recipes[0].CreatorID != 1 {
		t.Errorf("unexpected recipes: %+v", recipes)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

// Only the non-nil fields are sent; the query keeps the rest via COALESCE.
func TestRecipeRepo_UpdateByID_Partial(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	title := "New title"
	mock.ExpectQuery(`UPDATE recipes`).
		WithArgs("New title", nil, nil, 1).
		WillReturnRows(sqlmock.NewRows(recipeCols).AddRow(1, "New title", "salt", "boil", 1))

	repo := NewRecipeRepo(db)
	recipe, err := repo.UpdateByID(context.Background(), 1, &title, nil, nil)
	if err != nil {
		t.Fatalf("UpdateByID: %v", err)
	}
	if recipe.Title != "New title" || recipe.Ingredients != "salt" || recipe.Instructions != "boil" {
		t.Errorf("unexpected recipe after partial update: %+v", recipe)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRecipeRepo_DeleteByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRecipeRepo(db)
	if err := repo.DeleteByID(context.Background(), 1); err != nil {
		t.Fatalf("DeleteByID: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestRecipeRepo_DeleteByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM recipes WHERE id = \$1`).
		WithArgs(999).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewRecipeRepo(db)
	err = repo.DeleteByID(context.Background(), 999)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows for missing recipe, got: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}
