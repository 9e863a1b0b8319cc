package repo

import (
	"context"
	"database/sql"

	"recipebox/internal/models"
)

// ========================
// REPOSITORY STRUCT
// ========================

type RecipeRepo struct {
	DB *sql.DB
}

func NewRecipeRepo(db *sql.DB) *RecipeRepo {
	return &RecipeRepo{DB: db}
}

// ========================
// CREATE RECIPE
// ========================

func (r *RecipeRepo) Create(ctx context.Context, title, ingredients, instructions string, creatorID int) (models.Recipe, error) {
	var recipe models.Recipe
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO recipes (title, ingredients, instructions, creator_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, title, ingredients, instructions, creator_id`,
		title, ingredients, instructions, creatorID,
	).Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.CreatorID,
	)
	return recipe, err
}

// ========================
// GET RECIPE BY ID
// ========================

func (r *RecipeRepo) GetByID(ctx context.Context, id int) (models.Recipe, error) {
	var recipe models.Recipe
	err := r.DB.QueryRowContext(ctx,
		`SELECT id, title, ingredients, instructions, creator_id
		 FROM recipes
		 WHERE id = $1`,
		id,
	).Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.CreatorID,
	)
	return recipe, err
}

// ========================
// LIST ALL RECIPES
// ========================

// List returns every recipe in insertion order. The public catalog endpoint
// serves the full table; there is no pagination.
func (r *RecipeRepo) List(ctx context.Context) ([]models.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, title, ingredients, instructions, creator_id FROM recipes ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// ========================
// LIST RECIPES BY CREATOR
// ========================

func (r *RecipeRepo) ListByCreator(ctx context.Context, creatorID int) ([]models.Recipe, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, title, ingredients, instructions, creator_id
		 FROM recipes
		 WHERE creator_id = $1
		 ORDER BY id`,
		creatorID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// ========================
// UPDATE RECIPE BY ID (partial)
// ========================

// UpdateByID merges only the non-nil fields into the stored row; nil fields
// keep their previous value (COALESCE). Last writer wins, there is no
// version column.
func (r *RecipeRepo) UpdateByID(ctx context.Context, id int, title, ingredients, instructions *string) (models.Recipe, error) {
	var recipe models.Recipe
	err := r.DB.QueryRowContext(ctx,
		`UPDATE recipes
		 SET title = COALESCE($1, title),
		     ingredients = COALESCE($2, ingredients),
		     instructions = COALESCE($3, instructions)
		 WHERE id = $4
		 RETURNING id, title, ingredients, instructions, creator_id`,
		title, ingredients, instructions, id,
	).Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.CreatorID,
	)
	return recipe, err
}

// ========================
// DELETE RECIPE BY ID
// ========================

func (r *RecipeRepo) DeleteByID(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func scanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	var recipes []models.Recipe
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Ingredients, &rec.Instructions, &rec.CreatorID); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}
