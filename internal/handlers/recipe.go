package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"recipebox/internal/metrics"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/repo"

	"github.com/go-chi/chi/v5"
)

type RecipeHandler struct {
	Repo *repo.RecipeRepo
}

//
// ==========================
// List Recipes (public)
// ==========================
//

// ListRecipes returns every recipe in the store. This is the public catalog;
// no token is required and the full table is returned.
func (h *RecipeHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Repo.List(r.Context())
	if err != nil {
		slog.Error("list recipes failed", "error", err)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	writeRecipeList(w, recipes)
}

//
// ==========================
// Add Recipe
// ==========================
//

func (h *RecipeHandler) AddRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	// All three fields are optional; absent fields decode to "".
	var input struct {
		Title        string `json:"title"`
		Ingredients  string `json:"ingredients"`
		Instructions string `json:"instructions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	if _, err := h.Repo.Create(r.Context(), input.Title, input.Ingredients, input.Instructions, userID); err != nil {
		slog.Error("add recipe failed", "error", err, "user_id", userID)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	metrics.IncRecipesCreated()
	JSONMsg(w, "Recipe added!", http.StatusOK)
}

//
// ==========================
// List My Recipes
// ==========================
//

func (h *RecipeHandler) ListMyRecipes(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	recipes, err := h.Repo.ListByCreator(r.Context(), userID)
	if err != nil {
		slog.Error("list my recipes failed", "error", err, "user_id", userID)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	writeRecipeList(w, recipes)
}

//
// ==========================
// Get Recipe By ID
// ==========================
//

// GetRecipe has no ownership check: any authenticated user may read any
// recipe by id. Only update and delete are restricted to the owner.
func (h *RecipeHandler) GetRecipe(w http.ResponseWriter, r *http.Request) {
	id, err := recipeID(r)
	if err != nil {
		JSONError(w, "Invalid recipe id", http.StatusBadRequest)
		return
	}

	recipe, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONError(w, MsgRecipeNotFound, http.StatusNotFound)
			return
		}
		slog.Error("get recipe failed", "error", err, "recipe_id", id)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipe)
}

//
// ==========================
// Update Recipe (owner only, partial merge)
// ==========================
//

func (h *RecipeHandler) UpdateRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		JSONError(w, "Invalid recipe id", http.StatusBadRequest)
		return
	}

	// Pointer fields distinguish "absent" from "empty": only fields present
	// in the body are merged into the stored row.
	var input struct {
		Title        *string `json:"title"`
		Ingredients  *string `json:"ingredients"`
		Instructions *string `json:"instructions"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		JSONError(w, "Invalid JSON", http.StatusBadRequest)
		return
	}

	recipe, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONError(w, MsgRecipeNotFound, http.StatusNotFound)
			return
		}
		slog.Error("update recipe: lookup failed", "error", err, "recipe_id", id)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	if recipe.CreatorID != userID {
		JSONError(w, "Unauthorized to edit this recipe", http.StatusForbidden)
		return
	}

	if _, err := h.Repo.UpdateByID(r.Context(), id, input.Title, input.Ingredients, input.Instructions); err != nil {
		slog.Error("update recipe failed", "error", err, "recipe_id", id)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	JSONMsg(w, "Recipe updated successfully", http.StatusOK)
}

//
// ==========================
// Delete Recipe (owner only)
// ==========================
//

func (h *RecipeHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	id, err := recipeID(r)
	if err != nil {
		JSONError(w, "Invalid recipe id", http.StatusBadRequest)
		return
	}

	recipe, err := h.Repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			JSONError(w, MsgRecipeNotFound, http.StatusNotFound)
			return
		}
		slog.Error("delete recipe: lookup failed", "error", err, "recipe_id", id)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	if recipe.CreatorID != userID {
		JSONError(w, "Unauthorized to delete this recipe", http.StatusForbidden)
		return
	}

	if err := h.Repo.DeleteByID(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Raced with another delete; the recipe is gone either way.
			JSONError(w, MsgRecipeNotFound, http.StatusNotFound)
			return
		}
		slog.Error("delete recipe failed", "error", err, "recipe_id", id)
		JSONError(w, MsgInternal, http.StatusInternalServerError)
		return
	}

	JSONMsg(w, "Recipe deleted successfully", http.StatusOK)
}

func recipeID(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "id"))
}

// writeRecipeList encodes recipes as a JSON array, never null.
func writeRecipeList(w http.ResponseWriter, recipes []models.Recipe) {
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(recipes)
}
