package recipes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"recipebox/internal/models"
)

// captureOutput helps capture stdout during command execution.
func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

func TestListRecipes_TableOutput(t *testing.T) {
	recipes := []models.Recipe{
		{ID: 1, Title: "Soup", Ingredients: "salt", Instructions: "boil"},
		{ID: 2, Title: "Toast", Ingredients: "bread", Instructions: "toast it"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/recipes" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(recipes)
	}))
	defer srv.Close()

	t.Setenv("RECIPEBOX_API_URL", srv.URL)

	cmd := listRecipesCmd()

	out := captureOutput(t, func() {
		cmd.Run(cmd, []string{})
	})

	if !strings.Contains(out, "Soup") || !strings.Contains(out, "Toast") {
		t.Fatalf("expected recipe titles in output, got: %s", out)
	}
}

func TestListRecipes_JSONOutput(t *testing.T) {
	recipes := []models.Recipe{
		{ID: 1, Title: "Soup", Ingredients: "salt", Instructions: "boil"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(recipes)
	}))
	defer srv.Close()

	t.Setenv("RECIPEBOX_API_URL", srv.URL)

	cmd := listRecipesCmd()
	_ = cmd.Flags().Set("json", "true")

	out := captureOutput(t, func() {
		cmd.Run(cmd, []string{})
	})

	if !strings.Contains(out, `"title": "Soup"`) {
		t.Fatalf("expected JSON output, got: %s", out)
	}
}

func TestMyRecipes_SendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/myrecipes" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode([]models.Recipe{})
	}))
	defer srv.Close()

	t.Setenv("RECIPEBOX_API_URL", srv.URL)
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile(os.Getenv("HOME")+"/.recipebox_token", []byte("cli-test-token"), 0600); err != nil {
		t.Fatalf("write token: %v", err)
	}

	cmd := myRecipesCmd()
	captureOutput(t, func() {
		cmd.Run(cmd, []string{})
	})

	if gotAuth != "Bearer cli-test-token" {
		t.Errorf("Authorization header: got %q", gotAuth)
	}
}

func TestUpdateRecipe_SendsOnlyChangedFields(t *testing.T) {
	var gotBody map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "PUT" || r.URL.Path != "/api/recipes/5" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(map[string]string{"msg": "Recipe updated successfully"})
	}))
	defer srv.Close()

	t.Setenv("RECIPEBOX_API_URL", srv.URL)
	t.Setenv("HOME", t.TempDir())
	if err := os.WriteFile(os.Getenv("HOME")+"/.recipebox_token", []byte("tok"), 0600); err != nil {
		t.Fatalf("write token: %v", err)
	}

	cmd := updateRecipeCmd()
	_ = cmd.Flags().Set("title", "New title")

	captureOutput(t, func() {
		cmd.Run(cmd, []string{"5"})
	})

	if len(gotBody) != 1 || gotBody["title"] != "New title" {
		t.Errorf("expected only title in body, got: %v", gotBody)
	}
}
