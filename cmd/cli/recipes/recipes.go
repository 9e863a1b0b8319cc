package recipes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"recipebox/cmd/cli/config"
	"recipebox/cmd/cli/output"
	"recipebox/internal/models"

	"github.com/spf13/cobra"
)

// ==========================
// Init Recipes
// ==========================
func InitRecipes(rootCmd *cobra.Command) {

	recipesCmd := &cobra.Command{
		Use:   "recipes",
		Short: "Browse and manage recipes",
	}

	recipesCmd.AddCommand(
		listRecipesCmd(),
		myRecipesCmd(),
		getRecipeCmd(),
		addRecipeCmd(),
		updateRecipeCmd(),
		deleteRecipeCmd(),
	)

	rootCmd.AddCommand(recipesCmd)
}

// ==========================
// LIST (public)
// ==========================
func listRecipesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all recipes (no login required)",
		Run: func(cmd *cobra.Command, args []string) {
			req, _ := http.NewRequest("GET", config.APIURL()+"/api/recipes", nil)
			printRecipeList(req, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")
	return cmd
}

// ==========================
// MINE
// ==========================
func myRecipesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "mine",
		Short: "List your own recipes",
		Run: func(cmd *cobra.Command, args []string) {
			token, err := config.ReadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			req, _ := http.NewRequest("GET", config.APIURL()+"/api/myrecipes", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			printRecipeList(req, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print raw JSON instead of a table")
	return cmd
}

// ==========================
// GET
// ==========================
func getRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a single recipe",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			token, err := config.ReadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			req, _ := http.NewRequest("GET", config.APIURL()+"/api/recipes/"+args[0], nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			printJSON(resp.Body)
		},
	}
}

// ==========================
// ADD
// ==========================
func addRecipeCmd() *cobra.Command {
	var title, ingredients, instructions string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a recipe",
		Run: func(cmd *cobra.Command, args []string) {
			token, err := config.ReadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]string{
				"title":        title,
				"ingredients":  ingredients,
				"instructions": instructions,
			}
			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("POST", config.APIURL()+"/api/add", bytes.NewBuffer(body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			printJSON(resp.Body)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "recipe title")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "recipe ingredients")
	cmd.Flags().StringVar(&instructions, "instructions", "", "recipe instructions")

	return cmd
}

// ==========================
// UPDATE (only the provided flags are sent)
// ==========================
func updateRecipeCmd() *cobra.Command {
	var title, ingredients, instructions string

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update your recipe (partial; only given flags change)",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			token, err := config.ReadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			payload := map[string]string{}
			if cmd.Flags().Changed("title") {
				payload["title"] = title
			}
			if cmd.Flags().Changed("ingredients") {
				payload["ingredients"] = ingredients
			}
			if cmd.Flags().Changed("instructions") {
				payload["instructions"] = instructions
			}
			body, _ := json.Marshal(payload)

			req, _ := http.NewRequest("PUT", config.APIURL()+"/api/recipes/"+args[0], bytes.NewBuffer(body))
			req.Header.Set("Authorization", "Bearer "+token)
			req.Header.Set("Content-Type", "application/json")

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			printJSON(resp.Body)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "recipe title")
	cmd.Flags().StringVar(&ingredients, "ingredients", "", "recipe ingredients")
	cmd.Flags().StringVar(&instructions, "instructions", "", "recipe instructions")

	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteRecipeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete your recipe",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			token, err := config.ReadToken()
			if err != nil {
				fmt.Println("Please login first")
				return
			}

			req, _ := http.NewRequest("DELETE", config.APIURL()+"/api/recipes/"+args[0], nil)
			req.Header.Set("Authorization", "Bearer "+token)

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Println(err)
				return
			}
			defer resp.Body.Close()

			if resp.StatusCode == http.StatusOK {
				fmt.Println("Recipe deleted")
			} else {
				body, _ := io.ReadAll(resp.Body)
				fmt.Printf("Failed to delete recipe: %s\n", string(body))
			}
		},
	}
}

// printRecipeList performs the request and renders the recipes as a table or raw JSON.
func printRecipeList(req *http.Request, asJSON bool) {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		fmt.Printf("API error: %s\n", string(body))
		return
	}

	var recipes []models.Recipe
	if err := json.NewDecoder(resp.Body).Decode(&recipes); err != nil {
		fmt.Println("Failed to decode response:", err)
		return
	}

	if asJSON {
		b, _ := json.MarshalIndent(recipes, "", "  ")
		fmt.Println(string(b))
		return
	}

	rows := make([][]interface{}, 0, len(recipes))
	for _, rec := range recipes {
		rows = append(rows, []interface{}{rec.ID, rec.Title, rec.Ingredients, rec.Instructions})
	}
	output.RenderTable([]string{"ID", "Title", "Ingredients", "Instructions"}, rows)
}

func printJSON(body io.Reader) {
	var out any
	if err := json.NewDecoder(body).Decode(&out); err != nil {
		fmt.Println("Failed to decode response:", err)
		return
	}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
