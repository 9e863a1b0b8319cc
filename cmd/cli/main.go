package main

import (
	"fmt"
	"os"

	"recipebox/cmd/cli/auth"
	"recipebox/cmd/cli/recipes"
	"recipebox/cmd/cli/root"
)

func main() {
	rootCmd := root.GetRoot()
	auth.InitAuth(rootCmd)
	recipes.InitRecipes(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
