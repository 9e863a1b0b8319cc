package auth

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"recipebox/cmd/cli/config"

	"github.com/spf13/cobra"
)

// InitAuth registers auth-related CLI commands (register, login, logout) on the root command.
func InitAuth(rootCmd *cobra.Command) {
	rootCmd.AddCommand(registerCmd(), loginCmd(), logoutCmd())
}

// registerCmd creates a new user account.
func registerCmd() *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new RecipeBox user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			payload := map[string]string{"username": username, "password": password}
			if err := callJSONEndpoint(http.DefaultClient, "/auth/register", payload, nil); err != nil {
				return fmt.Errorf("failed to register: %w", err)
			}

			fmt.Println("User registered successfully! You can now login.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to register")
	cmd.Flags().StringVar(&password, "password", "", "Password for the new account")

	return cmd
}

// loginCmd logs in a user and stores the JWT token locally.
func loginCmd() *cobra.Command {
	var username string
	var password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the RecipeBox API",
		Long:  "Authenticate with the RecipeBox API and store a JWT token for subsequent CLI commands.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" || password == "" {
				return fmt.Errorf("username and password are required")
			}

			var loginResp struct {
				Token string `json:"token"`
			}
			payload := map[string]string{"username": username, "password": password}
			if err := callJSONEndpoint(http.DefaultClient, "/auth/login", payload, &loginResp); err != nil {
				return fmt.Errorf("failed to login: %w", err)
			}
			if loginResp.Token == "" {
				return fmt.Errorf("login succeeded but no token returned")
			}

			if err := config.SaveToken(loginResp.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Println("Login successful. Token stored locally.")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username to authenticate as")
	cmd.Flags().StringVar(&password, "password", "", "Password")

	return cmd
}

// logoutCmd removes the locally stored token.
func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out (remove the stored token)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteToken(); err != nil {
				return fmt.Errorf("failed to remove token: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

func callJSONEndpoint(client *http.Client, path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", config.APIURL()+path, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return err
		}
	}

	return nil
}
