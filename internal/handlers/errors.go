package handlers

import (
	"encoding/json"
	"net/http"
)

// Response messages shared by handlers and tests. Login failures use one
// message for both unknown-user and bad-password so usernames cannot be
// enumerated.
const (
	MsgMissingCredentials = "Username and password required"
	MsgUsernameExists     = "Username already exists"
	MsgRegisterFailed     = "Registration failed"
	MsgRegistered         = "Registered successfully"
	MsgInvalidCredentials = "Invalid credentials"
	MsgRecipeNotFound     = "Recipe not found"
	MsgInternal           = "Internal server error"
)

// JSONMsg sends a `{"msg": ...}` body with the given status. All confirmation
// and error responses share this shape.
func JSONMsg(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"msg": message})
}

// JSONError is JSONMsg under its conventional name for error paths.
func JSONError(w http.ResponseWriter, message string, status int) {
	JSONMsg(w, message, status)
}
