// Package dto defines the request/response shapes of the console API.
package dto

import (
	"encoding/json"
	"time"
)

// LoginRequest carries the credentials collected by the login screen.
type LoginRequest struct {
	Usercode string `json:"usercode" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"P@ssw0rd"`
}

// LoginResponse is returned on successful login. Token is the console-minted
// credential for subsequent API calls; the platform's own key never leaves
// the console.
type LoginResponse struct {
	Token        string          `json:"token"`
	User         json.RawMessage `json:"user,omitempty"`
	Organization json.RawMessage `json:"organization,omitempty"`
	Branch       json.RawMessage `json:"branch,omitempty"`
	CurrentDay   string          `json:"currentDay,omitempty"`
	Privileges   json.RawMessage `json:"privileges,omitempty"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}
