package domain

import "github.com/golang-jwt/jwt/v5"

// Claims identifica o chamador e os workspaces que ele pode consultar.
// A emissão do token é externa; aqui apenas validamos.
type Claims struct {
	UserID       string   `json:"user_id"`
	UserEmail    string   `json:"email"`
	WorkspaceIDs []string `json:"workspace_ids"`
	jwt.RegisteredClaims
}

func (c *Claims) CanAccessWorkspace(workspaceID string) bool {
	if c == nil {
		return false
	}
	for _, id := range c.WorkspaceIDs {
		if id == workspaceID {
			return true
		}
	}
	return false
}
