package api

import (
	"context"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// MessageResponse contains a simple message.
type MessageResponse struct {
	Message string `json:"message" doc:"Status message"`
}

// MessageOutput wraps the message response for Huma.
type MessageOutput struct {
	Body MessageResponse
}

// authenticateRequest validates the Authorization header and returns the user ID.
func (s *Server) authenticateRequest(ctx context.Context, authHeader string) (string, error) {
	if authHeader == "" {
		return "", huma.Error401Unauthorized("Missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", huma.Error401Unauthorized("Invalid authorization header format")
	}

	user, _, err := s.services.Auth.VerifyAccessToken(ctx, parts[1])
	if err != nil {
		return "", huma.Error401Unauthorized("Invalid or expired token")
	}

	return user.ID, nil
}

// optionalUserID returns the user ID when a valid token is present, or ""
// when the request is anonymous. Endpoints with visitor-neutral responses
// (favorite status, favorite lists) use this instead of authenticateRequest.
func (s *Server) optionalUserID(ctx context.Context, authHeader string) string {
	userID, err := s.authenticateRequest(ctx, authHeader)
	if err != nil {
		return ""
	}
	return userID
}

// extractIP picks the client IP from proxy headers, first hop wins.
func extractIP(forwardedFor, realIP string) string {
	if forwardedFor != "" {
		if idx := strings.IndexByte(forwardedFor, ','); idx >= 0 {
			return strings.TrimSpace(forwardedFor[:idx])
		}
		return strings.TrimSpace(forwardedFor)
	}
	if realIP != "" {
		return realIP
	}
	return "unknown"
}
