package handlers

import (
	"github.com/code4projects/raceboard/service"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	races  *service.RaceService
	users  *service.UserService
	JWTKey []byte
}

// New creates a Handler with the given services and JWT signing key.
func New(races *service.RaceService, users *service.UserService, jwtKey []byte) *Handler {
	return &Handler{races: races, users: users, JWTKey: jwtKey}
}
