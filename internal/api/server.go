package api

import (
	"github.com/vytor/leetrecall/internal/services"
)

// Server exposes the problem log and settings over JSON. All state lives in
// the services; the server itself holds none.
type Server struct {
	Problems    services.ProblemService
	Settings    services.SettingsService
	CORSOrigins []string
}

func NewServer(problems services.ProblemService, settings services.SettingsService, corsOrigins []string) *Server {
	return &Server{
		Problems:    problems,
		Settings:    settings,
		CORSOrigins: corsOrigins,
	}
}
