package config

import (
	"github.com/urfave/cli/v3"
)

// Server holds dashboard server configuration
type Server struct {
	Addr string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Dashboard server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("ZBXMON_ADDR"),
			Destination: &s.Addr,
		},
	}
}
