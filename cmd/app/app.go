package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Keerthid-10/taylor/internal/api"
	"github.com/Keerthid-10/taylor/internal/config"
	"github.com/Keerthid-10/taylor/internal/gateway"
	"github.com/Keerthid-10/taylor/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	gw := gateway.NewClient(conf.Gateway.BaseURL, time.Duration(conf.Gateway.TimeoutSeconds)*time.Second)

	s := api.NewServer(conf, gw)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
