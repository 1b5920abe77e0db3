package main

import (
	"fmt"
	"os"

	"eventfest/internal/config"
	"eventfest/internal/console"
	"eventfest/internal/logger"
	"eventfest/internal/service"
	"eventfest/internal/storage/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	st, err := sqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.WithError(err).Error("closing storage")
		}
	}()

	data, err := st.LoadAll()
	if err != nil {
		return err
	}
	if len(data.Users) == 0 && len(data.Events) == 0 {
		log.Info("no users or events registered yet")
	}

	userService, err := service.NewUserService(log, st)
	if err != nil {
		return err
	}
	eventService, err := service.NewEventService(log, st, st, userService)
	if err != nil {
		return err
	}

	return console.New(log, userService, eventService).Run()
}
