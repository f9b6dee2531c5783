package main

import (
	"os"

	"github.com/yansanity1998/ojt-hours-tracker/config"
	"github.com/yansanity1998/ojt-hours-tracker/routes"
	"github.com/yansanity1998/ojt-hours-tracker/services"
	"github.com/yansanity1998/ojt-hours-tracker/utils"
)

func main() {
	config.InitLogger(os.Getenv("GIN_MODE") != "release")
	if err := config.LoadEnv(); err != nil {
		config.Log.Fatal("config: " + err.Error())
	}

	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	hub := services.NewRealtimeHub()

	ps, err := services.NewPushService(config.DB)
	if err != nil {
		config.Log.Warn("push service disabled: " + err.Error())
		ps = nil
	}
	services.InitNotifier(config.DB, hub, ps)

	if mod, err := services.NewModerationService(); err != nil {
		config.Log.Warn("note moderation disabled: " + err.Error())
	} else {
		services.InitNoteModeration(mod)
	}

	r := routes.SetupRouter(hub, ps)
	if err := r.Run(":" + config.App.Port); err != nil {
		config.Log.Fatal("server: " + err.Error())
	}
}
