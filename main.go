package main

import (
	"context"
	"fmt"
	"log"

	"cpu-scheduler-simulator/api"
	"cpu-scheduler-simulator/config"
	"cpu-scheduler-simulator/internal/tracing"
)

func main() {
	cfg := config.GetSchedulerConfig()
	if cfg.Tracing.Enabled {
		if err := tracing.Init("cpu-scheduler-simulator", "0.1.0", cfg.Tracing.OutputFile); err != nil {
			log.Fatalln(err)
		}
	}

	app := api.NewApp(api.NewSchedulerHandlerImpl(cfg))
	err := app.Listen(fmt.Sprintf(":%d", cfg.Port))
	_ = tracing.Shutdown(context.Background())
	log.Fatalln(err)
}
