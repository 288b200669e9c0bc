package main

import (
	"context"
	"turtledb-backend/cmd/turtledb-cli/commands"
	"turtledb-backend/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "turtledb-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
