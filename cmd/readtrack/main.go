package main

import (
	"flag"
	"fmt"
	"os"
	"readtrack/internal/di"
	"readtrack/internal/structures"

	"github.com/joho/godotenv"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config/readtrack.yaml", "path to the YAML config file")
	flag.StringVar(&flags.EnvPath, "env", ".env", "optional dotenv file with READTRACK_* overrides")
	flag.BoolVar(&flags.DebugMode, "debug", false, "log to the console as well as to files")
	flag.Parse()

	if err := godotenv.Load(flags.EnvPath); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "failed to load %s: %s\n", flags.EnvPath, err)
		os.Exit(1)
	}

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start: %s\n", err)
		os.Exit(1)
	}

	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
