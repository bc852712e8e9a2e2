package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"employee_manager/internal/app"
	"employee_manager/internal/config"
	"employee_manager/internal/display"
	"employee_manager/internal/prompt"
	"employee_manager/internal/repository"
	"employee_manager/pkg/database"
	"employee_manager/pkg/log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// configEnv names the variable that points at the YAML config file.
const configEnv = "EMPLOYEE_MANAGER_CONFIG"

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "employee-manager",
		Short:        "Manage employees, roles and departments from the terminal",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
			if errors.Is(err, context.Canceled) {
				log.Info("Interrupted")
				return nil
			}
			return err
		},
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	_ = godotenv.Load()

	configPath := os.Getenv(configEnv)
	if configPath == "" {
		configPath = defaultConfigPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := log.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.OutputPath); err != nil {
		return err
	}
	defer log.Sync()

	db, err := database.Open(cfg.Database, cfg.Log.SQLLevel)
	if err != nil {
		log.Error("Failed to connect to database", err)
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Error("Failed to close database", err)
		}
	}()

	employees := repository.NewEmployeeRepository(db)
	roles := repository.NewRoleRepository(db)
	departments := repository.NewDepartmentRepository(db)

	menu := prompt.NewInteractor(prompt.NewTeaPrompter(in, out), employees, roles, departments)
	return app.New(menu, employees, roles, departments, display.NewRenderer(out)).Run(ctx)
}
