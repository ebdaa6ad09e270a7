package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lumen-edu/lumen/internal/infrastructure/config"
	"github.com/lumen-edu/lumen/internal/infrastructure/database"
	"github.com/lumen-edu/lumen/internal/infrastructure/repository"
	"github.com/lumen-edu/lumen/internal/infrastructure/seed"
	"github.com/lumen-edu/lumen/internal/shared/constants"
	"github.com/lumen-edu/lumen/internal/shared/logger"
)

var (
	env      string
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load catalog seed data",
		Long:  `Create the content types, subjects, prices and offers described in a YAML seed file. Rows that already exist are left untouched.`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	f, err := seed.LoadFile(seedFile)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()
	seeder := seed.NewSeeder(seed.Repositories{
		Subjects:     repository.NewSubjectRepository(gdb, log),
		ContentTypes: repository.NewContentTypeRepository(gdb, log),
		Contents:     repository.NewSubjectContentRepository(gdb, log),
		Pricing:      repository.NewPricingRepository(gdb, log),
		Offers:       repository.NewOfferRepository(gdb, log),
	}, log)

	res, err := seeder.Apply(cmd.Context(), f)
	if err != nil {
		return fmt.Errorf("seed failed: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(),
		"Seeded %d content types, %d subjects, %d contents, %d prices, %d offers\n",
		res.ContentTypes, res.Subjects, res.Contents, res.Prices, res.Offers)
	return nil
}
