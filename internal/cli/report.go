package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vfg2006/orders-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/orders-report-api/infrastructure/repository"
	"github.com/vfg2006/orders-report-api/internal/config"
	"github.com/vfg2006/orders-report-api/internal/usecases/reporting"
	"github.com/vfg2006/orders-report-api/internal/usecases/spending"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

func newReportCommand() *cobra.Command {
	var (
		date       string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Gera o relatório atual usando a configuração da API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := utils.ParseDate(date)
			if err != nil {
				return fmt.Errorf("data inválida %q: %w", date, err)
			}

			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			conn, err := postgres.NewConnection(ctx, cfg.Database)
			if err != nil {
				return fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
			}
			defer conn.Close()

			spend := spending.NewService(meta.New(cfg, metaclient.NewClient(cfg))).
				WithCache(repository.NewSpendSnapshotRepository(conn))
			service := reporting.NewService(
				repository.NewOrderRollupRepository(conn),
				spend,
				reporting.SystemClock{Location: cfg.Report.Location},
			)

			out := cmd.OutOrStdout()
			if jsonOutput {
				report, err := service.Summary(ctx, *day)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, utils.PrettyJson(report))
				return nil
			}

			response, err := service.GenerateReport(ctx, *day)
			if err != nil {
				return err
			}

			fmt.Fprint(out, response.Report)
			if response.APIError != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "\n%s\n", *response.APIError)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "dia do gasto no formato AAAA-MM-DD (padrão: hoje)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "imprime os números do relatório em JSON")

	return cmd
}
