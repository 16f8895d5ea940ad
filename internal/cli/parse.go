package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/internal/parsing"
	"github.com/vfg2006/orders-report-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

type parseResult struct {
	Team       domain.Team                 `json:"team,omitempty"`
	Rollup     domain.TeamRollup           `json:"rollup"`
	Rejections map[domain.RejectReason]int `json:"rejections"`
	Details    []domain.BlockOutcome       `json:"details"`
}

func newParseCommand() *cobra.Command {
	var (
		teamLabel     string
		minChatLength int
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Processa um texto de pedidos sem salvar (lê da entrada padrão se não houver arquivo)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var team domain.Team
			if teamLabel != "" {
				parsed, err := domain.ParseTeam(teamLabel)
				if err != nil {
					return err
				}
				team = parsed
			}

			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			parser := parsing.NewParser(parsing.NewSegmenter(minChatLength))
			outcomes := parser.Parse(text)

			result := parseResult{
				Team:       team,
				Rollup:     ordering.Aggregate(team, domain.AcceptedOrders(outcomes)),
				Rejections: domain.RejectionsByReason(outcomes),
				Details:    outcomes,
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				fmt.Fprintln(out, utils.PrettyJson(result))
				return nil
			}

			writeParseResult(out, result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&teamLabel, "team", "t", "", "time dos pedidos (A, B, C, C1, Follow-up)")
	cmd.Flags().IntVar(&minChatLength, "min-chat-length", parsing.DefaultMinChatBlockLength, "tamanho mínimo de uma mensagem de conversa exportada")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "imprime o resultado em JSON")

	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("erro ao ler entrada padrão: %w", err)
		}
		return string(raw), nil
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("erro ao ler arquivo %s: %w", args[0], err)
	}
	return string(raw), nil
}

func writeParseResult(out io.Writer, result parseResult) {
	for _, outcome := range result.Details {
		if outcome.Accepted() {
			fmt.Fprintf(out, "#%d ok      %-30s %s %s\n",
				outcome.Index+1, outcome.Pattern, outcome.Order.Amount.String(), outcome.Order.CustomerName)
			continue
		}
		fmt.Fprintf(out, "#%d rejected %s\n", outcome.Index+1, outcome.Rejection.Reason)
	}

	fmt.Fprintf(out, "\npedidos: %s  vendas: %s  rejeitados: %d\n",
		utils.FormatCount(int64(result.Rollup.OrderCount)),
		utils.FormatMoney(result.Rollup.SalesTotal),
		len(result.Details)-result.Rollup.OrderCount,
	)
}
