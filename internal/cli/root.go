package cli

import (
	"github.com/spf13/cobra"

	"github.com/vfg2006/orders-report-api/pkg/log"
)

// NewRootCommand monta o ordersctl com os subcomandos parse e report
func NewRootCommand() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:           "ordersctl",
		Short:         "Ferramentas de linha de comando para pedidos e relatórios dos times",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Setup(logLevel)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "nível de log (debug, info, warn, error)")

	root.AddCommand(newParseCommand())
	root.AddCommand(newReportCommand())

	return root
}
