package generator

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/graphowls/graphowls-qr/internal/adapters/config"
	"github.com/graphowls/graphowls-qr/internal/domain/service"
	"github.com/graphowls/graphowls-qr/pkg/logger"
)

const defaultURL = "https://graphowls.com"

// New builds the root command.
func New() *cobra.Command {
	var (
		configPath string
		mask       bool
		rounded    bool
	)

	cmd := &cobra.Command{
		Use:           "graphowls-qr [url]",
		Short:         "Generate QR codes for the graphowls project",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			url := defaultURL
			if len(args) > 0 {
				url = args[0]
			}
			return run(cmd.Context(), configPath, cmd.Flags().Changed("config"), service.QrRequest{
				URL:     url,
				Mask:    mask,
				Rounded: rounded,
			})
		},
	}

	cmd.Flags().BoolVarP(&mask, "mask", "m", false, "Color modules with a square gradient")
	cmd.Flags().BoolVarP(&rounded, "rounded", "r", false, "Draw rounded modules and use the rounded logo")
	cmd.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	cmd.Flags().StringP("output", "o", "qr.png", "Output PNG path")
	_ = viper.BindPFlag("qr.output", cmd.Flags().Lookup("output"))

	return cmd
}

func run(ctx context.Context, configPath string, configRequired bool, req service.QrRequest) error {
	cfg, err := config.Get(configPath, configRequired)
	if err != nil {
		return err
	}

	qrLogger, err := logger.Named("qr")
	if err != nil {
		return err
	}

	svc := service.NewQrService(cfg.Style, cfg.Assets, cfg.Drawer, cfg.Verify, qrLogger)
	return svc.GenerateFile(ctx, req, cfg.Output)
}
