package main

import (
	"encoding/json"
	"fllvideo/app"
	"fllvideo/config"
	"fllvideo/log"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	version     = "0.1.0"
	renderFlags styleFlags
	colorFlag   string
	rootCmd     = &cobra.Command{
		Use:   "fllvideo",
		Short: "FLL Robot Game video processor console tools",
		Long: "Prints the video processor's startup banner. Use the subcommands to render\n" +
			"custom info boxes or keep the banner on screen.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return bannerCmd.RunE(cmd, args)
		},
	}

	bannerCmd = &cobra.Command{
		Use:   "banner",
		Short: "Print the startup banner with the configured video streams",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			color := cfg.Color
			if colorFlag != "" {
				color = colorFlag
			}
			return printBox(cfg.BannerSpec(), color, false)
		},
	}

	renderCmd = &cobra.Command{
		Use:   "render [title]",
		Short: "Render an info box",
		Example: `  fllvideo render "Press CTRL+C to exit"
  fllvideo render "Match 12" --note "Red vs Blue" -l "Cameras:" -i north -i south
  fllvideo render --spec box.yaml --border-icon "=" --copy`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			spec, err := renderFlags.buildSpec(cmd.Flags(), cfg, args)
			if err != nil {
				return err
			}

			color := cfg.Color
			if renderFlags.color != "" {
				color = renderFlags.color
			}
			return printBox(spec, color, renderFlags.copyOutput)
		},
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Keep the startup banner on screen until CTRL+C",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()
			if colorFlag != "" {
				if err := config.ValidateColorMode(colorFlag); err != nil {
					return err
				}
				cfg.Color = colorFlag
			}
			defer log.GetProfiler().LogSummary()
			return app.Run(cmd.Context(), cfg)
		},
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Print the config file path and its current contents",
		RunE: func(cmd *cobra.Command, args []string) error {
			log.Initialize()
			defer log.Close()

			cfg := config.LoadConfig()

			configDir, err := config.GetConfigDir()
			if err != nil {
				return fmt.Errorf("failed to get config directory: %w", err)
			}
			configJson, _ := json.MarshalIndent(cfg, "", "  ")

			fmt.Printf("Config: %s\n%s\n", filepath.Join(configDir, config.ConfigFileName), configJson)
			fmt.Printf("Log: %s\n", log.LogFileName())

			return nil
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of fllvideo",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("fllvideo version %s\n", version)
		},
	}
)

func init() {
	renderFlags.register(renderCmd.Flags())

	for _, c := range []*cobra.Command{rootCmd, bannerCmd, watchCmd} {
		c.Flags().StringVar(&colorFlag, "color", "", "Color mode: 'auto', 'always' or 'never' (default from config)")
	}

	rootCmd.AddCommand(bannerCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
