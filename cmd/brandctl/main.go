package main

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"brandkit/internal/branding"
	"brandkit/internal/config"
	"brandkit/internal/utils"
)

var (
	flagServer  string
	flagConfig  string
	flagTimeout int

	cfg    *config.Config
	client *branding.Client
	logger *utils.Logger
)

var rootCmd = &cobra.Command{
	Use:               "brandctl",
	Short:             "Manage and preview portal branding assets",
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

func initializeApp(cmd *cobra.Command, _ []string) error {
	var err error
	cfg, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagServer != "" {
		cfg.ServerURL = flagServer
	}
	if flagTimeout > 0 {
		cfg.TimeoutSeconds = flagTimeout
	}
	if cfg.LogFile != "" {
		logger, err = utils.NewLogger(cfg.LogFile)
		if err != nil {
			return err
		}
	} else {
		logger = utils.NewWriterLogger(cmd.ErrOrStderr())
	}
	client, err = branding.NewClient(cfg.ServerURL, cfg.Timeout())
	return err
}

// newGateway wires the mutation gateway. The CLI has no identity collaborator
// to supply a role claim, so the only client-side check is token presence;
// the server's 401/403 stays the ground truth.
func newGateway() *branding.Gateway {
	return branding.NewGateway(client, config.Token, nil)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Resolve and print the display value for every asset type",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		coord := branding.NewCoordinator(client, cfg.Defaults(), logger)
		st := coord.Resolve(cmd.Context(), branding.AllTypes()...)
		for _, t := range branding.AllTypes() {
			out := st.Outcomes[t]
			fmt.Printf("%-8s (%s)  %s\n", t, out.Source, out.Value)
		}
		if st.Err != "" {
			return errors.New(st.Err)
		}
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the assets stored at the backend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		assets, err := client.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(assets) == 0 {
			fmt.Println("no assets configured")
			return nil
		}
		for _, a := range assets {
			switch a.AssetType {
			case branding.TypeLogo:
				fmt.Printf("%-8s %s (%s, %s)\n", a.AssetType, a.URL, a.FileName, a.ContentType)
			default:
				fmt.Printf("%-8s %q\n", a.AssetType, a.Text)
			}
		}
		return nil
	},
}

var setLogoCmd = &cobra.Command{
	Use:   "set-logo <file>",
	Short: "Upload or replace the portal logo",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		contentType := mime.TypeByExtension(filepath.Ext(args[0]))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		return store(cmd.Context(), branding.TypeLogo, branding.Payload{
			FileName:    filepath.Base(args[0]),
			ContentType: contentType,
			File:        data,
		})
	},
}

var setFooterCmd = &cobra.Command{
	Use:   "set-footer <text>",
	Short: "Set or replace the portal footer text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return store(cmd.Context(), branding.TypeFooter, branding.Payload{Text: args[0]})
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <type>",
	Short: "Delete a branding asset so the portal shows the fallback",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := branding.ParseAssetType(args[0])
		if err != nil {
			return err
		}
		if err := newGateway().Remove(cmd.Context(), t); err != nil {
			return describeWriteError(err)
		}
		fmt.Printf("removed %s asset; the portal will show the fallback\n", t)
		return nil
	},
}

// store probes for an existing asset and picks upload vs update; the backend
// keeps at most one asset per type either way.
func store(ctx context.Context, t branding.AssetType, p branding.Payload) error {
	existing, err := client.GetByType(ctx, t)
	if err != nil {
		return err
	}

	g := newGateway()
	var saved *branding.Asset
	if existing == nil {
		saved, err = g.Upload(ctx, t, p)
	} else {
		saved, err = g.Update(ctx, t, p)
	}
	if err != nil {
		return describeWriteError(err)
	}
	fmt.Printf("stored %s asset (run 'brandctl show' to see the resolved values)\n", saved.AssetType)
	return nil
}

func describeWriteError(err error) error {
	switch {
	case errors.Is(err, branding.ErrNoCredential):
		return fmt.Errorf("no credential: set %s and retry", config.TokenEnv)
	case branding.IsAuth(err):
		return fmt.Errorf("the server rejected the credential, re-authenticate and retry: %w", err)
	case branding.IsValidation(err):
		return err
	default:
		return err
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagServer, "server", "", "backend base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "path to a brandctl YAML config file")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "request timeout in seconds (overrides config)")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(setLogoCmd)
	rootCmd.AddCommand(setFooterCmd)
	rootCmd.AddCommand(rmCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
