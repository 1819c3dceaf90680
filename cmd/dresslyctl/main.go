package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/emansarahafi/Dressly/client"
	"github.com/emansarahafi/Dressly/client/store"
	"github.com/emansarahafi/Dressly/internal/config"
)

type rootOptions struct {
	apiURL    string
	tokenFile string
	debug     bool
	cfg       *config.Config
}

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("invalid configuration, using defaults")
		cfg = &config.Config{APIURL: os.Getenv("DRESSLY_API_URL")}
		cfg.ResolveDefaults()
	}
	opts := &rootOptions{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "dresslyctl",
		Short:         "Command-line client for the Dressly API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg.Debug = opts.debug
			cfg.Init()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", cfg.APIURL, "Base URL of the Dressly API")
	rootCmd.PersistentFlags().StringVar(&opts.tokenFile, "token-file", cfg.TokenFile, "File holding the stored credential")
	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", cfg.Debug, "Log HTTP traffic (credentials redacted)")

	rootCmd.AddCommand(newLoginCmd(opts))
	rootCmd.AddCommand(newLogoutCmd(opts))
	rootCmd.AddCommand(newTokenCmd(opts))
	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newWishlistCmd(opts))
	rootCmd.AddCommand(newQuizCmd(opts))

	return rootCmd
}

func (o *rootOptions) store() *store.FileStore {
	return store.NewFileStore(o.tokenFile)
}

func (o *rootOptions) client() *client.Client {
	log.Debug().
		Str("api_url", o.apiURL).
		Str("token_file", o.tokenFile).
		Msg("building client")

	return client.New(
		client.WithBaseURL(o.apiURL),
		client.WithTokenStore(o.store()),
		client.WithHTTPTimeout(o.cfg.HTTPTimeout),
		client.WithDebugLogging(o.debug),
	)
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}
