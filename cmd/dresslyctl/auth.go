package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/emansarahafi/Dressly/client"
)

func newLoginCmd(opts *rootOptions) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a bearer token for subsequent requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				return errors.New("--token must not be empty")
			}
			if err := opts.store().Set(cmd.Context(), client.TokenKey, token); err != nil {
				return fmt.Errorf("store token: %w", err)
			}
			log.Debug().Str("token_file", opts.tokenFile).Msg("token stored")
			fmt.Fprintln(cmd.OutOrStdout(), "Token stored")
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Bearer token issued by the API (required)")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}

func newLogoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored bearer token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.store().Delete(cmd.Context(), client.TokenKey); err != nil {
				return fmt.Errorf("remove token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Token removed")
			return nil
		},
	}
}

// tokenInfo is what `dresslyctl token` reports. Claims are decoded without
// verification; the signing key lives on the server.
type tokenInfo struct {
	Present   bool       `json:"present"`
	Format    string     `json:"format,omitempty"`
	Subject   string     `json:"subject,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Expired   bool       `json:"expired,omitempty"`
}

func newTokenCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "token",
		Short: "Show subject and expiry of the stored token",
		RunE: func(cmd *cobra.Command, args []string) error {
			tok, ok, err := opts.store().Get(cmd.Context(), client.TokenKey)
			if err != nil {
				return fmt.Errorf("read token: %w", err)
			}
			if !ok || tok == "" {
				return printJSON(cmd, tokenInfo{})
			}
			return printJSON(cmd, inspectToken(tok, time.Now()))
		},
	}
}

func inspectToken(tok string, now time.Time) tokenInfo {
	info := tokenInfo{Present: true, Format: "opaque"}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return info
	}
	info.Format = "jwt"
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time.UTC()
		info.ExpiresAt = &t
		info.Expired = now.After(t)
	}
	return info
}
