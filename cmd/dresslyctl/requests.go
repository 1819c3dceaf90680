package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/emansarahafi/Dressly/client"
)

const requestTimeout = 60 * time.Second

func newGetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get PATH",
		Short: "Send an authenticated GET and print the response body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			start := time.Now()
			resp, err := opts.client().R().SetContext(ctx).Get(args[0])
			if err != nil {
				return err
			}
			log.Debug().
				Str("path", args[0]).
				Int("status", resp.StatusCode()).
				Dur("elapsed", time.Since(start)).
				Msg("get completed")

			if resp.IsError() {
				return fmt.Errorf("GET %s: HTTP %d: %s", args[0], resp.StatusCode(), resp.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.String())
			return nil
		},
	}
}

func newWishlistCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the wishlist of the logged-in user",
	}
	cmd.AddCommand(newWishlistListCmd(opts))
	cmd.AddCommand(newWishlistAddCmd(opts))
	cmd.AddCommand(newWishlistRemoveCmd(opts))
	return cmd
}

func newWishlistListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved products",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			items, err := opts.client().ListWishlist(ctx)
			if err != nil {
				if client.IsUnauthorized(err) {
					log.Warn().Msg("not logged in or token rejected; run `dresslyctl login`")
				}
				return err
			}
			if items == nil {
				items = []client.Product{}
			}
			return printJSON(cmd, items)
		},
	}
}

func newWishlistAddCmd(opts *rootOptions) *cobra.Command {
	var code, name, price, image string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Save a product",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			req := client.WishlistItemRequest{
				Code:  code,
				Name:  name,
				Price: client.Price{FormattedValue: price},
			}
			if image != "" {
				req.Images = []client.Image{{URL: image}}
			}

			msg, err := opts.client().AddToWishlist(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg.Message)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Product code (required)")
	cmd.Flags().StringVar(&name, "name", "", "Product name (required)")
	cmd.Flags().StringVar(&price, "price", "", "Formatted price")
	cmd.Flags().StringVar(&image, "image", "", "Image URL")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newWishlistRemoveCmd(opts *rootOptions) *cobra.Command {
	var code string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a saved product",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			if err := opts.client().RemoveFromWishlist(ctx, code); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Item removed from wishlist")
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Product code (required)")
	_ = cmd.MarkFlagRequired("code")

	return cmd
}

func newQuizCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Style quiz",
	}

	var answers string
	submit := &cobra.Command{
		Use:   "submit",
		Short: "Submit quiz answers (JSON object) and print the recommendation",
		RunE: func(cmd *cobra.Command, args []string) error {
			var parsed client.QuizAnswers
			if err := json.Unmarshal([]byte(answers), &parsed); err != nil {
				return fmt.Errorf("parse --answers: %w", err)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout)
			defer cancel()

			res, err := opts.client().SubmitQuiz(ctx, parsed)
			if err != nil {
				return err
			}
			return printJSON(cmd, res)
		},
	}
	submit.Flags().StringVar(&answers, "answers", "", `Quiz answers as JSON, e.g. '{"style":"casual"}' (required)`)
	_ = submit.MarkFlagRequired("answers")

	cmd.AddCommand(submit)
	return cmd
}
