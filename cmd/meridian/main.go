// meridian is a small CLI around the SDK, mainly for poking a sandbox
// keypair: fetch the keypair, run test transactions, inspect payments and
// serve a webhook endpoint.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	meridian "github.com/meridianpay/meridian-go"
	"github.com/meridianpay/meridian-go/webhook"
)

var (
	flagBaseURL string
	flagLocale  string
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "meridian",
		Short:         "Command line client for the Meridian payment gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override the gateway endpoint")
	root.PersistentFlags().StringVar(&flagLocale, "locale", "", "Accept-Language for customer messages")
	root.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "log requests and responses")

	root.AddCommand(keypairCmd(), authorizeCmd(), chargeCmd(), paymentCmd(), listenCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newClient() (*meridian.Client, error) {
	cfg := meridian.ConfigFromEnv()

	opts := []meridian.Option{meridian.WithConfig(cfg)}
	if flagBaseURL != "" {
		opts = append(opts, meridian.WithBaseURL(flagBaseURL))
	}
	if flagLocale != "" {
		opts = append(opts, meridian.WithLocale(flagLocale))
	}
	if flagVerbose {
		log, err := zap.NewDevelopment()
		if err != nil {
			return nil, err
		}
		opts = append(opts, meridian.WithLogger(log))
	}
	return meridian.NewClient(cfg.PrivateKey, opts...)
}

func keypairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keypair",
		Short: "Show the public key and available payment types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			keypair, err := client.FetchKeypair(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(keypair)
		},
	}
}

type cardFlags struct {
	number, expiry, cvc string
}

func (f *cardFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.number, "card-number", "", "card PAN")
	cmd.Flags().StringVar(&f.expiry, "card-expiry", "", "expiry date MM/YYYY")
	cmd.Flags().StringVar(&f.cvc, "card-cvc", "", "verification code")
}

func (f *cardFlags) build() (*meridian.Card, error) {
	if f.number == "" {
		return nil, fmt.Errorf("--card-number is required")
	}
	card, err := meridian.NewCard(f.number, f.expiry)
	if err != nil {
		return nil, err
	}
	card.CVC = f.cvc
	return card, nil
}

func authorizeCmd() *cobra.Command {
	var amount float64
	var currency, returnURL string
	var card cardFlags

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Reserve an amount on a card",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			paymentType, err := card.build()
			if err != nil {
				return err
			}
			authorization, err := client.Authorize(cmd.Context(), amount, currency, paymentType, returnURL,
				meridian.WithOrderID(uuid.NewString()))
			if err != nil {
				return err
			}
			fmt.Printf("authorization %s on payment %s (%s)\n",
				authorization.ID(), authorization.Payment().ID(), authorization.Payment().State())
			if authorization.RedirectURL != "" {
				fmt.Println("redirect the customer to:", authorization.RedirectURL)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to reserve")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO currency code")
	cmd.Flags().StringVar(&returnURL, "return-url", "https://example.com/return", "URL the customer returns to")
	cmd.MarkFlagRequired("amount")
	card.register(cmd)
	return cmd
}

func chargeCmd() *cobra.Command {
	var amount float64
	var currency, returnURL, paymentID string
	var card cardFlags

	cmd := &cobra.Command{
		Use:   "charge",
		Short: "Charge a card, or capture an authorized payment with --payment",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if paymentID != "" {
				charge, err := client.ChargeAuthorization(cmd.Context(), paymentID, amount)
				if err != nil {
					return err
				}
				fmt.Printf("charge %s on payment %s (%s)\n",
					charge.ID(), charge.Payment().ID(), charge.Payment().State())
				return nil
			}

			paymentType, err := card.build()
			if err != nil {
				return err
			}
			charge, err := client.Charge(cmd.Context(), amount, currency, paymentType, returnURL,
				meridian.WithOrderID(uuid.NewString()))
			if err != nil {
				return err
			}
			fmt.Printf("charge %s on payment %s (%s)\n",
				charge.ID(), charge.Payment().ID(), charge.Payment().State())
			return nil
		},
	}
	cmd.Flags().Float64Var(&amount, "amount", 0, "amount to charge, 0 captures the full remainder")
	cmd.Flags().StringVar(&currency, "currency", "EUR", "ISO currency code")
	cmd.Flags().StringVar(&returnURL, "return-url", "https://example.com/return", "URL the customer returns to")
	cmd.Flags().StringVar(&paymentID, "payment", "", "capture against this payment instead of a new card charge")
	card.register(cmd)
	return cmd
}

func paymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payment <payment-id>",
		Short: "Fetch a payment and print its amounts and transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			payment, err := client.FetchPayment(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			amount := payment.Amount()
			fmt.Printf("payment %s  state=%s\n", payment.ID(), payment.State())
			fmt.Printf("  total=%.2f charged=%.2f canceled=%.2f remaining=%.2f %s\n",
				amount.Total, amount.Charged, amount.Canceled, amount.Remaining, amount.Currency)
			if authorization := payment.Authorization(); authorization != nil {
				fmt.Printf("  authorization %s amount=%.2f\n", authorization.ID(), authorization.Amount)
			}
			for _, charge := range payment.Charges() {
				fmt.Printf("  charge %s amount=%.2f\n", charge.ID(), charge.Amount)
			}
			for _, cancellation := range payment.Cancellations() {
				fmt.Printf("  cancellation %s amount=%.2f\n", cancellation.ID(), cancellation.Amount)
			}
			return nil
		},
	}
}

func listenCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "listen",
		Short: "Serve a webhook endpoint that logs incoming gateway events",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			log, err := zap.NewDevelopment()
			if err != nil {
				return err
			}

			h := webhook.NewHandler(client, func(ctx context.Context, event *webhook.Event, resource meridian.Resource) error {
				if resource != nil {
					log.Info("event", zap.String("event", event.Event), zap.String("resource", resource.ID()))
				} else {
					log.Info("event", zap.String("event", event.Event))
				}
				return nil
			}, webhook.WithLogger(log))

			log.Info("listening for webhook deliveries", zap.String("addr", addr))
			return http.ListenAndServe(addr, webhook.NewRouter(h))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}

func printJSON(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(encoded))
	return nil
}
