package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gravitrone/kbase/internal/server"
)

// ServeCmd returns the `kbase serve` command.
func ServeCmd(flags *Flags) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the knowledge base as a web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := flags.Env("stderr")
			if err != nil {
				return err
			}
			defer env.Close()
			if addr == "" {
				addr = env.Config.Addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			lib, err := env.Loader.Load(ctx)
			if err != nil {
				return fmt.Errorf("load knowledge base: %w", err)
			}
			entries, faqErr := env.Loader.LoadFAQ(ctx, env.Config.FAQFile)
			if faqErr != nil {
				env.Logger.Warn("faq unavailable", zap.Error(faqErr))
			}

			srv, err := server.New(server.Options{
				Library:     lib,
				FAQ:         entries,
				FAQErr:      faqErr,
				Table:       env.Table,
				Source:      env.Loader.Source(),
				Names:       NameStore{},
				DisplayName: env.Config.DisplayName,
				Logger:      env.Logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "serving %s on http://%s\n", env.Config.Site, addr)
			return srv.ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config)")
	return cmd
}
