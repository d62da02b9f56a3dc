package catalogcmd

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuihairu/labcatalog/internal/events"
	"github.com/cuihairu/labcatalog/internal/events/worker"
)

// NewEventsTail returns `catalogctl events tail`.
func NewEventsTail(o *Options) *cobra.Command {
	var (
		group, consumer string
		report          time.Duration
	)
	cmd := &cobra.Command{
		Use:   "tail",
		Short: "Print catalog change events from the configured redis or kafka backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			v, l, err := o.load()
			if err != nil {
				return err
			}
			ec := eventsConfig(v)
			enc := json.NewEncoder(cmd.OutOrStdout())
			w, err := worker.New(worker.Options{
				Type:     ec.Type,
				RedisURL: ec.RedisURL,
				Stream:   ec.Stream,
				Group:    group,
				Consumer: consumer,
				Brokers:  ec.Brokers,
				Topic:    ec.Topic,
				Report:   report,
			}, func(_ context.Context, evt events.Event) error {
				return enc.Encode(evt)
			}, l)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			l.Info("tailing catalog events", "backend", ec.Type)
			if err := w.Run(ctx); err != nil {
				return err
			}
			for _, c := range w.Summary() {
				l.Info("catalog events", "type", c.Type, "count", c.Count)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&group, "group", "catalog-tail", "consumer group")
	cmd.Flags().StringVar(&consumer, "consumer", "", "consumer name (default: generated)")
	cmd.Flags().DurationVar(&report, "report", time.Minute, "tally log interval; 0 disables")
	parent := &cobra.Command{Use: "events", Short: "Catalog change events"}
	parent.AddCommand(cmd)
	return parent
}
