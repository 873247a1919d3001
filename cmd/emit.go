package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/kilianp07/plugkit/config"
	"github.com/kilianp07/plugkit/core/model"
	coresink "github.com/kilianp07/plugkit/core/sink"
	"github.com/kilianp07/plugkit/infra/logger"
)

var emitName string

var emitCmd = &cobra.Command{
	Use:   "emit",
	Short: "Record a single test event through the configured sinks",
	RunE:  emit,
}

func init() {
	rootCmd.AddCommand(emitCmd)
	emitCmd.Flags().StringVar(&emitName, "name", "ping", "event name")
}

func emit(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	snk, err := coresink.NewSink(cfg.Pipeline.Sinks)
	if err != nil {
		return fmt.Errorf("sinks: %w", err)
	}
	defer func() {
		if c, ok := snk.(io.Closer); ok {
			if err := c.Close(); err != nil {
				logger.New("emit").Errorf("sink close: %v", err)
			}
		}
	}()
	ev := model.NewEvent(emitName, nil)
	if err := snk.Record(ev); err != nil {
		return fmt.Errorf("record: %w", err)
	}
	cmd.Printf("recorded event %s (%s)\n", ev.Name, ev.ID)
	return nil
}
