package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/modelbase-go/modelbase/pkg/config"
)

// configWatchCmd represents the config watch command
var configWatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the config file and print the config on change",
	Long: `Watch the config file and reload the configuration when it changes.

Each reload prints the effective attributes and their sources, the same
output as "modelctl config show".

Example:
  modelctl config watch`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch configuration: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configCmd.AddCommand(configWatchCmd)
}

func watchConfig() error {
	cfg := config.Get()
	fmt.Printf("Watching %s for changes\n", cfg.ConfigFilePath())
	fmt.Print(cfg.FormatText())

	stop, err := config.Watch(func(fresh *config.Config) {
		fmt.Printf("[%s] Config reloaded\n", time.Now().Format(time.RFC3339))
		fmt.Print(fresh.FormatText())
	})
	if err != nil {
		return err
	}
	defer func() { _ = stop() }()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	return nil
}
