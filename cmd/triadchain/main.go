package main

import (
	"os"
	"time"

	"github.com/sasha-s/go-deadlock"
	"github.com/spf13/viper"
	"triadchain/triadchain"
	"triadchain/visualize"
)

func main() {
	deadlock.Opts.DisableLockOrderDetection = true
	deadlock.Opts.DeadlockTimeout = time.Second * 30

	// Settings live in a Viper configuration. With no config file and no
	// TRIADCHAIN_* variables every default matches a plain run.
	conf := viper.New()
	triadchain.InitConfig(conf)
	triadchain.SetConfig(conf)
	triadchain.LogSettings()

	if err := visualize.NewRenderer(os.Stdout).Render(triadchain.Depth()); err != nil {
		triadchain.LogCLI(err.Error(), 0)
	}
}
