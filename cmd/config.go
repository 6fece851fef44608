package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/classroom-sim/classroom-sim/sim"
)

// configCmd prints the default simulation configuration so operators can
// redirect it to a file and edit from there.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default simulation configuration YAML",
	Run: func(cmd *cobra.Command, args []string) {
		data, err := yaml.Marshal(sim.DefaultConfig())
		if err != nil {
			logrus.Fatalf("Failed to encode default config: %v", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
