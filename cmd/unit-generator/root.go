package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix scopes the environment variables the tool honors, so
// UNITGEN_STRICT=1 is read as the strict flag.
const envPrefix = "UNITGEN"

// configName is the optional per-project config file, .unitgen.yaml.
const configName = ".unitgen"

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unit-generator",
		Short: "Generate strongly typed unit conversions from YAML catalogs",
		Long: `unit-generator turns YAML unit catalogs into Go types with exact
conversion methods. Each catalog declares families of units over a shared
payload kind, scaled and formula relations against a root unit, and the
capabilities the generated types expose.`,
		SilenceUsage: true,
	}

	cobra.OnInitialize(initConfig)

	bindRootFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newGenCmd(out, errOut),
		newCheckCmd(out, errOut),
		newTableCmd(out),
		newStubCmd(out),
	)

	return cmd
}

// bindRootFlags declares the flags every subcommand honors. Each flag is
// mirrored into viper, so the config file and the environment can set it too.
func bindRootFlags(fs *pflag.FlagSet) {
	fs.Bool("strict", false, "treat resolution warnings as errors")
	_ = viper.BindPFlag("strict", fs.Lookup("strict"))
}

// initConfig wires the optional config file and the environment into viper.
// Precedence is flag, then environment, then config file, then default.
func initConfig() {
	viper.SetConfigName(configName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintln(os.Stderr, "unit-generator: reading config:", err)
		}
	}
}
