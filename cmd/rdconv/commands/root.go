package commands

import (
	"github.com/spf13/cobra"

	ratadie "github.com/complex-gh/ratadie_go"
)

var (
	configPath string
	variant    string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "rdconv",
		Short: "Convert between Rata Die day counts and Gregorian dates",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			name := variant
			if name == "" && configPath != "" {
				cfg, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				name = cfg.Variant
			}
			if name == "" {
				return nil
			}
			return ratadie.UseVariant(name)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file naming the default variant")
	root.PersistentFlags().StringVarP(&variant, "variant", "v", "", "codec variant (see 'variants')")

	root.AddCommand(toDateCmd(), toOrdinalCmd(), toRataDieCmd(), leapCmd(), variantsCmd())
	return root.Execute()
}
