package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAreasCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "areas",
		Short: "List the areas encounters can be generated in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range a.provider.Catalog.AreaNames() {
				area, err := a.provider.Catalog.Area(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s (%d species)\n", area.Name, len(area.Species))
			}
			return nil
		},
	}
}
