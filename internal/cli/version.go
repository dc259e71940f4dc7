package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// version is set at build time with
// -ldflags "-X github.com/jakoblorz/go-mcpc/internal/cli.version=v1.2.3"
var version = "dev"

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the mcpc version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "mcpc %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
		},
	}
}
