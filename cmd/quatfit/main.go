// Command quatfit fits unit quaternions to rotation matrices and exposes the
// small fixed-size kernels behind the fit.
//
// Usage:
//
//	quatfit fit [flags] [-- m00 m01 m02 m10 m11 m12 m20 m21 m22]
//	quatfit invert [flags] -- m00 m01 ...
//	quatfit spectrum [flags] [-- m00 ... m22]
//
// Matrices are row-major. Pass them as positional arguments after "--" or as
// a comma-separated --m list; --axis with --angle builds a rotation. The FIT
// column is the dominant eigenvalue of the K-matrix: 1 for an exact rotation.
// A small spectral gap between the first two K eigenvalues means the fitted
// orientation is poorly determined.
//
// Examples:
//
//	quatfit fit -- 0 -1 0 1 0 0 0 0 1
//	quatfit fit --axis 0,0,1 --angle 90
//	quatfit fit --m 1.01,0.02,-0.01,0,0.98,0.03,0.01,-0.02,1 --precise
//	quatfit invert -- 2 0 0 4
//	quatfit spectrum --axis 1,1,0 --angle 30
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func makeQuatfitCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "quatfit [command] (flags)",
		Short: "quatfit fits unit quaternions to (possibly noisy) rotation matrices.",
		Long: `quatfit fits unit quaternions to (possibly noisy) rotation matrices.

The fit is the dominant eigenvector of the symmetric 4x4 K-matrix built
from the rotation candidate. The same closed-form kernels can invert 2x2,
3x3 and 4x4 matrices and print the full K spectrum.
`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	command.AddCommand(makeFitCommand())
	command.AddCommand(makeInvertCommand())
	command.AddCommand(makeSpectrumCommand())

	return command
}

func main() {
	cmd := makeQuatfitCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quatfit: %v\n", err)
		os.Exit(1)
	}
}
