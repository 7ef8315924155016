package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/xform/eigen"
	"github.com/katalvlaran/xform/kernel"
	"github.com/katalvlaran/xform/matrix"
	"github.com/katalvlaran/xform/quaternion"
)

// inputConfig holds the flags every subcommand uses to obtain its matrix.
type inputConfig struct {
	flat   string
	axis   string
	angle  float64
	strict bool
}

func (c *inputConfig) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&c.flat, "m", c.flat, "row-major matrix as comma-separated numbers")
	cmd.Flags().StringVar(&c.axis, "axis", c.axis, "rotation axis as x,y,z (used with --angle)")
	cmd.Flags().Float64Var(&c.angle, "angle", c.angle, "rotation angle in degrees (used with --axis)")
	cmd.Flags().BoolVar(&c.strict, "strict", c.strict, "reject NaN/Inf input")
}

func (c *inputConfig) options() []matrix.Option {
	if c.strict {
		return []matrix.Option{matrix.WithValidateNaNInf()}
	}

	return nil
}

func makeFitCommand() *cobra.Command {
	var (
		in      inputConfig
		precise bool
	)
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		src, err := readMatrix(in.flat, in.axis, in.angle, args)
		if err != nil {
			return err
		}

		return runFit(cmd.OutOrStdout(), src, precise, in.options()...)
	}
	cmd := &cobra.Command{
		Use:   "fit [-- m00 ... m22]",
		Short: "Print the unit quaternion best fitting a 3x3 or homogeneous 4x4 matrix",
		Args:  cobra.RangeArgs(0, matrix.Len4),
		RunE:  runCmdFunc,
	}
	in.register(cmd)
	cmd.Flags().BoolVar(&precise, "precise", precise, "also print the trace-method result")

	return cmd
}

func runFit(w io.Writer, src []float64, precise bool, opts ...matrix.Option) error {
	q := make([]float64, 4)
	if err := kernel.QuaternionFromMatrix(q, src, opts...); err != nil {
		return fmt.Errorf("%w (status: %s)", err, kernel.StatusOf(err))
	}

	r := rotationOf(src)
	_, lambda, err := quaternion.FromRotationError(r, opts...)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "METHOD\tW\tX\tY\tZ\tFIT")
	fmt.Fprintf(tw, "eigen\t%.12f\t%.12f\t%.12f\t%.12f\t%.12f\n", q[0], q[1], q[2], q[3], lambda)
	if precise {
		p := quaternion.FromRotationPrecise(r)
		fmt.Fprintf(tw, "trace\t%.12f\t%.12f\t%.12f\t%.12f\t-\n", p.W(), p.X(), p.Y(), p.Z())
	}
	if err = tw.Flush(); err != nil {
		return err
	}

	axis, angle := quaternion.Quaternion{q[0], q[1], q[2], q[3]}.AxisAngle()
	_, err = fmt.Fprintf(w, "axis (%.6f, %.6f, %.6f), angle %.6f°\n", axis.X, axis.Y, axis.Z, angle.Degrees())

	return err
}

func makeInvertCommand() *cobra.Command {
	var in inputConfig
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		src, err := readMatrix(in.flat, in.axis, in.angle, args)
		if err != nil {
			return err
		}

		return runInvert(cmd.OutOrStdout(), src, in.options()...)
	}
	cmd := &cobra.Command{
		Use:   "invert [-- entries...]",
		Short: "Invert a 2x2, 3x3 or 4x4 matrix given as 4, 9 or 16 row-major numbers",
		Args:  cobra.RangeArgs(0, matrix.Len4),
		RunE:  runCmdFunc,
	}
	in.register(cmd)

	return cmd
}

func runInvert(w io.Writer, src []float64, opts ...matrix.Option) error {
	dst := make([]float64, len(src))
	if err := kernel.Invert(dst, src, opts...); err != nil {
		return fmt.Errorf("%w (status: %s)", err, kernel.StatusOf(err))
	}

	n := orderOf(len(dst))
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for i := 0; i < n; i++ {
		row := make([]string, n)
		for j := range row {
			row[j] = strconv.FormatFloat(dst[i*n+j]+0, 'g', 12, 64) // +0 folds -0 into 0
		}
		fmt.Fprintln(tw, strings.Join(row, "\t")+"\t")
	}

	return tw.Flush()
}

func makeSpectrumCommand() *cobra.Command {
	var in inputConfig
	runCmdFunc := func(cmd *cobra.Command, args []string) error {
		src, err := readMatrix(in.flat, in.axis, in.angle, args)
		if err != nil {
			return err
		}

		return runSpectrum(cmd.OutOrStdout(), src, in.options()...)
	}
	cmd := &cobra.Command{
		Use:   "spectrum [-- m00 ... m22]",
		Short: "Print all four eigenvalues of the K-matrix of a rotation candidate",
		Args:  cobra.RangeArgs(0, matrix.Len4),
		RunE:  runCmdFunc,
	}
	in.register(cmd)

	return cmd
}

func runSpectrum(w io.Writer, src []float64, opts ...matrix.Option) error {
	if len(src) != matrix.Len3 && len(src) != matrix.Len4 {
		return fmt.Errorf("len %d not in {9, 16}: %w", len(src), matrix.ErrDimensionMismatch)
	}
	if matrix.NewOptions(opts...).ValidateNaNInf() {
		if err := matrix.ValidateFinite(src); err != nil {
			return err
		}
	}

	spec, err := eigen.Jacobi(quaternion.KMatrix(rotationOf(src)), matrix.JacobiTolerance, matrix.JacobiMaxRotations)
	if err != nil {
		return err
	}
	v := spec.Values
	_, err = fmt.Fprintf(w, "K spectrum %.12f %.12f %.12f %.12f (gap %.3g)\n", v[0], v[1], v[2], v[3], v[0]-v[1])

	return err
}

// readMatrix resolves the input matrix from --m, --axis/--angle or positional
// arguments, in that order of precedence.
func readMatrix(flat, axis string, angleDeg float64, args []string) ([]float64, error) {
	switch {
	case flat != "":
		return parseFloats(strings.Split(flat, ","))
	case axis != "":
		v, err := parseFloats(strings.Split(axis, ","))
		if err != nil {
			return nil, err
		}
		if len(v) != 3 {
			return nil, fmt.Errorf("--axis needs 3 components, got %d", len(v))
		}
		r := matrix.RotationAbout(r3.Vector{X: v[0], Y: v[1], Z: v[2]}, s1.Angle(angleDeg)*s1.Degree)
		return r[:], nil
	case len(args) > 0:
		return parseFloats(args)
	default:
		return nil, fmt.Errorf("no matrix given (use --m, --axis/--angle or positional numbers)")
	}
}

func parseFloats(fields []string) ([]float64, error) {
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// rotationOf returns the 3×3 block of a validated 9- or 16-entry buffer.
func rotationOf(src []float64) matrix.Mat3 {
	if len(src) == matrix.Len4 {
		var m matrix.Mat4
		copy(m[:], src)
		return matrix.UpperLeft3(m)
	}
	var r matrix.Mat3
	copy(r[:], src)

	return r
}

// orderOf maps a flat length 4, 9 or 16 to the matrix order.
func orderOf(n int) int {
	switch n {
	case matrix.Len2:
		return 2
	case matrix.Len3:
		return 3
	default:
		return 4
	}
}
