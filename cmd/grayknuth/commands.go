package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/grayknuth/codec"
	"github.com/katalvlaran/grayknuth/length"
)

func newEncodeCmd(a *app) *cobra.Command {
	var inPath, outPath string
	cmd := &cobra.Command{
		Use:   "encode [bits]",
		Short: "Encode a bit string into its balanced form",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		in, err := a.readInput(cmd, args, inPath)
		if err != nil {
			return err
		}
		enc, err := a.codec.Encode(in)
		if err != nil {
			return err
		}

		return a.writeOutput(cmd, enc, outPath)
	})
	cmd.Flags().StringVar(&inPath, "in", "", "read the payload from this file")
	cmd.Flags().StringVar(&outPath, "out", "", "write the encoding to this file")

	return cmd
}

// decodeFlags are shared by decode and inspect.
type decodeFlags struct {
	length int
	strict bool
}

func (f *decodeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.length, "length", 0, "expected payload length (derived from the encoding when unset)")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "reject encodings that are not balanced")
}

func (f *decodeFlags) options(cmd *cobra.Command, a *app) ([]codec.DecodeOption, error) {
	var opts []codec.DecodeOption
	if cmd.Flags().Changed("length") {
		if f.length < 0 {
			return nil, fmt.Errorf("--length must be non-negative, got %d", f.length)
		}
		opts = append(opts, codec.WithDecodedLength(f.length))
	}
	if f.strict || a.cfg.Codec.Strict {
		opts = append(opts, codec.WithStrict())
	}

	return opts, nil
}

func newDecodeCmd(a *app) *cobra.Command {
	var (
		inPath, outPath string
		df              decodeFlags
	)
	cmd := &cobra.Command{
		Use:   "decode [bits]",
		Short: "Recover the payload from an encoding",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		opts, err := df.options(cmd, a)
		if err != nil {
			return err
		}
		enc, err := a.readInput(cmd, args, inPath)
		if err != nil {
			return err
		}
		out, err := a.codec.Decode(enc, opts...)
		if err != nil {
			return err
		}

		return a.writeOutput(cmd, out, outPath)
	})
	cmd.Flags().StringVar(&inPath, "in", "", "read the encoding from this file")
	cmd.Flags().StringVar(&outPath, "out", "", "write the payload to this file")
	df.register(cmd)

	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var (
		inPath string
		df     decodeFlags
	)
	cmd := &cobra.Command{
		Use:   "inspect [bits]",
		Short: "Show the fields of an encoding",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		opts, err := df.options(cmd, a)
		if err != nil {
			return err
		}
		enc, err := a.readInput(cmd, args, inPath)
		if err != nil {
			return err
		}
		f, err := a.codec.Inspect(enc, opts...)
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "data_length: %d\n", f.DataLength)
		fmt.Fprintf(w, "width:       %d\n", f.IndexField.Len())
		fmt.Fprintf(w, "step:        %d\n", f.Step)
		fmt.Fprintf(w, "prefix:      %s\n", f.Prefix)
		fmt.Fprintf(w, "index:       %s\n", f.IndexField)
		fmt.Fprintf(w, "balance:     %d\n", f.BalanceBit)
		fmt.Fprintf(w, "imbalance:   %d\n", enc.Imbalance())
		_, err = fmt.Fprintf(w, "payload:     %s\n", f.Payload())

		return err
	})
	cmd.Flags().StringVar(&inPath, "in", "", "read the encoding from this file")
	df.register(cmd)

	return cmd
}

func newLengthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "length",
		Short: "Convert between payload and encoded lengths",
	}

	encoded := &cobra.Command{
		Use:   "encoded <n>",
		Short: "Encoded length for an n-bit payload",
		Args:  cobra.ExactArgs(1),
	}
	encoded.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[0], err)
		}
		if n < 0 {
			return fmt.Errorf("length must be non-negative, got %d", n)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), length.Encoded(n))

		return err
	})

	decoded := &cobra.Command{
		Use:   "decoded <m>",
		Short: "Payload length for an m-bit encoding",
		Args:  cobra.ExactArgs(1),
	}
	decoded.RunE = a.run(func(cmd *cobra.Command, args []string) error {
		m, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid length %q: %w", args[0], err)
		}
		n, err := length.Decoded(m)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), n)

		return err
	})

	cmd.AddCommand(encoded, decoded)

	return cmd
}
