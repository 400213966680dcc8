package main

import (
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"chirp/internal/tone"
)

// The offline codec commands operate on headerless signed 16-bit
// little-endian mono PCM, the format produced by
// `ffmpeg -f s16le -ac 1 -ar <rate>`.

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "decode FILE",
		Short: "Decode an instruction from a raw PCM segment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			samples, err := readPCM(args[0])
			if err != nil {
				return err
			}

			seg := tone.Segment{
				Channels:   [][]float64{samples},
				SampleRate: cfg.Decode.SampleRate,
			}
			text, err := tone.Decode(seg, tone.Options{
				NumBands:      cfg.Decode.NumBands,
				PeakThreshold: cfg.Decode.PeakThreshold,
			})
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newEncodeCommand(ctx *commandContext) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "encode INSTRUCTION...",
		Short: "Synthesize a raw PCM segment carrying an instruction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(output) == "" {
				return fmt.Errorf("--output is required")
			}
			cfg := ctx.configValue()
			text := strings.Join(args, " ")

			samples, err := tone.Encode(text, cfg.Decode.SampleRate, cfg.SegmentDuration(), tone.Options{
				NumBands:      cfg.Decode.NumBands,
				PeakThreshold: cfg.Decode.PeakThreshold,
			})
			if err != nil {
				return fmt.Errorf("encode %q: %w", text, err)
			}
			if err := writePCM(output, samples); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d samples to %s\n", len(samples), output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file for the PCM samples")
	return cmd
}

func readPCM(path string) ([]float64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read segment: %w", err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("read segment: %s has an odd byte count, expected s16le samples", path)
	}
	samples := make([]float64, len(data)/2)
	for i := range samples {
		raw := int16(binary.LittleEndian.Uint16(data[i*2:]))
		samples[i] = float64(raw) / 32768
	}
	return samples, nil
}

func writePCM(path string, samples []float64) error {
	data := make([]byte, len(samples)*2)
	for i, sample := range samples {
		scaled := math.Round(sample * 32767)
		if scaled > 32767 {
			scaled = 32767
		} else if scaled < -32768 {
			scaled = -32768
		}
		binary.LittleEndian.PutUint16(data[i*2:], uint16(int16(scaled)))
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write segment: %w", err)
	}
	return nil
}
