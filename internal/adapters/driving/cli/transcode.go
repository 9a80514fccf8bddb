package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/gapi/internal/transcode"
)

var (
	transcodeKind string
	transcodeFile string
)

var transcodeCmd = &cobra.Command{
	Use:   "transcode",
	Short: "Convert single field values between wire and native form",
	Long: `Convert a single field value between its JSON wire form and its native form.

Kinds:
  timestamp  RFC 3339 time      <-> "2024-01-15T10:30:00.000Z"
  int64      decimal integer    <-> "9007199254740993"
  uint64     unsigned integer   <-> "18446744073709551615"
  bytes      raw bytes          <-> "3q2+7w=="
  duration   Go duration (1h5m) <-> "3900s"`,
}

var transcodeEncodeCmd = &cobra.Command{
	Use:   "encode [value]",
	Short: "Encode a native value into its wire form",
	Long: `Encode a native value into its wire form. For bytes the value is read
from --file, or from stdin when no value is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranscodeEncode,
}

var transcodeDecodeCmd = &cobra.Command{
	Use:   "decode [value]",
	Short: "Decode a wire value into its native form",
	Long: `Decode a wire value into its native form. Decoded bytes are written raw
to stdout, or to --file.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscodeDecode,
}

func init() {
	for _, c := range []*cobra.Command{transcodeEncodeCmd, transcodeDecodeCmd} {
		c.Flags().StringVarP(&transcodeKind, "kind", "k", "", "field kind: timestamp, int64, uint64, bytes, duration")
		c.Flags().StringVarP(&transcodeFile, "file", "f", "", "bytes input (encode) or output (decode) file")
		_ = c.MarkFlagRequired("kind")
		transcodeCmd.AddCommand(c)
	}
	rootCmd.AddCommand(transcodeCmd)
}

func runTranscodeEncode(cmd *cobra.Command, args []string) error {
	kind, err := transcode.ParseKind(transcodeKind)
	if err != nil {
		return err
	}

	if kind == transcode.KindBytes {
		data, err := readBytesInput(cmd, args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), transcode.EncodeBytes(data))
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("a value is required for kind %s", kind)
	}
	wire, err := encodeValue(kind, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), wire)
	return nil
}

func encodeValue(kind transcode.Kind, s string) (string, error) {
	switch kind {
	case transcode.KindTime:
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return "", fmt.Errorf("invalid timestamp %q: %w", s, err)
		}
		return transcode.FormatTime(t), nil
	case transcode.KindInt64:
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid int64 %q: %w", s, err)
		}
		return transcode.FormatInt64(n), nil
	case transcode.KindUint64:
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return "", fmt.Errorf("invalid uint64 %q: %w", s, err)
		}
		return transcode.FormatUint64(n), nil
	case transcode.KindDuration:
		d, err := time.ParseDuration(s)
		if err != nil {
			return "", fmt.Errorf("invalid duration %q: %w", s, err)
		}
		return transcode.FormatDuration(d), nil
	default:
		return "", fmt.Errorf("kind %s cannot be encoded from text", kind)
	}
}

func readBytesInput(cmd *cobra.Command, args []string) ([]byte, error) {
	switch {
	case transcodeFile != "":
		return os.ReadFile(transcodeFile)
	case len(args) == 1:
		return []byte(args[0]), nil
	default:
		return io.ReadAll(cmd.InOrStdin())
	}
}

func runTranscodeDecode(cmd *cobra.Command, args []string) error {
	kind, err := transcode.ParseKind(transcodeKind)
	if err != nil {
		return err
	}

	wire := args[0]
	switch kind {
	case transcode.KindTime:
		t, err := transcode.ParseTime(wire)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), t.UTC().Format(time.RFC3339Nano))
	case transcode.KindInt64:
		n, err := transcode.ParseInt64(wire)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
	case transcode.KindUint64:
		n, err := transcode.ParseUint64(wire)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
	case transcode.KindDuration:
		d, err := transcode.ParseDuration(wire)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), d.String())
	case transcode.KindBytes:
		data, err := transcode.DecodeBytes(wire)
		if err != nil {
			return err
		}
		if transcodeFile != "" {
			return os.WriteFile(transcodeFile, data, 0600)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	default:
		return fmt.Errorf("kind %s cannot be decoded to text", kind)
	}
	return nil
}
