// Package report writes run reports as a text table, JSON, YAML or a stream of
// length-prefixed MessagePack frames.
package report

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/randomizedcoder/go-prodcons/internal/prodcons"
)

// Format selects an encoding.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// Formats lists all formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatMsgpack}

// ErrUnknownFormat is returned for a format name not in Formats.
var ErrUnknownFormat = errors.New("report: unknown format")

// maxFrame bounds a single decoded msgpack frame.
const maxFrame = 64 << 20

// ParseFormat maps a name to a Format. The empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatText, nil
	}
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Encode writes reports to w in the given format.
func Encode(w io.Writer, format Format, reports []*prodcons.Report) error {
	switch format {
	case FormatText, "":
		return encodeText(w, reports)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			return fmt.Errorf("report: yaml: %w", err)
		}
		return enc.Close()
	case FormatMsgpack:
		for _, r := range reports {
			if err := writeFrame(w, r); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, reports []*prodcons.Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "VARIANT\tBACKEND\tITEMS\tCONSUMED\tLOST\tDUP\tDROPPED\tIN_ORDER\tMAX_LEN\tCAP\tWAKEUPS\tPROD_WAITS\tCONS_WAITS\tDURATION\tCORRECT")
	for _, r := range reports {
		backend := r.Backend
		if backend == "" {
			backend = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%t\t%d\t%d\t%d\t%d\t%d\t%s\t%t\n",
			r.Variant, backend, r.Items, r.Consumed, r.Lost, r.Duplicates, r.Dropped,
			r.InOrder, r.MaxLen, r.Capacity, r.Queue.Wakeups,
			r.Queue.ProducerWaits, r.Queue.ConsumerWaits,
			r.Duration.Round(100*time.Microsecond), r.Correct())
	}
	return tw.Flush()
}

// writeFrame writes a 4-byte big-endian length followed by the msgpack body.
func writeFrame(w io.Writer, r *prodcons.Report) error {
	body, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal msgpack report: %w", err)
	}

	prefix := make([]byte, 4)
	binary.BigEndian.PutUint32(prefix, uint32(len(body)))
	if _, err := w.Write(prefix); err != nil {
		return fmt.Errorf("failed to write length prefix: %w", err)
	}
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("failed to write msgpack data: %w", err)
	}
	return nil
}

// DecodeMsgpack reads length-prefixed msgpack frames until EOF.
func DecodeMsgpack(r io.Reader) ([]*prodcons.Report, error) {
	var reports []*prodcons.Report
	prefix := make([]byte, 4)
	for {
		if _, err := io.ReadFull(r, prefix); err != nil {
			if errors.Is(err, io.EOF) {
				return reports, nil
			}
			return reports, fmt.Errorf("failed to read length prefix: %w", err)
		}

		n := binary.BigEndian.Uint32(prefix)
		if n > maxFrame {
			return reports, fmt.Errorf("report: frame of %d bytes exceeds limit", n)
		}
		body := make([]byte, n)
		if _, err := io.ReadFull(r, body); err != nil {
			return reports, fmt.Errorf("failed to read msgpack data: %w", err)
		}

		var rep prodcons.Report
		if err := msgpack.Unmarshal(body, &rep); err != nil {
			return reports, fmt.Errorf("failed to unmarshal msgpack report: %w", err)
		}
		reports = append(reports, &rep)
	}
}
