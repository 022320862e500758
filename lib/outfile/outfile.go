// Package outfile follows a hashcat outfile and parses its lines according
// to the --outfile-format in effect.
package outfile

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/nxadm/tail"
	"github.com/unclesp1d3r/hashcatgui/appstate"
)

// Outfile format field numbers, as accepted by --outfile-format.
const (
	FieldHash         = 1
	FieldPlain        = 2
	FieldHexPlain     = 3
	FieldCrackPos     = 4
	FieldTimestampAbs = 5
	FieldTimestampRel = 6
)

const (
	separator      = ":"
	hexPlainPrefix = "$HEX["
	hexPlainSuffix = "]"
	minFormatField = FieldHash
	maxFormatField = FieldTimestampRel
)

var (
	// ErrMalformedLine is returned when a line has fewer fields than the format requires.
	ErrMalformedLine = errors.New("malformed outfile line")
	// ErrInvalidFormat is returned for format lists naming unknown fields.
	ErrInvalidFormat = errors.New("invalid outfile format")
)

// Result is one parsed outfile line. Fields not present in the format are zero.
type Result struct {
	Hash      string
	Plain     string
	HexPlain  string
	CrackPos  int64
	Timestamp time.Time
	Raw       string
}

// normalizeFormat returns the format fields in the order hashcat writes them.
func normalizeFormat(format []int) ([]int, error) {
	fields := slices.Clone(format)
	slices.Sort(fields)
	fields = slices.Compact(fields)

	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFormat)
	}

	for _, field := range fields {
		if field < minFormatField || field > maxFormatField {
			return nil, fmt.Errorf("%w: field %d", ErrInvalidFormat, field)
		}
	}

	return fields, nil
}

// ParseLine splits a line written with the given outfile format. Trailing
// fields are taken from the right so that a salted hash may contain the
// separator; plains containing it are written by hashcat as $HEX[...].
func ParseLine(line string, format []int) (Result, error) {
	fields, err := normalizeFormat(format)
	if err != nil {
		return Result{}, err
	}

	res := Result{Raw: line}
	rest := line

	for i := len(fields) - 1; i >= 0; i-- {
		value := rest
		if i > 0 {
			idx := strings.LastIndex(rest, separator)
			if idx < 0 {
				return Result{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
			}
			value, rest = rest[idx+len(separator):], rest[:idx]
		}

		if err := res.set(fields[i], value); err != nil {
			return Result{}, fmt.Errorf("%w: %q: %w", ErrMalformedLine, line, err)
		}
	}

	return res, nil
}

func (r *Result) set(field int, value string) error {
	switch field {
	case FieldHash:
		r.Hash = value
	case FieldPlain:
		plain, err := decodePlain(value)
		if err != nil {
			return err
		}
		r.Plain = plain
	case FieldHexPlain:
		plain, err := hex.DecodeString(value)
		if err != nil {
			return fmt.Errorf("hex plain: %w", err)
		}
		r.HexPlain = value
		if r.Plain == "" {
			r.Plain = string(plain)
		}
	case FieldCrackPos:
		pos, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("crack position: %w", err)
		}
		r.CrackPos = pos
	case FieldTimestampAbs, FieldTimestampRel:
		ts, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		r.Timestamp = time.Unix(ts, 0)
	}

	return nil
}

// decodePlain unwraps hashcat's $HEX[...] encoding of plains that cannot be
// written verbatim.
func decodePlain(value string) (string, error) {
	if !strings.HasPrefix(value, hexPlainPrefix) || !strings.HasSuffix(value, hexPlainSuffix) {
		return value, nil
	}

	bs, err := hex.DecodeString(value[len(hexPlainPrefix) : len(value)-len(hexPlainSuffix)])
	if err != nil {
		return "", fmt.Errorf("hex-encoded plain: %w", err)
	}

	return string(bs), nil
}

// Options control how Follow reads the outfile.
type Options struct {
	Format  []int // Format is the --outfile-format the file is written with
	FromEnd bool  // FromEnd skips lines already in the file
	Poll    bool  // Poll uses polling instead of filesystem notifications
}

// Follow tails path until ctx is done, calling handle for every parsed line.
// The file does not need to exist yet. Unparseable lines are logged and skipped.
func Follow(ctx context.Context, path string, opts Options, handle func(Result)) error {
	if _, err := normalizeFormat(opts.Format); err != nil {
		return err
	}

	cfg := tail.Config{
		Follow:    true,
		ReOpen:    true,
		MustExist: false,
		Poll:      opts.Poll,
		Logger:    appstate.Logger.StandardLog(),
	}
	if opts.FromEnd {
		cfg.Location = &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd}
	}

	tailer, err := tail.TailFile(path, cfg)
	if err != nil {
		return fmt.Errorf("couldn't tail outfile %q: %w", path, err)
	}
	defer tailer.Cleanup()

	for {
		select {
		case <-ctx.Done():
			if err := tailer.Stop(); err != nil {
				appstate.Logger.Debug("Tailer stopped with error", "error", err)
			}

			return nil
		case line, ok := <-tailer.Lines:
			if !ok {
				return tailer.Err()
			}

			if line.Err != nil {
				appstate.Logger.Warn("Error reading outfile", "error", line.Err, "path", path)

				continue
			}

			if strings.TrimSpace(line.Text) == "" {
				continue
			}

			res, err := ParseLine(strings.TrimRight(line.Text, "\r"), opts.Format)
			if err != nil {
				appstate.Logger.Error("unexpected line contents", "line", line.Text, "error", err)

				continue
			}

			handle(res)
		}
	}
}
