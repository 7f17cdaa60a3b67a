// Package wordlist reads dictionaries of whitespace separated words into a trie.
package wordlist

import (
	"bufio"
	"io"
	"os"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	maxTokenSize = 1024 * 1024
	batchSize    = 512
)

// ErrUnknownEncoding is returned when a word list encoding name is not supported.
var ErrUnknownEncoding = errors.New("unknown encoding")

// Inserter receives the words read from a list.
type Inserter interface {
	Insert(words ...string)
}

type options struct {
	encoding string
	logger   zerolog.Logger
}

// Option configures Load and LoadFile.
type Option func(*options)

// WithEncoding sets the character encoding of the list. Supported names are
// utf-8 (the default), iso-8859-1 and windows-1252.
func WithEncoding(name string) Option {
	return func(o *options) { o.encoding = name }
}

// WithLogger sets the logger used to report progress.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// ValidateEncoding reports whether name is a supported encoding.
func ValidateEncoding(name string) error {
	_, err := decoder(name)
	return err
}

// decoder returns the decoder for name, or nil when the input is already UTF-8.
func decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "utf-8", "utf8":
		return nil, nil
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownEncoding, "%q", name)
	}
}

// Load inserts every word read from r into dst and returns how many were read.
// Words are passed on as read; normalising them is left to dst.
func Load(r io.Reader, dst Inserter, opts ...Option) (int, error) {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	dec, err := decoder(o.encoding)
	if err != nil {
		return 0, err
	}
	if dec != nil {
		r = dec.Reader(r)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	count := 0
	batch := make([]string, 0, batchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		dst.Insert(batch...)
		count += len(batch)
		batch = batch[:0]
	}
	for scanner.Scan() {
		batch = append(batch, scanner.Text())
		if len(batch) == batchSize {
			flush()
		}
	}
	flush()
	if err := scanner.Err(); err != nil {
		return count, errors.Wrapf(err, "reading word list after %d words", count)
	}
	o.logger.Debug().Int("words", count).Msg("Read word list")
	return count, nil
}

// LoadFile inserts every word of the file at path into dst.
func LoadFile(path string, dst Inserter, opts ...Option) (int, error) {
	o := options{logger: log.Logger}
	for _, opt := range opts {
		opt(&o)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrapf(err, "opening word list %s", path)
	}
	defer f.Close()

	start := time.Now()
	count, err := Load(f, dst, opts...)
	if err != nil {
		return count, errors.Wrapf(err, "loading word list %s", path)
	}
	o.logger.Info().
		Str("path", path).
		Int("words", count).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded word list")
	return count, nil
}
