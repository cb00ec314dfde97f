// Package transcript loads captured sdkmanager listings. Captures may be plain
// text, compressed (gz, xz, zstd, bz2, lz4, ...) or stored inside an archive.
package transcript

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"github.com/mholt/archives"
	"github.com/qt-creator/qt-creator-sub139/pkg/errors"
	"github.com/qt-creator/qt-creator-sub139/pkg/logger"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var errFound = stderrors.New("entry found")

// Options controls how a transcript is located inside an archive.
type Options struct {
	// Entry names the file to read from an archive. When empty the first
	// regular file is used.
	Entry string
}

// Load reads the transcript at path, or standard input for "-".
func Load(ctx context.Context, path string, opts Options) (string, error) {
	if path == "" {
		return "", errors.ErrEmptyTranscript
	}
	if path == Stdin {
		return Read(ctx, "", os.Stdin, opts)
	}

	file, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(errors.ErrTranscriptOpen, "%s: %v", path, err)
	}
	defer func() { _ = file.Close() }()

	return Read(ctx, path, file, opts)
}

// Read identifies the format of stream and returns its text. The name is only
// used as a format hint.
func Read(ctx context.Context, name string, stream io.Reader, opts Options) (string, error) {
	format, reader, err := archives.Identify(ctx, name, stream)
	if stderrors.Is(err, archives.NoMatch) {
		return readAll(reader)
	}
	if err != nil {
		return "", errors.Wrapf(errors.ErrTranscriptRead, "identify %s: %v", name, err)
	}
	logger.Debug("transcript format", logger.Fields{"name": name, "format": format.Extension()})

	switch f := format.(type) {
	case archives.CompressedArchive:
		if f.Extraction != nil {
			return readEntry(ctx, f, reader, opts.Entry)
		}
		if f.Compression != nil {
			return decompress(f.Compression, reader)
		}
	case archives.Extractor:
		return readEntry(ctx, f, reader, opts.Entry)
	case archives.Decompressor:
		return decompress(f, reader)
	}

	return readAll(reader)
}

func decompress(d archives.Decompressor, r io.Reader) (string, error) {
	rc, err := d.OpenReader(r)
	if err != nil {
		return "", errors.Wrapf(errors.ErrTranscriptRead, "decompress: %v", err)
	}
	defer func() { _ = rc.Close() }()
	return readAll(rc)
}

func readEntry(ctx context.Context, ex archives.Extractor, r io.Reader, entry string) (string, error) {
	var buf bytes.Buffer
	handler := func(_ context.Context, info archives.FileInfo) error {
		if info.IsDir() || !info.Mode().IsRegular() {
			return nil
		}
		if entry != "" && strings.TrimPrefix(info.NameInArchive, "./") != entry {
			return nil
		}
		f, err := info.Open()
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		if _, err := io.Copy(&buf, f); err != nil {
			return err
		}
		return errFound
	}

	err := ex.Extract(ctx, r, handler)
	if err != nil && !stderrors.Is(err, errFound) {
		return "", errors.Wrapf(errors.ErrTranscriptRead, "extract: %v", err)
	}
	if !stderrors.Is(err, errFound) {
		if entry == "" {
			return "", errors.Wrap(errors.ErrTranscriptRead, "archive contains no files")
		}
		return "", errors.Wrapf(errors.ErrTranscriptRead, "entry %s not found", entry)
	}
	return buf.String(), nil
}

func readAll(r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(errors.ErrTranscriptRead, err.Error())
	}
	return string(data), nil
}
