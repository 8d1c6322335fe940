package encodeservice

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FileResult describes a completed EncodeFile call.
type FileResult struct {
	InputPath    string
	OutputPath   string
	BytesRead    int64
	BytesWritten int64
}

// EncodeFile streams the contents of inputPath through the escaped-hex
// encoder and writes the text to the derived output path (see
// DeriveOutputPath), replacing any existing file there.
//
// The input is opened before anything is written, so a missing input fails
// with ErrInputNotFound and leaves the output path untouched. Output goes to a
// temporary file in the destination directory and is renamed into place only
// once fully written; on failure the temporary file is removed.
func EncodeFile(ctx context.Context, inputPath string, opts ...FileOption) (*FileResult, error) {
	cfg := &fileConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	log := cfg.log()

	outputPath := cfg.outputPath
	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath, cfg.suffix)
	}

	in, err := openInput(inputPath)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	log.Debug("encoding file", "input", inputPath, "output", outputPath)

	src := &sourceReader{ctx: ctx, r: in}
	var r io.Reader = src
	if cfg.echo != nil {
		r = io.TeeReader(src, cfg.echo)
	}

	tmpPath := tempPathFor(outputPath)
	out, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, outputError("create", outputPath, err)
	}

	// Removes the temporary file unless it has been renamed into place.
	committed := false
	defer func() {
		if !committed {
			out.Close()
			if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
				log.Warn("failed to remove partial output", "path", tmpPath, "error", rmErr)
			}
		}
	}()

	bw := bufio.NewWriterSize(out, cfg.getBufferSize())
	enc := NewEscapedHexEncoder(bw)

	n, err := io.CopyBuffer(enc, r, make([]byte, cfg.getBufferSize()))
	if err != nil {
		switch {
		case src.err != nil:
			return nil, inputError(ErrInputUnreadable, "read", inputPath, src.err)
		case ctx.Err() != nil:
			return nil, fmt.Errorf("encode %s: %w", inputPath, ctx.Err())
		default:
			return nil, outputError("write", outputPath, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return nil, outputError("write", outputPath, err)
	}
	if err := out.Sync(); err != nil {
		return nil, outputError("sync", outputPath, err)
	}
	if err := out.Close(); err != nil {
		return nil, outputError("close", outputPath, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		return nil, outputError("rename", outputPath, err)
	}
	committed = true

	res := &FileResult{
		InputPath:    inputPath,
		OutputPath:   outputPath,
		BytesRead:    n,
		BytesWritten: int64(EncodedLen(int(n))),
	}
	log.Debug("encoded file", "input", inputPath, "output", outputPath,
		"bytes_read", res.BytesRead, "bytes_written", res.BytesWritten)

	return res, nil
}

func openInput(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, inputError(ErrInputNotFound, "open", path, err)
		}
		return nil, inputError(ErrInputUnreadable, "open", path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, inputError(ErrInputUnreadable, "stat", path, err)
	}
	if info.IsDir() {
		f.Close()
		return nil, inputError(ErrInputUnreadable, "open", path, errors.New("is a directory"))
	}

	return f, nil
}

// tempPathFor returns a hidden sibling of path so the final rename stays on
// one filesystem.
func tempPathFor(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, "."+base+"."+uuid.NewString()+".tmp")
}

// sourceReader stops on context cancellation and remembers read failures so
// they can be told apart from write failures after io.Copy returns.
type sourceReader struct {
	ctx context.Context
	r   io.Reader
	err error
}

func (s *sourceReader) Read(p []byte) (int, error) {
	if err := s.ctx.Err(); err != nil {
		return 0, err
	}
	n, err := s.r.Read(p)
	if err != nil && err != io.EOF {
		s.err = err
	}
	return n, err
}
