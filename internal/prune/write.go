package prune

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/simonhull/firebird-suite/fledge/generator"
)

// writeFileAtomicOp overwrites a file through a temp-file-and-rename so a
// crash mid-write never leaves a truncated schema for downstream
// consumers. Unlike fledge's WriteFileOp it never treats an existing file
// as a conflict: the output path is replaced unconditionally on every run.
type writeFileAtomicOp struct {
	Path    string
	Content []byte
	Mode    fs.FileMode
}

// NewWriteOp returns an Operation that atomically replaces path with
// content, for execution through generator.Execute.
func NewWriteOp(path string, content []byte) generator.Operation {
	return &writeFileAtomicOp{Path: path, Content: content, Mode: 0644}
}

func (op *writeFileAtomicOp) Validate(ctx context.Context, force bool) error {
	dir := filepath.Dir(op.Path)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("cannot create directory %s: %w", dir, err)
	}

	if op.Content == nil {
		return fmt.Errorf("content is nil for file: %s", op.Path)
	}

	return nil
}

func (op *writeFileAtomicOp) Execute(ctx context.Context) error {
	dir := filepath.Dir(op.Path)

	tmp, err := os.CreateTemp(dir, filepath.Base(op.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(op.Content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing %s: %w", tmpPath, err)
	}
	if err := tmp.Chmod(op.Mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("setting mode on %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing %s: %w", tmpPath, err)
	}

	if err := os.Rename(tmpPath, op.Path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing %s: %w", op.Path, err)
	}

	return nil
}

func (op *writeFileAtomicOp) Description() string {
	return fmt.Sprintf("Write %s (%d bytes)", op.Path, len(op.Content))
}
