package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/norman-ai/utils"
)

// readHeader returns up to headerSize leading bytes of the file at path.
func readHeader(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer utils.CloseWithLog(file, nil, "sniffed file")

	header := make([]byte, headerSize)
	n, err := io.ReadFull(file, header)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return header[:n], nil
}

// Size determines the size in bytes of a file-like value. Supported are
// *os.File, in-memory byte buffers and readers, and any io.Seeker (whose
// position is restored).
func Size(v any) (int64, error) {
	switch f := v.(type) {
	case *os.File:
		info, err := f.Stat()
		if err != nil {
			return 0, utils.NewIOError("fileutil.Size", fmt.Errorf("stat: %w", err))
		}
		return info.Size(), nil

	case *bytes.Buffer:
		return int64(f.Len()), nil

	case *bytes.Reader:
		return f.Size(), nil

	case io.Seeker:
		current, err := f.Seek(0, io.SeekCurrent)
		if err != nil {
			return 0, utils.NewIOError("fileutil.Size", err)
		}
		end, err := f.Seek(0, io.SeekEnd)
		if err != nil {
			return 0, utils.NewIOError("fileutil.Size", err)
		}
		if _, err := f.Seek(current, io.SeekStart); err != nil {
			return 0, utils.NewIOError("fileutil.Size", err)
		}
		return end, nil
	}

	return 0, utils.NewUnsupportedError("fileutil.Size", utils.ErrUnsupportedValue).
		WithContext(map[string]any{"type": fmt.Sprintf("%T", v)})
}
