package app

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
)

// maxBodySize caps how much of an upstream body is buffered.
const maxBodySize = 4 << 20

func Read(reader io.ReadCloser) ([]byte, error) {
	defer func() {
		if err := reader.Close(); err != nil {
			slog.Error(fmt.Sprintf("Error occured: %s", err.Error()))
		}
	}()

	content, err := io.ReadAll(io.LimitReader(reader, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	return content, nil
}

func ReadJSON[T any](content []byte) (*T, error) {
	var t T
	if err := json.Unmarshal(content, &t); err != nil {
		return nil, fmt.Errorf("decode %T: %w", t, err)
	}

	return &t, nil
}
