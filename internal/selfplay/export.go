package selfplay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// schemaVersion is stored in the file metadata.
const schemaVersion = "stackduel_selfplay_v1"

// WriteParquet writes results to outPath. The file is written next to the
// target and renamed into place, so readers never see a partial file.
func WriteParquet(outPath string, results []Result) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("selfplay: create output dir: %w", err)
	}

	tmpPath := outPath + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, results,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schemaVersion),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("selfplay: write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("selfplay: rename parquet: %w", err)
	}
	return nil
}

// ReadParquet loads results written by WriteParquet.
func ReadParquet(path string) ([]Result, error) {
	rows, err := parquet.ReadFile[Result](path)
	if err != nil {
		return nil, fmt.Errorf("selfplay: read parquet: %w", err)
	}
	return rows, nil
}
