package macos

import (
	"fmt"
	"io"
	"os"

	"github.com/micromdm/plist"
)

// DecodePlistFile reads the property list at path into v, handling both the
// XML and binary encodings.
func DecodePlistFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	// Binary plists start with the magic bytes "bplist00".
	header := make([]byte, 8)
	if _, err := io.ReadFull(f, header); err != nil {
		return fmt.Errorf("error reading plist header: %w", err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("error seeking to beginning of file: %w", err)
	}

	if string(header) == "bplist00" {
		if err := plist.NewBinaryDecoder(f).Decode(v); err != nil {
			return fmt.Errorf("error decoding binary plist: %w", err)
		}
		return nil
	}

	if err := plist.NewXMLDecoder(f).Decode(v); err != nil {
		return fmt.Errorf("error decoding XML plist: %w", err)
	}
	return nil
}
