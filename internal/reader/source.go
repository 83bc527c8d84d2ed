package reader

import (
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// LoadFile reads path, strips any UTF-8/UTF-16 byte-order mark, and
// normalizes the result to NFC so two source files that spell the same
// identifier with different combining-character sequences read as the same
// Symbol. slurp and load-file both go through this.
func LoadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeSource(raw)
}

// DecodeSource applies BOM stripping and NFC normalization to raw bytes
// already in memory — the same treatment LoadFile gives a file, usable
// directly by callers that already hold the bytes. The REPL calls this on
// every line it reads from stdin before handing it to ReadStr, so an
// interactive session gets the same decoding a script file gets.
func DecodeSource(raw []byte) (string, error) {
	bomDecoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	stripped, _, err := transform.Bytes(bomDecoder, raw)
	if err != nil {
		return "", err
	}
	normalized := norm.NFC.Bytes(stripped)
	return string(normalized), nil
}

