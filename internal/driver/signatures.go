package driver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"lumen/internal/naming"
)

// Current schema version - increment when SignatureFile changes shape.
const signatureSchema uint16 = 1

// SignatureExt is the extension of msgpack signature exports.
const SignatureExt = ".lsig"

// ErrSignatureSchema is returned for exports written by another schema.
var ErrSignatureSchema = errors.New("unsupported signature schema")

// SignatureFile is the exported form of a resolved program: the stamps of
// every name each module makes visible.
type SignatureFile struct {
	Schema  uint16                   `json:"schema" yaml:"schema" msgpack:"schema"`
	Package string                   `json:"package,omitempty" yaml:"package,omitempty" msgpack:"package,omitempty"`
	Modules []naming.ModuleSignature `json:"modules" yaml:"modules" msgpack:"modules"`
}

// SigFormat selects the encoding of a SignatureFile.
type SigFormat string

const (
	SigMsgpack SigFormat = "msgpack"
	SigYAML    SigFormat = "yaml"
	SigJSON    SigFormat = "json"
)

func ParseSigFormat(s string) (SigFormat, error) {
	switch f := SigFormat(strings.ToLower(s)); f {
	case SigMsgpack, SigYAML, SigJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown signature format %q (want msgpack, yaml or json)", s)
}

// Signatures builds the export of a successful run, or nil when naming
// did not complete.
func Signatures(res *Result) *SignatureFile {
	if res == nil || res.Naming == nil {
		return nil
	}
	sf := &SignatureFile{Schema: signatureSchema, Modules: res.Naming.Global.Export()}
	if m := res.Inputs.Manifest; m != nil {
		sf.Package = m.Config.Package.Name
	}
	return sf
}

// EncodeSignatures writes sf to w in the given format. Map keys are sorted
// in every format so exports are reproducible.
func EncodeSignatures(w io.Writer, format SigFormat, sf *SignatureFile) error {
	switch format {
	case SigMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetSortMapKeys(true)
		return enc.Encode(sf)
	case SigYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(sf); err != nil {
			return err
		}
		return enc.Close()
	case SigJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(sf)
	}
	return fmt.Errorf("unknown signature format %q", format)
}

// DecodeSignatures reads a SignatureFile in the given format and checks its
// schema.
func DecodeSignatures(r io.Reader, format SigFormat) (*SignatureFile, error) {
	var sf SignatureFile
	var err error
	switch format {
	case SigMsgpack:
		err = msgpack.NewDecoder(r).Decode(&sf)
	case SigYAML:
		err = yaml.NewDecoder(r).Decode(&sf)
	case SigJSON:
		err = json.NewDecoder(r).Decode(&sf)
	default:
		err = fmt.Errorf("unknown signature format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if sf.Schema != signatureSchema {
		return nil, fmt.Errorf("%w: %d", ErrSignatureSchema, sf.Schema)
	}
	return &sf, nil
}

// SigFormatForPath infers the format from a file extension; anything
// unknown is msgpack.
func SigFormatForPath(path string) SigFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return SigYAML
	case ".json":
		return SigJSON
	}
	return SigMsgpack
}

// WriteSignatures atomically replaces path with sf in the given format.
func WriteSignatures(path string, format SigFormat, sf *SignatureFile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck // gone after a successful rename

	if err := EncodeSignatures(f, format, sf); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// ReadSignatures loads an export written by WriteSignatures; the format
// follows the extension of path.
func ReadSignatures(path string) (*SignatureFile, error) {
	// #nosec G304 -- path is provided by the caller
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sf, err := DecodeSignatures(f, SigFormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sf, nil
}
