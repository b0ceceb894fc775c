package checkout

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data/postal.yaml
var embeddedDirectory embed.FS

// Address is what a postal code resolves to.
type Address struct {
	CEP      string `json:"cep" yaml:"cep"`
	Street   string `json:"street" yaml:"street"`
	District string `json:"district" yaml:"district"`
	City     string `json:"city" yaml:"city"`
	UF       string `json:"uf" yaml:"uf"`
}

// Directory resolves unmasked postal codes.
type Directory interface {
	Lookup(cep string) (Address, bool)
}

// DirectoryFunc adapts a function into a Directory.
type DirectoryFunc func(cep string) (Address, bool)

// Lookup implements Directory.
func (fn DirectoryFunc) Lookup(cep string) (Address, bool) {
	if fn == nil {
		return Address{}, false
	}
	return fn(cep)
}

// StaticDirectory is an in-memory Directory keyed by unmasked CEP.
type StaticDirectory map[string]Address

// Lookup implements Directory.
func (d StaticDirectory) Lookup(cep string) (Address, bool) {
	addr, ok := d[strings.TrimSpace(cep)]
	return addr, ok
}

// LoadDirectory decodes a YAML list of addresses.
func LoadDirectory(r io.Reader) (StaticDirectory, error) {
	var entries []Address
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil && err != io.EOF {
		return nil, fmt.Errorf("checkout: decode directory: %w", err)
	}

	dir := make(StaticDirectory, len(entries))
	for idx, entry := range entries {
		cep := strings.TrimSpace(entry.CEP)
		if cep == "" {
			return nil, fmt.Errorf("checkout: directory entry %d has no cep", idx)
		}
		entry.CEP = cep
		dir[cep] = entry
	}
	return dir, nil
}

var (
	defaultDirectoryOnce sync.Once
	defaultDirectory     StaticDirectory
)

// DefaultDirectory returns the bundled postal directory. It panics if the
// embedded data is malformed.
func DefaultDirectory() StaticDirectory {
	defaultDirectoryOnce.Do(func() {
		data, err := embeddedDirectory.ReadFile("data/postal.yaml")
		if err != nil {
			panic(fmt.Errorf("checkout: read embedded directory: %w", err))
		}
		dir, err := LoadDirectory(bytes.NewReader(data))
		if err != nil {
			panic(err)
		}
		defaultDirectory = dir
	})
	return defaultDirectory
}
