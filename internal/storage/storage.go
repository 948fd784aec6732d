package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ff-vivek/promptbank/internal/errors"
	"github.com/ff-vivek/promptbank/internal/models"
)

// DataFile is the name of the backing file inside the storage root.
const DataFile = "prompts.json"

// Storage persists the prompt bank as a single JSON file. The whole
// collection is written and read as one unit per call; there is no locking
// and no partial-write recovery, concurrent invocations race last-write-wins.
type Storage struct {
	rootPath string
	dataPath string
}

// NewStorage creates a storage rooted at the given directory, creating it if
// needed. The caller resolves the root once at startup and passes it in
// explicitly; storage never consults the environment itself.
func NewStorage(rootPath string) (*Storage, error) {
	if rootPath == "" {
		return nil, errors.EnvironmentError("storage root directory not set")
	}
	if err := os.MkdirAll(rootPath, 0755); err != nil {
		return nil, errors.StorageError(fmt.Sprintf("create directory %s", rootPath), err)
	}
	return &Storage{
		rootPath: rootPath,
		dataPath: filepath.Join(rootPath, DataFile),
	}, nil
}

// DefaultRoot resolves the default storage root: the PROMPTBANK_DIR
// environment variable when set, otherwise ~/.promptbank.
func DefaultRoot() (string, error) {
	if dir := os.Getenv("PROMPTBANK_DIR"); dir != "" {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.EnvironmentError("could not determine home directory")
	}
	return filepath.Join(homeDir, ".promptbank"), nil
}

// DataPath returns the backing file path for display.
func (s *Storage) DataPath() string {
	return s.dataPath
}

// Load reads the bank from the backing file. A missing file yields a fresh
// empty bank so first runs need no explicit setup.
func (s *Storage) Load() (*models.Bank, error) {
	return s.readBank(s.dataPath)
}

// Save writes the bank to the backing file as a full overwrite.
func (s *Storage) Save(bank *models.Bank) error {
	return s.writeBank(bank, s.dataPath)
}

// Export writes the bank to an arbitrary path in the backing-file format.
func (s *Storage) Export(bank *models.Bank, path string) error {
	return s.writeBank(bank, path)
}

// Import reads a bank from an arbitrary path. Unlike Load, a missing file is
// an error here: the user named the file explicitly.
func (s *Storage) Import(path string) (*models.Bank, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.StorageError(fmt.Sprintf("read %s", path), err)
	}
	return s.readBank(path)
}

func (s *Storage) readBank(path string) (*models.Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.NewBank(), nil
		}
		return nil, errors.StorageError(fmt.Sprintf("read %s", path), err)
	}

	var bank models.Bank
	if err := json.Unmarshal(data, &bank); err != nil {
		return nil, errors.ParseError(path, err)
	}
	if bank.Prompts == nil {
		bank.Prompts = []*models.Prompt{}
	}
	if bank.Version == "" {
		bank.Version = models.BankVersion
	}
	return &bank, nil
}

func (s *Storage) writeBank(bank *models.Bank, path string) error {
	data, err := json.MarshalIndent(bank, "", "  ")
	if err != nil {
		return errors.StorageError("serialize bank", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.StorageError(fmt.Sprintf("write %s", path), err)
	}
	return nil
}
