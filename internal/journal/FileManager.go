package journal

import (
	"callguard/internal/journal/interfaces"
	"callguard/internal/models"
	"callguard/internal/providers"
	"callguard/internal/services"
	"fmt"
	json "github.com/goccy/go-json"
	"os"
)

type FileManager struct {
	service    services.JournalServiceInterface
	compressor interfaces.CompressorInterface
	logger     providers.Logger
}

func NewFileManager(compressor interfaces.CompressorInterface, service services.JournalServiceInterface, logger providers.Logger) *FileManager {
	return &FileManager{
		compressor: compressor,
		service:    service,
		logger:     logger,
	}
}

// SaveToFile writes the journal snapshot through a temp file and rename so a
// crash never leaves a truncated journal behind.
func (f *FileManager) SaveToFile(fileName string) error {
	journal := f.service.GetSnapshot()

	jsonData, err := json.Marshal(journal)
	if err != nil {
		return err
	}
	data, err := f.compressor.Compress(jsonData)
	if err != nil {
		return err
	}

	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(data)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileManager) Close() {
	f.compressor.Close()
}

// LoadFromFile merges a saved journal into the service. A missing file is
// a fresh start, not an error.
func (f *FileManager) LoadFromFile(fileName string) error {
	data, err := os.ReadFile(fileName)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	decompressed, err := f.compressor.Decompress(data)
	if err != nil {
		return fmt.Errorf("journal %s: %w", fileName, err)
	}

	var journal models.Journal
	if err := json.Unmarshal(decompressed, &journal); err != nil {
		return fmt.Errorf("journal %s: %w", fileName, err)
	}
	if journal.Days == nil {
		f.logger.Warnf(providers.TypeApp, "Journal %s has no days, starting empty", fileName)
		return nil
	}

	f.service.PutJournal(journal)
	return nil
}
