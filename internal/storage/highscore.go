package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

const (
	MagicHeader string = `SNHS` // 4 байта
	Version1    uint32 = 1
)

// scoreFile — точное представление файла рекорда в памяти.
// binary.Write умеет писать это целиком: только массивы и числа.
type scoreFile struct {
	Magic   [4]byte // 4 байта
	Version uint32  // 4 байта
	Score   int64   // 8 байт
}

// FileStore - рекорд в бинарном файле на диске. Реализует engine.ScoreStore.
// Потокобезопасен: файл один на сервер, а сессий много.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore создает хранилище в каталоге dir (файл highscore.snake).
// Каталог создается при необходимости.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create score dir: %w", err)
	}
	return &FileStore{path: filepath.Join(dir, "highscore.snake")}, nil
}

// Load читает рекорд. Отсутствие файла - не ошибка: рекорд 0.
func (s *FileStore) Load() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}
	defer f.Close()

	return readScore(f)
}

// Save атомарно перезаписывает рекорд (через временный файл + rename).
func (s *FileStore) Save(score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := s.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}

	if err := writeScore(f, score); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}

	return os.Rename(tmp, s.path)
}

func writeScore(w io.Writer, score int) error {
	record := scoreFile{
		Version: Version1,
		Score:   int64(score),
	}
	copy(record.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &record); err != nil {
		return fmt.Errorf("failed to write score record: %w", err)
	}
	return nil
}

func readScore(r io.Reader) (int, error) {
	var record scoreFile
	if err := binary.Read(r, binary.LittleEndian, &record); err != nil {
		return 0, fmt.Errorf("failed to read score record: %w", err)
	}

	// Валидация
	if string(record.Magic[:]) != MagicHeader {
		return 0, fmt.Errorf("invalid magic")
	}
	if record.Version != Version1 {
		return 0, fmt.Errorf("unsupported version: %d (expected %d)", record.Version, Version1)
	}

	return int(record.Score), nil
}
