package file

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"log/slog"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

// Store хранилище снапшотов состояния в JSON-файле.
// Формат файла - внешний контракт (его же отдаёт /export), поэтому
// никакой обвязки поверх domain.Snapshot здесь нет
type Store struct {
	path string
	log  *slog.Logger
}

func NewStore(cfg *Config, log *slog.Logger) *Store {
	path := "data.json"
	if cfg != nil && cfg.Path != "" {
		path = cfg.Path
	}
	return &Store{
		path: path,
		log:  log,
	}
}

// Path путь к файлу данных, нужен для /export
func (s *Store) Path() string {
	return s.path
}

// Ping проверяет, что директория файла данных доступна
func (s *Store) Ping() error {
	dir := filepath.Dir(s.path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("data dir unavailable: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data dir %s is not a directory", dir)
	}
	return nil
}

// rawSnapshot верхний уровень файла с отложенным парсингом секций:
// битая секция не валит загрузку остальных
type rawSnapshot struct {
	Users   map[string]json.RawMessage `json:"users"`
	Waiting json.RawMessage            `json:"waiting"`
	Banned  json.RawMessage            `json:"banned"`
}

// Load читает снапшот с диска. Отсутствующий или пустой файл - пустой
// снапшот без ошибки; битые поля отдельных анкет заменяются дефолтами
func (s *Store) Load() (*domain.Snapshot, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Info("data file not found, starting with empty state", "path", s.path)
		return domain.NewSnapshot(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", s.path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		s.log.Warn("data file is empty, starting with empty state", "path", s.path)
		return domain.NewSnapshot(), nil
	}

	var raw rawSnapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse data file %s: %w", s.path, err)
	}

	snap := domain.NewSnapshot()

	for key, userRaw := range raw.Users {
		snap.Users[key] = s.profileFromRaw(key, userRaw)
	}

	if len(raw.Waiting) > 0 {
		if err := json.Unmarshal(raw.Waiting, &snap.Waiting); err != nil {
			s.log.Warn("malformed waiting section, dropping it",
				"error", err,
				"path", s.path,
			)
			snap.Waiting = []int64{}
		}
	}

	if len(raw.Banned) > 0 {
		if err := json.Unmarshal(raw.Banned, &snap.Banned); err != nil {
			s.log.Warn("malformed banned section, dropping it",
				"error", err,
				"path", s.path,
			)
			snap.Banned = []int64{}
		}
	}

	s.log.Info("data loaded",
		"path", s.path,
		"users", len(snap.Users),
		"waiting", len(snap.Waiting),
		"banned", len(snap.Banned),
	)
	return snap, nil
}

// profileFromRaw разбирает анкету по полям: битое поле откатывается
// к дефолту, остальные поля анкеты сохраняются
func (s *Store) profileFromRaw(key string, raw json.RawMessage) *domain.Profile {
	p := domain.NewProfile()

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		s.log.Warn("malformed user entry, falling back to defaults",
			"error", err,
			"user_key", key,
		)
		return p
	}

	if rawField, ok := fields["gender"]; ok {
		var g domain.Gender
		if err := json.Unmarshal(rawField, &g); err == nil && g.IsValid() {
			p.Gender = g
		} else {
			s.log.Warn("malformed gender field, using default", "user_key", key)
		}
	}

	if rawField, ok := fields["interests"]; ok {
		var interests []string
		if err := json.Unmarshal(rawField, &interests); err == nil {
			for _, it := range interests {
				if it != "" {
					p.Interests = append(p.Interests, it)
				}
			}
		} else {
			s.log.Warn("malformed interests field, using default", "user_key", key)
		}
	}

	if rawField, ok := fields["partnerId"]; ok {
		var partnerID *int64
		if err := json.Unmarshal(rawField, &partnerID); err == nil {
			p.PartnerID = partnerID
		} else {
			s.log.Warn("malformed partnerId field, using default", "user_key", key)
		}
	}

	if rawField, ok := fields["premiumGirlsUntil"]; ok {
		var until int64
		if err := json.Unmarshal(rawField, &until); err == nil {
			p.PremiumGirlsUntil = until
		} else {
			s.log.Warn("malformed premiumGirlsUntil field, using default", "user_key", key)
		}
	}

	return p
}

// Save атомарно пишет снапшот: сначала во временный файл, затем rename.
// Частично записанный файл не должен затирать предыдущий валидный
func (s *Store) Save(snap *domain.Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir %s: %w", dir, err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace data file %s: %w", s.path, err)
	}

	s.log.Debug("snapshot saved",
		"path", s.path,
		"users", len(snap.Users),
		"waiting", len(snap.Waiting),
		"banned", len(snap.Banned),
	)
	return nil
}
