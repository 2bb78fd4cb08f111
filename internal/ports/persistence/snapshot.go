package persistence

import (
	"github.com/Kiranxer/k-Anony/internal/domain"
)

// ISnapshotStore интерфейс долговременного хранилища состояния бота.
// Load обязан переживать отсутствующий файл (вернуть пустой снапшот)
// и битые поля отдельных анкет (дефолты на уровне поля, не отказ целиком)
type ISnapshotStore interface {
	Load() (*domain.Snapshot, error)
	Save(snap *domain.Snapshot) error
}
