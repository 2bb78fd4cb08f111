package domain

// Snapshot сериализуемое состояние бота - контракт data.json.
// Ключи users - десятичные telegram user id
type Snapshot struct {
	Users   map[string]*Profile `json:"users"`
	Waiting []int64             `json:"waiting"`
	Banned  []int64             `json:"banned"`
}

// NewSnapshot создаёт пустой снапшот с инициализированными коллекциями
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:   make(map[string]*Profile),
		Waiting: []int64{},
		Banned:  []int64{},
	}
}
