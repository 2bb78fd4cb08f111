// Package state держит всё изменяемое состояние бота одним агрегатом:
// анкеты, очередь ожидания и бан-лист. Сам агрегат не потокобезопасен -
// сериализацию доступа обеспечивает владелец (usecases/chat) одним мьютексом.
package state

import (
	"sort"
	"strconv"

	"github.com/Kiranxer/k-Anony/internal/domain"
)

type State struct {
	profiles map[int64]*domain.Profile
	waiting  []int64
	banned   map[int64]struct{}
}

func New() *State {
	return &State{
		profiles: make(map[int64]*domain.Profile),
		waiting:  []int64{},
		banned:   make(map[int64]struct{}),
	}
}

// GetOrCreateProfile возвращает анкету, создавая дефолтную при первом обращении
func (s *State) GetOrCreateProfile(id int64) *domain.Profile {
	p, ok := s.profiles[id]
	if !ok {
		p = domain.NewProfile()
		s.profiles[id] = p
	}
	return p
}

// Profile возвращает анкету без создания
func (s *State) Profile(id int64) (*domain.Profile, bool) {
	p, ok := s.profiles[id]
	return p, ok
}

func (s *State) ProfileCount() int {
	return len(s.profiles)
}

// ProfileIDs все известные id, отсортированы для детерминизма рассылок
func (s *State) ProfileIDs() []int64 {
	ids := make([]int64, 0, len(s.profiles))
	for id := range s.profiles {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// PairedCount количество анкет с активным собеседником (не пар)
func (s *State) PairedCount() int {
	n := 0
	for _, p := range s.profiles {
		if p.HasPartner() {
			n++
		}
	}
	return n
}

// Waiting копия очереди ожидания в порядке постановки
func (s *State) Waiting() []int64 {
	return append([]int64(nil), s.waiting...)
}

func (s *State) WaitingLen() int {
	return len(s.waiting)
}

func (s *State) InWaiting(id int64) bool {
	for _, w := range s.waiting {
		if w == id {
			return true
		}
	}
	return false
}

// EnqueueWaiting ставит id в конец очереди; повторная постановка не дублирует
func (s *State) EnqueueWaiting(id int64) {
	s.RemoveWaiting(id)
	s.waiting = append(s.waiting, id)
}

// RemoveWaiting идемпотентно убирает id из очереди
func (s *State) RemoveWaiting(id int64) bool {
	for i, w := range s.waiting {
		if w == id {
			s.waiting = append(s.waiting[:i], s.waiting[i+1:]...)
			return true
		}
	}
	return false
}

func (s *State) IsBanned(id int64) bool {
	_, ok := s.banned[id]
	return ok
}

func (s *State) Ban(id int64) {
	s.banned[id] = struct{}{}
}

// Unban идемпотентно снимает бан; очередь не восстанавливает
func (s *State) Unban(id int64) {
	delete(s.banned, id)
}

func (s *State) BannedCount() int {
	return len(s.banned)
}

// BannedIDs отсортированный список забаненных
func (s *State) BannedIDs() []int64 {
	ids := make([]int64, 0, len(s.banned))
	for id := range s.banned {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Snapshot глубокая копия состояния в сериализуемом виде.
// Копия нужна, чтобы запись на диск шла вне критической секции
func (s *State) Snapshot() *domain.Snapshot {
	snap := domain.NewSnapshot()
	for id, p := range s.profiles {
		snap.Users[strconv.FormatInt(id, 10)] = p.Clone()
	}
	snap.Waiting = append(snap.Waiting, s.waiting...)
	snap.Banned = append(snap.Banned, s.BannedIDs()...)
	return snap
}

// Restore загружает состояние из снапшота, затирая текущее.
// Очередь санируется: дубли, забаненные и занятые в паре id отбрасываются -
// файл мог быть записан частично или отредактирован руками
func (s *State) Restore(snap *domain.Snapshot) {
	s.profiles = make(map[int64]*domain.Profile, len(snap.Users))
	s.waiting = []int64{}
	s.banned = make(map[int64]struct{}, len(snap.Banned))

	for key, p := range snap.Users {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil || p == nil {
			continue
		}
		cp := p.Clone()
		if !cp.Gender.IsValid() {
			cp.Gender = domain.GenderUnknown
		}
		if cp.Interests == nil {
			cp.Interests = []string{}
		}
		s.profiles[id] = cp
	}

	// пара существует, только если обе анкеты ссылаются друг на друга.
	// Односторонние и самозамкнутые ссылки из битого файла зачищаются
	for id, p := range s.profiles {
		if p.PartnerID == nil {
			continue
		}
		partnerID := *p.PartnerID
		if partnerID == id {
			p.PartnerID = nil
			continue
		}
		partner, ok := s.profiles[partnerID]
		if !ok || partner.PartnerID == nil || *partner.PartnerID != id {
			p.PartnerID = nil
		}
	}

	for _, id := range snap.Banned {
		s.banned[id] = struct{}{}
	}

	seen := make(map[int64]struct{}, len(snap.Waiting))
	for _, id := range snap.Waiting {
		if _, dup := seen[id]; dup {
			continue
		}
		if s.IsBanned(id) {
			continue
		}
		if p, ok := s.profiles[id]; ok && p.HasPartner() {
			continue
		}
		seen[id] = struct{}{}
		s.waiting = append(s.waiting, id)
	}
}
