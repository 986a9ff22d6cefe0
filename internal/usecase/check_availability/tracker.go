package check_availability

import "sync"

// Tracker хранит результат последней выданной проверки доступности.
// Проверки могут завершаться не в порядке выдачи: Record отбрасывает
// результаты устаревших проверок, поэтому Latest всегда отражает самую
// позднюю начатую проверку, а не самую позднюю завершившуюся.
type Tracker struct {
	mu        sync.Mutex
	issued    uint64
	recorded  uint64
	available bool
	hasResult bool
}

// NewTracker создает новый трекер проверок
func NewTracker() *Tracker {
	return &Tracker{}
}

// Begin регистрирует начало новой проверки и возвращает её номер
func (t *Tracker) Begin() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.issued++
	return t.issued
}

// Record сохраняет результат проверки seq и возвращает true.
// Если уже записан результат более поздней проверки, результат отбрасывается
// и Record возвращает false: отвечать нужно результатом из Latest.
func (t *Tracker) Record(seq uint64, available bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq < t.recorded {
		return false
	}

	t.recorded = seq
	t.available = available
	t.hasResult = true
	return true
}

// Latest возвращает результат последней по номеру выдачи проверки.
// Второе значение false, пока ни одна проверка не завершилась.
func (t *Tracker) Latest() (bool, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.available, t.hasResult
}
