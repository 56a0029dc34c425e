package dashboard

import (
	"sync"
	"time"
)

// Debouncer 마지막 Trigger 호출 이후 delay 동안 추가 호출이 없을 때 fn을 한 번 실행합니다.
//
// Trigger가 다시 호출되면 대기 중인 실행은 취소되고 대기 시간이 처음부터 다시 시작됩니다.
// fn은 타이머 고루틴에서 실행됩니다.
type Debouncer struct {
	delay time.Duration
	fn    func()

	mu         sync.Mutex
	timer      *time.Timer
	generation uint64
	stopped    bool
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{
		delay: delay,
		fn:    fn,
	}
}

// Trigger 대기 시간을 (다시) 시작합니다. Stop 이후에는 아무것도 하지 않습니다.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if d.timer != nil {
		d.timer.Stop()
	}

	// 이미 만료되어 fire가 실행 대기 중인 타이머는 세대 번호로 걸러냅니다.
	d.generation++
	generation := d.generation
	d.timer = time.AfterFunc(d.delay, func() { d.fire(generation) })
}

// Pending 실행 대기 중인 호출이 있는지 반환합니다.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.timer != nil
}

// Stop 대기 중인 실행을 취소하고 이후의 Trigger를 무시합니다. 이미 실행 중인 fn은 중단하지 않습니다.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) fire(generation uint64) {
	d.mu.Lock()
	if d.stopped || generation != d.generation {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.mu.Unlock()

	d.fn()
}
