package catalog

import (
	"fmt"
	"sync"
	"time"
	"unicode/utf16"

	"gamevault/backend/internal/models"
)

// DateKeyLayout renders a calendar day the way the pick hash expects it,
// e.g. "Fri Oct 16 2026".
const DateKeyLayout = "Mon Jan 02 2006"

// Pick is the game of the day and the time left until the next one.
type Pick struct {
	Game      models.Game
	Date      string
	Remaining time.Duration
}

// Selector chooses one game per calendar day in its location. The choice
// depends only on the date and the order of the games passed in.
type Selector struct {
	Now      func() time.Time
	Location *time.Location
}

func NewSelector(loc *time.Location) *Selector {
	if loc == nil {
		loc = time.Local
	}
	return &Selector{Now: time.Now, Location: loc}
}

// HashDate is a 32-bit string hash over UTF-16 code units: for each unit,
// h = h*31 + unit, wrapping on overflow.
func HashDate(key string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(key)) {
		h = (h << 5) - h + int32(unit)
	}
	return h
}

// Index maps a date key to a position in a list of n games. n must be positive.
func Index(key string, n int) int {
	h := int64(HashDate(key))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// PickAt returns the pick for the day containing t, or nil for an empty catalog.
func (s *Selector) PickAt(t time.Time, games []models.Game) *Pick {
	if len(games) == 0 {
		return nil
	}
	local := t.In(s.Location)
	key := local.Format(DateKeyLayout)
	return &Pick{
		Game:      games[Index(key, len(games))],
		Date:      key,
		Remaining: UntilMidnight(local),
	}
}

// Current returns the pick for now.
func (s *Selector) Current(games []models.Game) *Pick {
	return s.PickAt(s.Now(), games)
}

// UntilMidnight is the time left before the next midnight in t's location.
func UntilMidnight(t time.Time) time.Duration {
	y, m, d := t.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, t.Location())
	return next.Sub(t)
}

// FormatCountdown renders d as "HHh MMm SSs", truncated to whole seconds.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02dh %02dm %02ds", (total/3600)%24, (total/60)%60, total%60)
}

// Countdown recomputes the pick on a fixed interval until stopped. It only
// reads the games it was given.
type Countdown struct {
	C <-chan Pick

	stop chan struct{}
	once sync.Once
	done chan struct{}
}

// StartCountdown emits the current pick immediately and then once per
// interval. Nothing is emitted for an empty catalog and the channel is closed
// right away. A slow reader misses ticks rather than blocking the timer.
func (s *Selector) StartCountdown(games []models.Game, interval time.Duration) *Countdown {
	out := make(chan Pick, 1)
	cd := &Countdown{C: out, stop: make(chan struct{}), done: make(chan struct{})}

	if len(games) == 0 {
		close(out)
		close(cd.done)
		return cd
	}

	go func() {
		defer close(cd.done)
		defer close(out)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		emit := func() {
			pick := s.Current(games)
			select {
			case out <- *pick:
			default:
			}
		}

		emit()
		for {
			select {
			case <-cd.stop:
				return
			case <-ticker.C:
				emit()
			}
		}
	}()
	return cd
}

// Stop halts the timer and waits until C is closed. It is safe to call more than once.
func (c *Countdown) Stop() {
	c.once.Do(func() { close(c.stop) })
	<-c.done
}
