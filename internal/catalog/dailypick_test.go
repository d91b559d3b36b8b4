package catalog

import (
	"testing"
	"time"

	"gamevault/backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashDate(t *testing.T) {
	assert.Equal(t, int32(0), HashDate(""))
	assert.Equal(t, int32(97), HashDate("a"))
	assert.Equal(t, int32(82340954), HashDate("Fri Oct 16 2026"))
	assert.Equal(t, int32(-693596606), HashDate("Sat Oct 17 2026"))
	assert.Equal(t, int32(-1035016360), HashDate("Thu Jan 01 1970"))
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 2, Index("Fri Oct 16 2026", 3))
	assert.Equal(t, 4, Index("Fri Oct 16 2026", 5))
	assert.Equal(t, 1, Index("Sat Oct 17 2026", 5))
	assert.Equal(t, 0, Index("Thu Jan 01 1970", 5))

	for n := 1; n <= 7; n++ {
		i := Index("Mon Jan 01 2024", n)
		assert.GreaterOrEqual(t, i, 0)
		assert.Less(t, i, n)
	}
}

func fixedSelector(now time.Time) *Selector {
	s := NewSelector(time.UTC)
	s.Now = func() time.Time { return now }
	return s
}

func threeGames() []models.Game {
	return []models.Game{{Title: "A"}, {Title: "B"}, {Title: "C"}}
}

func TestPickAt(t *testing.T) {
	s := NewSelector(time.UTC)
	games := threeGames()

	pick := s.PickAt(time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC), games)
	require.NotNil(t, pick)
	assert.Equal(t, "Fri Oct 16 2026", pick.Date)
	assert.Equal(t, "C", pick.Game.Title)
	assert.Equal(t, 9*time.Hour, pick.Remaining)

	// Same calendar day, same pick.
	morning := s.PickAt(time.Date(2026, 10, 16, 0, 0, 1, 0, time.UTC), games)
	require.NotNil(t, morning)
	assert.Equal(t, pick.Game.Title, morning.Game.Title)
}

func TestPickAt_UsesSelectorLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	s := NewSelector(tokyo)

	// 20:00 UTC on the 16th is already the 17th in Tokyo.
	pick := s.PickAt(time.Date(2026, 10, 16, 20, 0, 0, 0, time.UTC), threeGames())
	require.NotNil(t, pick)
	assert.Equal(t, "Sat Oct 17 2026", pick.Date)
	assert.Equal(t, 19*time.Hour, pick.Remaining)
}

func TestPickAt_EmptyCatalog(t *testing.T) {
	assert.Nil(t, NewSelector(time.UTC).PickAt(time.Now(), nil))
	assert.Nil(t, NewSelector(time.UTC).PickAt(time.Now(), []models.Game{}))
}

func TestCurrent(t *testing.T) {
	s := fixedSelector(time.Date(2026, 10, 16, 23, 59, 59, 0, time.UTC))
	pick := s.Current(threeGames())
	require.NotNil(t, pick)
	assert.Equal(t, "C", pick.Game.Title)
	assert.Equal(t, time.Second, pick.Remaining)
}

func TestUntilMidnight(t *testing.T) {
	assert.Equal(t, 24*time.Hour, UntilMidnight(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.Second, UntilMidnight(time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, 90*time.Minute, UntilMidnight(time.Date(2026, 2, 28, 22, 30, 0, 0, time.UTC)))
}

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "00h 00m 00s"},
		{-5 * time.Second, "00h 00m 00s"},
		{time.Second, "00h 00m 01s"},
		{1500 * time.Millisecond, "00h 00m 01s"},
		{9 * time.Hour, "09h 00m 00s"},
		{23*time.Hour + 59*time.Minute + 59*time.Second, "23h 59m 59s"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatCountdown(tc.in), "duration %s", tc.in)
	}
}

func TestStartCountdown_EmptyCatalogClosesAtOnce(t *testing.T) {
	cd := NewSelector(time.UTC).StartCountdown(nil, time.Millisecond)

	_, ok := <-cd.C
	assert.False(t, ok)
	cd.Stop()
}

func TestStartCountdown_EmitsUntilStopped(t *testing.T) {
	s := fixedSelector(time.Date(2026, 10, 16, 15, 0, 0, 0, time.UTC))
	cd := s.StartCountdown(threeGames(), 5*time.Millisecond)

	select {
	case pick := <-cd.C:
		assert.Equal(t, "C", pick.Game.Title)
		assert.Equal(t, "09h 00m 00s", FormatCountdown(pick.Remaining))
	case <-time.After(time.Second):
		t.Fatal("no pick emitted")
	}

	select {
	case _, ok := <-cd.C:
		assert.True(t, ok)
	case <-time.After(time.Second):
		t.Fatal("no tick emitted")
	}

	cd.Stop()
	cd.Stop()

	for range cd.C {
	}
	_, ok := <-cd.C
	assert.False(t, ok)
}
