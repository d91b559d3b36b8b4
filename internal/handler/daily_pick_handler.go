package handler

import (
	"io"
	"net/http"

	"gamevault/backend/internal/cache"
	"gamevault/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

// DailyPick godoc
// @Summary      Game of the day
// @Description  The game picked for today and the time left until the next pick. 204 when the catalog is empty.
// @Tags         games
// @Produce      json
// @Success      200 {object} DailyPickResponse
// @Success      204 "Empty catalog"
// @Router       /daily-pick [get]
func (h *GameHandler) DailyPick(c *gin.Context) {
	games, err := h.cachedGames(c.Request.Context(), cache.HomeListing)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve games")
		return
	}

	pick := h.picks.Current(games)
	if pick == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, newDailyPickResponse(*pick))
}

// DailyPickStream godoc
// @Summary      Live countdown to the next daily pick
// @Description  Server-sent events: a "pick" event with the current pick every tick until the client disconnects.
// @Tags         games
// @Produce      text/event-stream
// @Success      200 {object} DailyPickResponse
// @Success      204 "Empty catalog"
// @Router       /daily-pick/stream [get]
func (h *GameHandler) DailyPickStream(c *gin.Context) {
	games, err := h.cachedGames(c.Request.Context(), cache.HomeListing)
	if err != nil {
		respondError(c, h.logger, err, "Failed to retrieve games")
		return
	}
	if len(games) == 0 {
		c.Status(http.StatusNoContent)
		return
	}

	countdown := h.picks.StartCountdown(games, h.TickInterval)
	defer countdown.Stop()

	c.Stream(func(w io.Writer) bool {
		select {
		case pick, ok := <-countdown.C:
			if !ok {
				return false
			}
			c.SSEvent("pick", newDailyPickResponse(pick))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// Events godoc
// @Summary      Invalidation feed
// @Description  Server-sent events: one event per mutation listing the view keys that became stale.
// @Tags         games
// @Produce      text/event-stream
// @Success      200 {object} hub.Event
// @Router       /events [get]
func (h *GameHandler) Events(c *gin.Context) {
	client := make(hub.Client, 16)
	h.events.Subscribe(hub.TopicInvalidations, client)
	defer h.events.Unsubscribe(hub.TopicInvalidations, client)

	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("invalidate", string(msg))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
