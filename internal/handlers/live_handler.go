package handlers

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"

	"quickbudg/internal/logger"
	"quickbudg/internal/models"
	"quickbudg/internal/services"
)

const (
	periodKey = "period"
	yearKey   = "year"
	monthKey  = "month"
	joinedKey = "joined"
)

// LiveMessage is pushed to websocket clients on connect and after every
// change to the month they watch.
type LiveMessage struct {
	Year    int                       `json:"year"`
	Month   int                       `json:"month"`
	Budgets []services.BudgetProgress `json:"budgets"`
}

// periodFeed shares one live query between every session watching a month.
type periodFeed struct {
	query    *services.PeriodQuery
	cancel   func()
	sessions int
}

// LiveHandler streams the progress of a month over websockets.
type LiveHandler struct {
	budgetTotalService services.BudgetTotalServicer
	m                  *melody.Melody

	mu    sync.Mutex
	feeds map[string]*periodFeed
}

// NewLiveHandler creates a LiveHandler backed by live period queries.
func NewLiveHandler(budgetTotalService services.BudgetTotalServicer) *LiveHandler {
	m := melody.New()
	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	h := &LiveHandler{
		budgetTotalService: budgetTotalService,
		m:                  m,
		feeds:              make(map[string]*periodFeed),
	}

	m.HandleConnect(h.onConnect)
	m.HandleDisconnect(h.onDisconnect)
	m.HandleError(func(s *melody.Session, err error) {
		logger.Named("live").Debugw("websocket error", "period", sessionPeriod(s), "error", err)
	})
	return h
}

// HandleLive upgrades the request to a websocket bound to one month.
// @Summary     Watch a month
// @Description Websocket that pushes the month's progress views on connect and after every change
// @Tags        live
// @Param       year  query int true "Year"
// @Param       month query int true "Month (1-12)"
// @Success     101 {object} LiveMessage "Switching protocols"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /live [get]
func (h *LiveHandler) HandleLive(c *gin.Context) {
	year, month, err := parsePeriod(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	keys := map[string]any{
		periodKey: periodName(year, month),
		yearKey:   year,
		monthKey:  month,
	}
	if err := h.m.HandleRequestWithKeys(c.Writer, c.Request, keys); err != nil {
		logger.Named("live").Warnw("websocket upgrade failed", "error", err)
	}
}

// Close disconnects every session and releases the live queries.
func (h *LiveHandler) Close() error {
	err := h.m.Close()

	h.mu.Lock()
	defer h.mu.Unlock()
	for key, feed := range h.feeds {
		feed.cancel()
		feed.query.Close()
		delete(h.feeds, key)
	}
	return err
}

func (h *LiveHandler) onConnect(s *melody.Session) {
	year, _ := s.Get(yearKey)
	month, _ := s.Get(monthKey)
	y, _ := year.(int)
	m, _ := month.(int)

	results, err := h.acquire(y, m)
	if err != nil {
		logger.Named("live").Warnw("live query unavailable", "year", y, "month", m, "error", err)
		_ = s.CloseWithMsg(melody.FormatCloseMessage(1011, "live query unavailable"))
		return
	}
	s.Set(joinedKey, true)

	payload, err := encodeLive(y, m, results)
	if err != nil {
		logger.Named("live").Errorw("failed to encode snapshot", "error", err)
		return
	}
	_ = s.Write(payload)
}

func (h *LiveHandler) onDisconnect(s *melody.Session) {
	if _, joined := s.Get(joinedKey); !joined {
		return
	}
	h.release(sessionPeriod(s))
}

// acquire joins the feed of a month, starting it for the first session, and
// returns the current snapshot.
func (h *LiveHandler) acquire(year, month int) ([]models.BudgetTotal, error) {
	key := periodName(year, month)

	h.mu.Lock()
	defer h.mu.Unlock()

	if feed, ok := h.feeds[key]; ok {
		feed.sessions++
		return feed.query.Results(), nil
	}

	query, err := h.budgetTotalService.FilterByYearMonth(year, month)
	if err != nil {
		return nil, err
	}
	cancel := query.Subscribe(func(results []models.BudgetTotal) {
		h.broadcast(key, year, month, results)
	})
	h.feeds[key] = &periodFeed{query: query, cancel: cancel, sessions: 1}
	return query.Results(), nil
}

func (h *LiveHandler) release(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	feed, ok := h.feeds[key]
	if !ok {
		return
	}
	feed.sessions--
	if feed.sessions > 0 {
		return
	}
	feed.cancel()
	feed.query.Close()
	delete(h.feeds, key)
}

func (h *LiveHandler) broadcast(key string, year, month int, results []models.BudgetTotal) {
	payload, err := encodeLive(year, month, results)
	if err != nil {
		logger.Named("live").Errorw("failed to encode update", "error", err)
		return
	}

	err = h.m.BroadcastFilter(payload, func(s *melody.Session) bool {
		return sessionPeriod(s) == key
	})
	if err != nil {
		logger.Named("live").Warnw("broadcast failed", "period", key, "error", err)
	}
}

func encodeLive(year, month int, results []models.BudgetTotal) ([]byte, error) {
	return json.Marshal(LiveMessage{
		Year:    year,
		Month:   month,
		Budgets: services.ProgressForPeriod(results),
	})
}

func periodName(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

func sessionPeriod(s *melody.Session) string {
	v, ok := s.Get(periodKey)
	if !ok {
		return ""
	}
	key, _ := v.(string)
	return key
}
