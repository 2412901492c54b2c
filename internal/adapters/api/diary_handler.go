package api

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"weatherlog.app/internal/core/diary"
	"weatherlog.app/pkg/calendar"
	"weatherlog.app/pkg/errors"
)

// DateRequest carries a single calendar day
type DateRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

// DiaryTextRequest carries a day and the entry text
type DiaryTextRequest struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
	Text string `form:"text" binding:"required,notblank"`
}

// DateRangeRequest carries an inclusive day range
type DateRangeRequest struct {
	StartDate string `form:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"required,datetime=2006-01-02"`
}

// DiaryResponse represents one diary entry
type DiaryResponse struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Text        string    `json:"text"`
	Weather     string    `json:"weather"`
	Temperature float64   `json:"temperature"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// DeleteResponse reports how many entries were removed
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

func newDiaryResponse(e *diary.Entry) DiaryResponse {
	return DiaryResponse{
		ID:          e.ID,
		Date:        e.DateString(),
		Text:        e.Text,
		Weather:     e.WeatherDescription,
		Temperature: e.TemperatureCelsius,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func newDiaryResponses(entries []*diary.Entry) []DiaryResponse {
	out := make([]DiaryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, newDiaryResponse(e))
	}
	return out
}

// bind binds the request and reports a validation error response on failure
func (s *HTTPServerAdapter) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		slog.Debug("Request binding error", "error", err, "path", c.FullPath())
		s.handleError(c, errors.NewValidationError(bindingErrorMessage(err)))
		return false
	}
	return true
}

// parseDate converts an already validated day string
func (s *HTTPServerAdapter) parseDate(c *gin.Context, value string) (time.Time, bool) {
	date, err := calendar.Parse(value)
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()))
		return time.Time{}, false
	}
	return date, true
}

// createDiary handles POST /create/diary requests
func (s *HTTPServerAdapter) createDiary(c *gin.Context) {
	var req DiaryTextRequest
	if !s.bind(c, &req) {
		return
	}
	date, ok := s.parseDate(c, req.Date)
	if !ok {
		return
	}

	slog.Info("Request to create diary", "date", req.Date)

	entry, err := s.diaryUseCase.CreateDiary(c.Request.Context(), date, req.Text)
	if err != nil {
		slog.Error("Create diary error", "error", err, "date", req.Date)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDiaryResponse(entry))
}

// createWeatherDiary handles POST /create/weather-diary requests
func (s *HTTPServerAdapter) createWeatherDiary(c *gin.Context) {
	var req DateRequest
	if !s.bind(c, &req) {
		return
	}
	date, ok := s.parseDate(c, req.Date)
	if !ok {
		return
	}

	entry, err := s.diaryUseCase.CreateWeatherDiary(c.Request.Context(), date)
	if err != nil {
		slog.Error("Create weather diary error", "error", err, "date", req.Date)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDiaryResponse(entry))
}

// readDiary handles GET /read/diary requests
func (s *HTTPServerAdapter) readDiary(c *gin.Context) {
	var req DateRequest
	if !s.bind(c, &req) {
		return
	}
	date, ok := s.parseDate(c, req.Date)
	if !ok {
		return
	}

	entries, err := s.diaryUseCase.ReadDiary(c.Request.Context(), date)
	if err != nil {
		slog.Error("Read diary error", "error", err, "date", req.Date)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDiaryResponses(entries))
}

// readDiaries handles GET /read/diaries requests
func (s *HTTPServerAdapter) readDiaries(c *gin.Context) {
	var req DateRangeRequest
	if !s.bind(c, &req) {
		return
	}
	start, ok := s.parseDate(c, req.StartDate)
	if !ok {
		return
	}
	end, ok := s.parseDate(c, req.EndDate)
	if !ok {
		return
	}

	entries, err := s.diaryUseCase.ReadDiaries(c.Request.Context(), start, end)
	if err != nil {
		slog.Error("Read diaries error", "error", err, "start", req.StartDate, "end", req.EndDate)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDiaryResponses(entries))
}

// updateDiary handles PUT /update/diary requests
func (s *HTTPServerAdapter) updateDiary(c *gin.Context) {
	var req DiaryTextRequest
	if !s.bind(c, &req) {
		return
	}
	date, ok := s.parseDate(c, req.Date)
	if !ok {
		return
	}

	slog.Info("Request to update diary", "date", req.Date)

	entry, err := s.diaryUseCase.UpdateDiary(c.Request.Context(), date, req.Text)
	if err != nil {
		slog.Error("Update diary error", "error", err, "date", req.Date)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, newDiaryResponse(entry))
}

// deleteDiary handles DELETE /delete/diary requests
func (s *HTTPServerAdapter) deleteDiary(c *gin.Context) {
	var req DateRequest
	if !s.bind(c, &req) {
		return
	}
	date, ok := s.parseDate(c, req.Date)
	if !ok {
		return
	}

	slog.Info("Request to delete diary", "date", req.Date)

	deleted, err := s.diaryUseCase.DeleteDiary(c.Request.Context(), date)
	if err != nil {
		slog.Error("Delete diary error", "error", err, "date", req.Date)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{Deleted: deleted})
}
