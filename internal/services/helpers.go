package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	appErrors "github.com/aaravmahajanofficial/local-commerce-platform/internal/errors"
	repository "github.com/aaravmahajanofficial/local-commerce-platform/internal/repositories"
)

const (
	defaultPageSize = 10
	maxPageSize     = 50
)

func normalizePage(page, size int) (int, int) {

	if page < 1 {
		page = 1
	}

	if size < 1 || size > maxPageSize {
		size = defaultPageSize
	}

	return page, size
}

// logNotifyFailure keeps email problems out of the caller's result. A
// provider failure is already recorded on the notification row, anything
// else means the record itself may be missing.
func logNotifyFailure(logger *slog.Logger, msg, orderID string, err error) {
	level := slog.LevelError
	if appErrors.HasCode(err, appErrors.ErrCodeThirdPartyError) {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, msg, slog.String("orderId", orderID), slog.String("error", err.Error()))
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// startOfWeek is the most recent Sunday at midnight.
func startOfWeek(t time.Time) time.Time {
	day := startOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}
