package controller

import (
	"time"

	m "github.com/mouse-blink/locstat/internal/model"
)

type tickMsg time.Time

// List item types.
type lineItem struct {
	line m.Line
}

func (l lineItem) FilterValue() string {
	return l.line.Text
}
