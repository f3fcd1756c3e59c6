package domain

import (
	"fmt"
	"strings"
)

type OrderMode int

const (
	OrderRelevance OrderMode = iota
	OrderTime
)

// APIValue is the value sent as the commentThreads "order" parameter.
func (o OrderMode) APIValue() string {
	switch o {
	case OrderTime:
		return "time"
	default:
		return "relevance"
	}
}

func (o OrderMode) String() string {
	return o.APIValue()
}

func ParseOrderMode(value string) (OrderMode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "relevance":
		return OrderRelevance, nil
	case "time":
		return OrderTime, nil
	}
	return OrderRelevance, fmt.Errorf("%w: %q", ErrUnknownOrder, value)
}
