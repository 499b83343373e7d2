package statemachine

import (
	"errors"

	"food-ordering-api/models"
)

// Statuses is the canonical lifecycle ordering, used for error messages.
var Statuses = []models.OrderStatus{
	models.StatusReceived,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
}

var statusSet = func() map[models.OrderStatus]bool {
	m := make(map[models.OrderStatus]bool, len(Statuses))
	for _, s := range Statuses {
		m[s] = true
	}
	return m
}()

// IsValidStatus reports whether s is one of the legal order statuses.
func IsValidStatus(s models.OrderStatus) bool {
	return statusSet[s]
}

// ValidateStatus checks set membership only. Any status may follow any
// other; transitions are not ordered.
func ValidateStatus(s models.OrderStatus) error {
	if statusSet[s] {
		return nil
	}
	return errors.New("invalid status '" + string(s) + "'. Must be one of: " + describeStatuses())
}

func describeStatuses() string {
	result := ""
	for i, s := range Statuses {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
