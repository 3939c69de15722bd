package domain

import (
	"errors"
	"strings"
	"time"
)

var ErrActionNotOffered = errors.New("action is not available for the current order status")

type Action string

const (
	ActionFinish Action = "finish"
	ActionPay    Action = "pay"
	ActionClaim  Action = "claim"
)

func ParseAction(s string) (Action, bool) {
	switch Action(strings.ToLower(strings.TrimSpace(s))) {
	case ActionFinish:
		return ActionFinish, true
	case ActionPay:
		return ActionPay, true
	case ActionClaim:
		return ActionClaim, true
	}
	return "", false
}

func (a Action) Label() string {
	switch a {
	case ActionFinish:
		return "Mark as Finished"
	case ActionPay:
		return "Mark as Paid"
	case ActionClaim:
		return "Mark as Claimed"
	}
	return ""
}

// OfferedActions lists the transitions available from the status, in the
// order they are presented. A terminal status yields an empty slice.
func (s OrderStatus) OfferedActions() []Action {
	actions := []Action{}
	if !s.IsFinished {
		actions = append(actions, ActionFinish)
		if !s.IsPaid {
			actions = append(actions, ActionPay)
		}
		return actions
	}
	if !s.IsPaid {
		actions = append(actions, ActionPay)
	}
	if !s.IsClaimed {
		actions = append(actions, ActionClaim)
	}
	return actions
}

func (s OrderStatus) CanApply(action Action) bool {
	for _, a := range s.OfferedActions() {
		if a == action {
			return true
		}
	}
	return false
}

// Apply sets the flag targeted by action and stamps it with now. Flags are
// never cleared and timestamps are never overwritten.
func (s *OrderStatus) Apply(action Action, now time.Time) error {
	if !s.CanApply(action) {
		return ErrActionNotOffered
	}
	at := now
	switch action {
	case ActionFinish:
		s.IsFinished = true
		s.FinishedAt = &at
	case ActionPay:
		s.IsPaid = true
		s.PaidAt = &at
	case ActionClaim:
		s.IsClaimed = true
		s.ClaimedAt = &at
	}
	return nil
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsFinished && s.IsPaid && s.IsClaimed
}

func (s OrderStatus) Label() string {
	parts := make([]string, 0, 3)
	if s.IsFinished {
		parts = append(parts, "Finished")
	} else {
		parts = append(parts, "Pending")
	}
	if s.IsPaid {
		parts = append(parts, "Paid")
	} else {
		parts = append(parts, "Unpaid")
	}
	if s.IsFinished {
		if s.IsClaimed {
			parts = append(parts, "Claimed")
		} else {
			parts = append(parts, "Unclaimed")
		}
	}
	return strings.Join(parts, ", ")
}

type Style struct {
	Name  string
	Color string
}

var (
	StylePending       = Style{Name: "pending", Color: "#FFA000"}
	StyleDone          = Style{Name: "done", Color: "#4CAF50"}
	StyleClaimedUnpaid = Style{Name: "claimed_unpaid", Color: "#7B1FA2"}
	StylePaidUnclaimed = Style{Name: "paid_unclaimed", Color: "#42A5F5"}
	StyleOverdue       = Style{Name: "overdue", Color: "#D32F2F"}

	AmountUnpaid = Style{Name: "unpaid", Color: "#DC2626"}
	AmountPaid   = Style{Name: "paid", Color: "#16A34A"}
)

// BadgeStyle picks the status badge; the first matching rule wins.
func (s OrderStatus) BadgeStyle() Style {
	switch {
	case !s.IsFinished:
		return StylePending
	case s.IsPaid && s.IsClaimed:
		return StyleDone
	case !s.IsPaid && s.IsClaimed:
		return StyleClaimedUnpaid
	case s.IsPaid && !s.IsClaimed:
		return StylePaidUnclaimed
	}
	return StyleOverdue
}

func (s OrderStatus) AmountStyle() Style {
	if !s.IsPaid {
		return AmountUnpaid
	}
	return AmountPaid
}
