package websocket

import (
	"encoding/json"
	"fmt"

	"unihostel/pkg/logger"
)

// Notifier pushes decision notifications to users over their WebSocket
// connection. Delivery is best-effort with no confirmation; a user who is
// offline simply misses the push and sees the new status on next load.
type Notifier struct {
	manager *Manager
}

func NewNotifier(manager *Manager) *Notifier {
	return &Notifier{manager: manager}
}

type notification struct {
	Type  string `json:"type"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (n *Notifier) push(userID string, note notification) {
	payload, err := json.Marshal(note)
	if err != nil {
		logger.Error("Failed to encode notification: %v", err)
		return
	}
	n.manager.SendToUser(userID, payload)
}

func (n *Notifier) BookingDecision(userID, hostelName string, approved bool) {
	if approved {
		n.push(userID, notification{
			Type:  "booking-approved",
			Title: "Booking Approved!",
			Body:  fmt.Sprintf("Your booking for %s has been approved. You can now proceed with the check-in process.", hostelName),
		})
		return
	}
	n.push(userID, notification{
		Type:  "booking-rejected",
		Title: "Booking Update",
		Body:  fmt.Sprintf("Your booking for %s was not approved. Please contact support for more details.", hostelName),
	})
}

func (n *Notifier) VerificationDecision(userID string, approved bool) {
	if approved {
		n.push(userID, notification{
			Type:  "verification-approved",
			Title: "Verification Complete!",
			Body:  "Your student verification has been approved. You can now book hostels.",
		})
		return
	}
	n.push(userID, notification{
		Type:  "verification-rejected",
		Title: "Verification Update",
		Body:  "Your verification was not approved. Please upload valid documents and try again.",
	})
}

func (n *Notifier) HostelDecision(ownerID, hostelName string, approved bool) {
	if ownerID == "" {
		return
	}
	if approved {
		n.push(ownerID, notification{
			Type:  "hostel-approved",
			Title: "Hostel Listed!",
			Body:  fmt.Sprintf("Your hostel %q has been approved and is now live.", hostelName),
		})
		return
	}
	n.push(ownerID, notification{
		Type:  "hostel-rejected",
		Title: "Hostel Update",
		Body:  fmt.Sprintf("Your hostel %q listing was not approved.", hostelName),
	})
}
