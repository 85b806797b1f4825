package events

import (
	"context"
	"sync"

	"htmx-tictactoe/models"

	"github.com/google/uuid"
)

const subscriberBuffer = 10

// Global subscriber management
var (
	gameSubscribers = make(map[string][]*models.GameSubscriber)
	subscribersMux  sync.RWMutex
)

// CreateGameSubscriber creates and registers a new subscriber for a game
func CreateGameSubscriber(gameID string, ctx context.Context) *models.GameSubscriber {
	subscriber := &models.GameSubscriber{
		ID:      uuid.NewString(),
		GameID:  gameID,
		Channel: make(chan models.GameEvent, subscriberBuffer),
		Context: ctx,
	}

	subscribersMux.Lock()
	gameSubscribers[gameID] = append(gameSubscribers[gameID], subscriber)
	subscribersMux.Unlock()

	return subscriber
}

// RemoveGameSubscriber removes a subscriber and closes its channel.
// Removing the same subscriber twice is a no-op.
func RemoveGameSubscriber(subscriber *models.GameSubscriber) {
	subscribersMux.Lock()
	defer subscribersMux.Unlock()

	subscribers, exists := gameSubscribers[subscriber.GameID]
	if !exists {
		return
	}

	for i, sub := range subscribers {
		if sub.ID == subscriber.ID {
			gameSubscribers[subscriber.GameID] = append(subscribers[:i:i], subscribers[i+1:]...)
			close(sub.Channel)
			break
		}
	}

	if len(gameSubscribers[subscriber.GameID]) == 0 {
		delete(gameSubscribers, subscriber.GameID)
	}
}

// BroadcastGameEvent sends an event to all subscribers of a game.
// Subscribers with a full buffer or a finished context are skipped.
func BroadcastGameEvent(gameID string, event models.GameEvent) {
	subscribersMux.RLock()
	defer subscribersMux.RUnlock()

	for _, subscriber := range gameSubscribers[gameID] {
		if subscriber.Context.Err() != nil {
			continue
		}
		select {
		case subscriber.Channel <- event:
		default:
			// Channel full, skip this subscriber
		}
	}
}

// SubscriberCount returns how many subscribers listen to a game
func SubscriberCount(gameID string) int {
	subscribersMux.RLock()
	defer subscribersMux.RUnlock()
	return len(gameSubscribers[gameID])
}
