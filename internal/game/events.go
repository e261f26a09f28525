package game

import (
	"time"
)

// EventType represents a session event type with type safety
type EventType string

// EventType constants for session events
const (
	EventTypeStartingCards  EventType = "starting_cards"
	EventTypePlayerName     EventType = "player_name"
	EventTypeBid            EventType = "bid"
	EventTypeResultRecorded EventType = "result_recorded"
	EventTypeRoundAdvanced  EventType = "round_advanced"
	EventTypeGameOver       EventType = "game_over"
	EventTypeGameReset      EventType = "game_reset"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// GameEvent represents any effective change to a session
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// StartingCardsEvent is published when the starting hand size changes
type StartingCardsEvent struct {
	StartingCards int
	TotalRounds   int
	timestamp     time.Time
}

func (e StartingCardsEvent) EventType() EventType { return EventTypeStartingCards }
func (e StartingCardsEvent) Timestamp() time.Time { return e.timestamp }

// PlayerNameEvent is published when a seat is named or cleared
type PlayerNameEvent struct {
	Seat      int
	Name      string
	timestamp time.Time
}

func (e PlayerNameEvent) EventType() EventType { return EventTypePlayerName }
func (e PlayerNameEvent) Timestamp() time.Time { return e.timestamp }

// BidEvent is published when a player's bid for the current round is set
type BidEvent struct {
	Seat      int
	Name      string
	Round     int
	Bid       int
	timestamp time.Time
}

func (e BidEvent) EventType() EventType { return EventTypeBid }
func (e BidEvent) Timestamp() time.Time { return e.timestamp }

// ResultRecordedEvent is published when a round score is written to the ledger
type ResultRecordedEvent struct {
	Seat      int
	Name      string
	Round     int
	Cards     int
	Bid       int
	Made      bool
	Score     int
	Total     int
	timestamp time.Time
}

func (e ResultRecordedEvent) EventType() EventType { return EventTypeResultRecorded }
func (e ResultRecordedEvent) Timestamp() time.Time { return e.timestamp }

// RoundAdvancedEvent is published when play moves to the next round
type RoundAdvancedEvent struct {
	Round       int
	TotalRounds int
	Cards       int
	timestamp   time.Time
}

func (e RoundAdvancedEvent) EventType() EventType { return EventTypeRoundAdvanced }
func (e RoundAdvancedEvent) Timestamp() time.Time { return e.timestamp }

// GameOverEvent is published when the final round is finished
type GameOverEvent struct {
	SessionID string
	Standings []Standing
	timestamp time.Time
}

func (e GameOverEvent) EventType() EventType { return EventTypeGameOver }
func (e GameOverEvent) Timestamp() time.Time { return e.timestamp }

// GameResetEvent is published when the session starts over
type GameResetEvent struct {
	SessionID string
	timestamp time.Time
}

func (e GameResetEvent) EventType() EventType { return EventTypeGameReset }
func (e GameResetEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber can subscribe to session events
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus is a synchronous in-memory event bus. Subscribers run on the
// publishing goroutine in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
