package game

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer receives simulation events after the tick that produced them
// Calls happen on the goroutine driving Step
type Observer interface {
	// EnemyDestroyed reports a kill at (x, y) and the score after it
	EnemyDestroyed(x, y float64, score int)
	// PlayerHit reports the transition into game over
	PlayerHit(score int)
	// Restarted reports a full reset and the new session id
	Restarted(session string)
}
