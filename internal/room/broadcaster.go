package room

// Broadcaster pushes room events to whoever renders that room.
type Broadcaster interface {
	Broadcast(roomCode string, action string, data any)
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, string, any) {}
