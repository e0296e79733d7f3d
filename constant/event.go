package constant

// Event queue sizing. Size must be a power of two for mask-based indexing
const (
	EventQueueSize  = 256
	EventBufferMask = EventQueueSize - 1
)
