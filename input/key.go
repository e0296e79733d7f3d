package input

// Key identifies a logical game key, decoupled from terminal key codes
type Key uint8

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyShoot
	KeyConfirm
	KeyQuit
	keyCount
)

// String returns the key name for logs and key-config display
func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyShoot:
		return "shoot"
	case KeyConfirm:
		return "confirm"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}
