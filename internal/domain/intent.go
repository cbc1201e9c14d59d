package domain

// IntentKind is how a free-text request should be turned into pixels
type IntentKind string

const (
	IntentCustomShape IntentKind = "custom_shape"
	IntentKnownShape  IntentKind = "known_shape"
	IntentText        IntentKind = "text"
)

// ArtIntent is the classified form of a user's drawing request
type ArtIntent struct {
	Description string
	Kind        IntentKind
	Pixels      []Pixel
	Plan        string
	ShapeName   string
	Text        string
}

// Subject returns the human readable thing being drawn
func (i ArtIntent) Subject() string {
	switch i.Kind {
	case IntentText:
		return i.Text
	case IntentKnownShape:
		return i.ShapeName
	default:
		return i.Description
	}
}
