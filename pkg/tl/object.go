// Package tl holds the wire-level reaction schema of the remote protocol and
// the codec between tagged maps and typed wire values.
//
// A wire object is a map whose "_" key names its constructor, e.g.
//
//	{"_": "reactionCustomEmoji", "document_id": 5368324170671202286}
package tl

// TagKey is the map key carrying the constructor name.
const TagKey = "_"

// Object is any wire value. Op returns its constructor name.
type Object interface {
	Op() string
}

// Unknown is a constructor this schema does not know about yet. It keeps the
// raw payload so nothing is lost when it is passed along.
type Unknown struct {
	Tag  string
	Data map[string]any
}

func (u Unknown) Op() string {
	return u.Tag
}

func (Unknown) isReaction()      {}
func (Unknown) isChatReactions() {}
